// Package metric formats single readings for display.
package metric

import (
	"strconv"

	"github.com/02loveslollipop/chamber-air-dashboard/internal/sensor"
)

// NotAvailable is shown when there is no reading to display.
const NotAvailable = "N/A"

// Precision returns the number of decimals shown for a field.
func Precision(f sensor.Field) int {
	if f == sensor.FieldTemperature {
		return 1
	}
	return 0
}

// Format renders field f of rec with its fixed precision, or NotAvailable
// when rec is nil or f is not numeric.
func Format(rec *sensor.Record, f sensor.Field) string {
	if rec == nil {
		return NotAvailable
	}
	v, ok := rec.Value(f)
	if !ok {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', Precision(f), 64)
}

// FormatWithUnit is Format followed by a space and the unit, if any.
func FormatWithUnit(rec *sensor.Record, f sensor.Field, unit string) string {
	s := Format(rec, f)
	if unit == "" {
		return s
	}
	return s + " " + unit
}
