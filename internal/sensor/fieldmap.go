package sensor

import "strings"

// Field is a canonical record attribute name. Its string value is also the
// JSON key used on the wire.
type Field string

const (
	FieldTime        Field = "time"
	FieldTemperature Field = "temperature"
	FieldHumidity    Field = "humidity"
	FieldCO2         Field = "co2"
	FieldPM1         Field = "pm1"
	FieldPM25        Field = "pm25"
	FieldPM40        Field = "pm40"
	FieldPM10        Field = "pm10"
	FieldVOC         Field = "voc"
	FieldNOx         Field = "nox"
	FieldBacteria    Field = "bacteria"
)

// NumericFields lists every numeric canonical field in display order.
var NumericFields = []Field{
	FieldTemperature,
	FieldHumidity,
	FieldCO2,
	FieldPM1,
	FieldPM25,
	FieldPM40,
	FieldPM10,
	FieldVOC,
	FieldNOx,
	FieldBacteria,
}

// Mapping pairs a spreadsheet column header with its canonical field.
type Mapping struct {
	Column string
	Field  Field
}

// FieldMap is the column table for the chamber sheet. Updating the sheet's
// headers requires updating this table.
var FieldMap = []Mapping{
	{Column: "Date and Time", Field: FieldTime},
	{Column: "CO2", Field: FieldCO2},
	{Column: "Temperature", Field: FieldTemperature},
	{Column: "Humidity", Field: FieldHumidity},
	{Column: "PM 1.0", Field: FieldPM1},
	{Column: "PM 2.5", Field: FieldPM25},
	{Column: "PM 4.0", Field: FieldPM40},
	{Column: "PM 10", Field: FieldPM10},
	{Column: "VOC", Field: FieldVOC},
	{Column: "NOx", Field: FieldNOx},
}

var columnIndex = func() map[string]Field {
	idx := make(map[string]Field, len(FieldMap))
	for _, m := range FieldMap {
		idx[m.Column] = m.Field
	}
	return idx
}()

// Lookup resolves a column header to its canonical field. Headers outside
// FieldMap report false and are dropped by Normalize.
func Lookup(column string) (Field, bool) {
	f, ok := columnIndex[strings.TrimSpace(column)]
	return f, ok
}

// Label returns a display label for a canonical field.
func (f Field) Label() string {
	switch f {
	case FieldTime:
		return "Time"
	case FieldTemperature:
		return "Temp"
	case FieldHumidity:
		return "Humidity"
	case FieldCO2:
		return "CO2"
	case FieldPM1:
		return "PM1.0"
	case FieldPM25:
		return "PM2.5"
	case FieldPM40:
		return "PM4.0"
	case FieldPM10:
		return "PM10"
	case FieldVOC:
		return "VOC"
	case FieldNOx:
		return "NOx"
	case FieldBacteria:
		return "Bacteria"
	default:
		return string(f)
	}
}

// ParseField validates a canonical field name.
func ParseField(name string) (Field, bool) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	if f == FieldTime {
		return f, true
	}
	for _, nf := range NumericFields {
		if nf == f {
			return f, true
		}
	}
	return "", false
}
