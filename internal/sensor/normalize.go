package sensor

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// MissingTime is used for rows whose time cell is absent or blank.
const MissingTime = "N/A"

var numericPrefix = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)

// Normalize converts one sheet row into a Record. Unknown columns are
// ignored, unparsable cells degrade to zero, and fields the row does not
// carry are filled by Complete.
func Normalize(row RawRow) Record {
	var rec Record

	// Sorted so that two headers trimming to the same column resolve the same way every time.
	for _, column := range slices.Sorted(maps.Keys(row)) {
		f, ok := Lookup(column)
		if !ok {
			continue
		}
		raw := row[column]
		if f == FieldTime {
			rec.Time = TimeText(raw)
			continue
		}
		rec.set(f, Coerce(raw))
	}

	return Complete(rec)
}

// NormalizeAll normalizes rows in source order.
func NormalizeAll(rows []RawRow) []Record {
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, Normalize(row))
	}
	return out
}

// Complete enforces the structural defaults of a Record: bacteria is not
// measured by the chamber sheet and is always zero, and a blank time becomes
// MissingTime. Numeric fields the row never set are already zero.
func Complete(rec Record) Record {
	rec.Bacteria = 0
	if strings.TrimSpace(rec.Time) == "" {
		rec.Time = MissingTime
	}
	for _, f := range NumericFields {
		if v, _ := rec.Value(f); !isFinite(v) {
			rec.set(f, 0)
		}
	}
	return rec
}

// Coerce parses a raw cell as a number. Text cells use their leading numeric
// prefix ("4.2 ppm" is 4.2). Anything that is not a finite number yields 0.
func Coerce(raw any) float64 {
	var v float64
	switch x := raw.(type) {
	case nil, bool:
		return 0
	case float64:
		v = x
	case float32:
		v = float64(x)
	case int:
		v = float64(x)
	case int64:
		v = float64(x)
	case json.Number:
		v = parsePrefix(x.String())
	case string:
		v = parsePrefix(x)
	default:
		v = parsePrefix(fmt.Sprint(x))
	}
	if !isFinite(v) {
		return 0
	}
	return v
}

// TimeText renders a raw time cell as display text without numeric coercion.
func TimeText(raw any) string {
	switch x := raw.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func parsePrefix(s string) float64 {
	m := numericPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
