package sensor

// Record is a normalized reading handed to presentation. Every numeric field
// is always populated with a finite number.
type Record struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	CO2         float64 `json:"co2"`
	PM1         float64 `json:"pm1"`
	PM25        float64 `json:"pm25"`
	PM40        float64 `json:"pm40"`
	PM10        float64 `json:"pm10"`
	VOC         float64 `json:"voc"`
	NOx         float64 `json:"nox"`
	Bacteria    float64 `json:"bacteria"`
}

// RawRow is one row as returned by the spreadsheet script, keyed by column header.
type RawRow map[string]any

// Value returns the numeric value of a canonical field. It reports false for
// FieldTime and unknown fields.
func (r Record) Value(f Field) (float64, bool) {
	switch f {
	case FieldTemperature:
		return r.Temperature, true
	case FieldHumidity:
		return r.Humidity, true
	case FieldCO2:
		return r.CO2, true
	case FieldPM1:
		return r.PM1, true
	case FieldPM25:
		return r.PM25, true
	case FieldPM40:
		return r.PM40, true
	case FieldPM10:
		return r.PM10, true
	case FieldVOC:
		return r.VOC, true
	case FieldNOx:
		return r.NOx, true
	case FieldBacteria:
		return r.Bacteria, true
	default:
		return 0, false
	}
}

func (r *Record) set(f Field, v float64) {
	switch f {
	case FieldTemperature:
		r.Temperature = v
	case FieldHumidity:
		r.Humidity = v
	case FieldCO2:
		r.CO2 = v
	case FieldPM1:
		r.PM1 = v
	case FieldPM25:
		r.PM25 = v
	case FieldPM40:
		r.PM40 = v
	case FieldPM10:
		r.PM10 = v
	case FieldVOC:
		r.VOC = v
	case FieldNOx:
		r.NOx = v
	case FieldBacteria:
		r.Bacteria = v
	}
}

// Values extracts one numeric field across records, preserving order.
func Values(records []Record, f Field) []float64 {
	out := make([]float64, 0, len(records))
	for _, r := range records {
		v, _ := r.Value(f)
		out = append(out, v)
	}
	return out
}
