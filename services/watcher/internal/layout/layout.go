package layout

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/02loveslollipop/chamber-air-dashboard/internal/sensor"
)

// Layout describes what the dashboard shows and in what order.
type Layout struct {
	Title    string  `yaml:"title"`
	Subtitle string  `yaml:"subtitle"`
	Cards    []Card  `yaml:"cards"`
	Charts   []Chart `yaml:"charts"`
}

// Card is a single-value metric card.
type Card struct {
	Title   string       `yaml:"title"`
	Field   sensor.Field `yaml:"field"`
	Unit    string       `yaml:"unit"`
	Primary bool         `yaml:"primary"`
}

// Chart is a sparkline panel over one or more fields.
type Chart struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Series      []ChartField `yaml:"series"`
	Critical    *float64     `yaml:"critical,omitempty"` // reference line, if any
}

// ChartField is one line within a chart.
type ChartField struct {
	Field sensor.Field `yaml:"field"`
	Name  string       `yaml:"name"`
	Color string       `yaml:"color"` // ANSI 256 color code
}

func criticalAt(v float64) *float64 { return &v }

// Default mirrors the chamber dashboard.
func Default() Layout {
	return Layout{
		Title:    "Environmental Sensor Data Dashboard",
		Subtitle: "2nd Floor Chamber - Air Inlet (Live Data)",
		Cards: []Card{
			{Title: "CO2 Levels", Field: sensor.FieldCO2, Unit: "ppm"},
			{Title: "Temperature", Field: sensor.FieldTemperature, Unit: "°C"},
			{Title: "Bacteria", Field: sensor.FieldBacteria, Unit: "CFU/m³", Primary: true},
			{Title: "Humidity", Field: sensor.FieldHumidity, Unit: "%"},
			{Title: "PM 2.5", Field: sensor.FieldPM25, Unit: "µg/m³"},
		},
		Charts: []Chart{
			{
				Title:       "Bacteria Levels",
				Description: "Monitors colony-forming units, with alerts on critical spikes.",
				Series:      []ChartField{{Field: sensor.FieldBacteria, Name: "Bacteria", Color: "203"}},
				Critical:    criticalAt(120),
			},
			{
				Title:       "Temperature Over Time",
				Description: "Live Data Feed",
				Series:      []ChartField{{Field: sensor.FieldTemperature, Name: "Temp", Color: "78"}},
			},
			{
				Title:       "Humidity Over Time",
				Description: "Live Data Feed",
				Series:      []ChartField{{Field: sensor.FieldHumidity, Name: "Humidity", Color: "75"}},
			},
			{
				Title:       "CO2 Levels",
				Description: "Live Data Feed",
				Series:      []ChartField{{Field: sensor.FieldCO2, Name: "CO2", Color: "220"}},
			},
			{
				Title:       "Particle Matter Levels",
				Description: "PM1.0, PM2.5, PM10",
				Series: []ChartField{
					{Field: sensor.FieldPM1, Name: "PM1.0", Color: "75"},
					{Field: sensor.FieldPM25, Name: "PM2.5", Color: "78"},
					{Field: sensor.FieldPM10, Name: "PM10", Color: "208"},
				},
			},
			{
				Title:       "VOC & NOx Levels",
				Description: "Volatile Organic Compounds & Nitrogen Oxides",
				Series: []ChartField{
					{Field: sensor.FieldVOC, Name: "VOC", Color: "141"},
					{Field: sensor.FieldNOx, Name: "NOx", Color: "78"},
				},
			},
		},
	}
}

// Load reads a YAML layout file and expands ${VAR} environment variables.
// An empty path returns Default.
func Load(path string) (Layout, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var l Layout
	if err := yaml.Unmarshal([]byte(expanded), &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout yaml: %w", err)
	}

	l.applyDefaults()
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("validate layout: %w", err)
	}
	return l, nil
}

func (l *Layout) applyDefaults() {
	def := Default()
	if l.Title == "" {
		l.Title = def.Title
	}
	if len(l.Cards) == 0 && len(l.Charts) == 0 {
		l.Cards = def.Cards
		l.Charts = def.Charts
	}
	for i := range l.Cards {
		if l.Cards[i].Title == "" {
			l.Cards[i].Title = l.Cards[i].Field.Label()
		}
	}
	for i := range l.Charts {
		for j := range l.Charts[i].Series {
			s := &l.Charts[i].Series[j]
			if s.Name == "" {
				s.Name = s.Field.Label()
			}
			if s.Color == "" {
				s.Color = "78"
			}
		}
	}
}

// Validate checks that every referenced field is a numeric canonical field.
func (l Layout) Validate() error {
	var errs []error
	for i, c := range l.Cards {
		if !isNumeric(c.Field) {
			errs = append(errs, fmt.Errorf("cards[%d]: unknown field %q", i, c.Field))
		}
	}
	for i, ch := range l.Charts {
		if len(ch.Series) == 0 {
			errs = append(errs, fmt.Errorf("charts[%d]: no series", i))
		}
		for j, s := range ch.Series {
			if !isNumeric(s.Field) {
				errs = append(errs, fmt.Errorf("charts[%d].series[%d]: unknown field %q", i, j, s.Field))
			}
		}
	}
	return errors.Join(errs...)
}

func isNumeric(f sensor.Field) bool {
	parsed, ok := sensor.ParseField(string(f))
	return ok && parsed != sensor.FieldTime && parsed == f
}
