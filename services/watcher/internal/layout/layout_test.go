package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/02loveslollipop/chamber-air-dashboard/internal/sensor"
)

func writeLayout(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	return path
}

func TestDefault_Valid(t *testing.T) {
	l := Default()
	if err := l.Validate(); err != nil {
		t.Fatalf("Default() invalid: %v", err)
	}
	if len(l.Cards) != 5 {
		t.Errorf("len(Cards) = %d, want 5", len(l.Cards))
	}
	if !l.Cards[2].Primary || l.Cards[2].Field != sensor.FieldBacteria {
		t.Errorf("Cards[2] = %+v, want primary bacteria card", l.Cards[2])
	}
	if l.Charts[0].Critical == nil || *l.Charts[0].Critical != 120 {
		t.Error("bacteria chart should carry a critical line at 120")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	l, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if l.Title != Default().Title {
		t.Errorf("Title = %q", l.Title)
	}
}

func TestLoad_File(t *testing.T) {
	t.Setenv("ROOM_NAME", "Lab 3")
	path := writeLayout(t, `
title: Chamber
subtitle: ${ROOM_NAME}
cards:
  - field: co2
    unit: ppm
  - title: Temp
    field: temperature
    unit: "°C"
charts:
  - title: Dust
    series:
      - field: pm25
      - field: pm10
        name: Coarse
        color: "208"
    critical: 35
`)

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if l.Subtitle != "Lab 3" {
		t.Errorf("Subtitle = %q, want expanded env var", l.Subtitle)
	}
	if len(l.Cards) != 2 || l.Cards[0].Title != "CO2" {
		t.Errorf("Cards = %+v, want default title from field label", l.Cards)
	}
	if len(l.Charts) != 1 {
		t.Fatalf("len(Charts) = %d, want 1", len(l.Charts))
	}
	series := l.Charts[0].Series
	if series[0].Name != "PM2.5" || series[0].Color != "78" {
		t.Errorf("series[0] = %+v, want defaults", series[0])
	}
	if series[1].Name != "Coarse" || series[1].Color != "208" {
		t.Errorf("series[1] = %+v", series[1])
	}
	if l.Charts[0].Critical == nil || *l.Charts[0].Critical != 35 {
		t.Errorf("Critical = %v, want 35", l.Charts[0].Critical)
	}
}

func TestLoad_OnlyTitleKeepsDefaultPanels(t *testing.T) {
	l, err := Load(writeLayout(t, "title: Basement\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if l.Title != "Basement" {
		t.Errorf("Title = %q", l.Title)
	}
	if len(l.Cards) != len(Default().Cards) {
		t.Errorf("len(Cards) = %d, want default cards", len(l.Cards))
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"unknown card field", "cards:\n  - field: pressure\n", "unknown field"},
		{"time is not numeric", "cards:\n  - field: time\n", "unknown field"},
		{"empty chart", "charts:\n  - title: Nothing\n", "no series"},
		{"bad yaml", "cards: [", "parse layout yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeLayout(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
