package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/sensor-data" {
			t.Errorf("path = %q, want /api/sensor-data", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"time":"09:10","co2":405,"temperature":21.2,"bacteria":0},
			{"time":"","co2":412,"bacteria":7}
		]`))
	}))
	defer server.Close()

	c := New(server.URL+"/", "secret", time.Second)
	records, err := c.FetchRecords(context.Background())
	if err != nil {
		t.Fatalf("FetchRecords failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].CO2 != 405 || records[0].Temperature != 21.2 {
		t.Errorf("records[0] = %+v", records[0])
	}
	if records[1].Time != "N/A" {
		t.Errorf("records[1].Time = %q, want N/A", records[1].Time)
	}
	if records[1].Bacteria != 0 {
		t.Errorf("records[1].Bacteria = %v, want 0", records[1].Bacteria)
	}
}

func TestFetchRecords_ErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"sheet locked"}`))
	}))
	defer server.Close()

	_, err := New(server.URL, "", time.Second).FetchRecords(context.Background())

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v (%T), want *StatusError", err, err)
	}
	if statusErr.Code != http.StatusInternalServerError {
		t.Errorf("Code = %d, want 500", statusErr.Code)
	}
	if err.Error() != "sheet locked" {
		t.Errorf("error = %q, want %q", err.Error(), "sheet locked")
	}
}

func TestFetchRecords_ErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := New(server.URL, "", time.Second).FetchRecords(context.Background())
	if err == nil || err.Error() != "failed to fetch sensor data (status 502)" {
		t.Errorf("error = %v", err)
	}
}

func TestFetchRecords_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	if _, err := New(server.URL, "", time.Second).FetchRecords(context.Background()); err == nil {
		t.Error("expected decode error")
	}
}
