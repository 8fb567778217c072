package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/02loveslollipop/chamber-air-dashboard/internal/sensor"
)

const statusSuccess = "success"

// Response models the JSON envelope returned by the Apps Script web app.
type Response struct {
	Status  string          `json:"status"`
	Data    []sensor.RawRow `json:"data"`
	Message string          `json:"message,omitempty"`
}

// Client reads the chamber sheet through its script URL.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a Client. An empty url is accepted; every fetch then
// fails with ErrNotConfigured.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        strings.TrimSpace(url),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether a script URL was supplied.
func (c *Client) Configured() bool {
	return c.url != ""
}

// FetchRecords retrieves the whole sheet and normalizes every row.
func (c *Client) FetchRecords(ctx context.Context) ([]sensor.Record, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	rows, err := FetchRows(ctx, c.httpClient, c.url)
	if err != nil {
		return nil, err
	}
	return sensor.NormalizeAll(rows), nil
}

// FetchRows retrieves the raw rows from the script. Any failure aborts the
// whole batch; no partial rows are returned.
func FetchRows(ctx context.Context, client *http.Client, url string) ([]sensor.RawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Status: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var payload Response
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("decode payload: %w", err)}
	}

	if payload.Status != statusSuccess {
		return nil, &UpstreamError{Status: payload.Status, Message: payload.Message}
	}
	if payload.Data == nil {
		return nil, &FetchError{Err: errors.New("decode payload: missing data array")}
	}

	return payload.Data, nil
}
