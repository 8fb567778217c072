package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/02loveslollipop/chamber-air-dashboard/internal/sensor"
)

const sensorDataPath = "/api/sensor-data"

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("failed to fetch sensor data (status %d)", e.Code)
}

// Client reads the normalized series from the REST API service.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchRecords retrieves the current series from the API.
func (c *Client) FetchRecords(ctx context.Context) ([]sensor.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+sensorDataPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request sensor data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, &StatusError{Code: resp.StatusCode, Message: body.Error}
	}

	var records []sensor.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode sensor data: %w", err)
	}

	out := make([]sensor.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, sensor.Complete(rec))
	}
	return out, nil
}
