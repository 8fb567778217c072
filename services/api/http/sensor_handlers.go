package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/chamber-air-dashboard/internal/sheets"
)

// handleSensorData fetches the sheet and returns the normalized series
// GET /api/sensor-data
func (s *Server) handleSensorData(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.RequestTimeout)
	defer cancel()

	records, err := s.source.FetchRecords(ctx)
	if err != nil {
		if errors.Is(err, sheets.ErrNotConfigured) {
			log.Printf("sensor-data: configuration error: %v", err)
		} else {
			log.Printf("sensor-data: fetch failed (request=%s): %v", c.GetString("request_id"), err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// handleLatest returns the newest point held by the service poller
// GET /api/sensor-data/latest
func (s *Server) handleLatest(c *gin.Context) {
	snap := s.series.Snapshot()
	if !snap.HasData() {
		msg := snap.LastError
		if msg == "" {
			msg = "no sensor data available yet"
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msg})
		return
	}

	var data any
	if latest, ok := snap.Latest(); ok {
		data = latest
	}

	c.JSON(http.StatusOK, gin.H{
		"data": data,
		"meta": gin.H{
			"count":        len(snap.Points),
			"phase":        snap.Phase,
			"last_updated": formatTime(snap.LastUpdated),
			"last_error":   snap.LastError,
		},
	})
}

// handleStatus reports the service poller state without the points
// GET /api/status
func (s *Server) handleStatus(c *gin.Context) {
	snap := s.series.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"phase":        snap.Phase,
			"count":        len(snap.Points),
			"last_updated": formatTime(snap.LastUpdated),
			"last_error":   snap.LastError,
			"configured":   s.cfg.ScriptURL != "",
			"interval":     s.cfg.PollInterval.String(),
		},
		"meta": gin.H{
			"generated_at": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func formatTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
