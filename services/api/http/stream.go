package http

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/02loveslollipop/chamber-air-dashboard/internal/poller"
)

const (
	streamWriteTimeout = 10 * time.Second
	streamPingInterval = 30 * time.Second
	streamBuffer       = 4
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleStream pushes the current snapshot and every later one as JSON text frames
// GET /api/sensor-data/stream
func (s *Server) handleStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("stream: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	clientID := uuid.NewString()
	log.Printf("stream: client %s connected", clientID)
	defer log.Printf("stream: client %s disconnected", clientID)

	updates := make(chan poller.Snapshot, streamBuffer)
	unsubscribe := s.series.Subscribe(poller.SnapshotHandlerFunc(func(snap poller.Snapshot) {
		offerLatest(updates, snap)
	}))
	defer unsubscribe()

	// The read loop only exists to notice the peer going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := writeSnapshot(conn, s.series.Snapshot()); err != nil {
		return
	}

	ping := time.NewTicker(streamPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case <-c.Request.Context().Done():
			return
		case snap := <-updates:
			if err := writeSnapshot(conn, snap); err != nil {
				log.Printf("stream: client %s write failed: %v", clientID, err)
				return
			}
		case <-ping.C:
			deadline := time.Now().Add(streamWriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, []byte("keepalive"), deadline); err != nil {
				return
			}
		}
	}
}

// offerLatest enqueues snap, dropping the oldest queued snapshot when the
// client is not keeping up.
func offerLatest(ch chan poller.Snapshot, snap poller.Snapshot) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}

func writeSnapshot(conn *websocket.Conn, snap poller.Snapshot) error {
	conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
	return conn.WriteJSON(snap)
}
