package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/qiniu/pulseboard/internal/dashboard/model"
	"github.com/qiniu/pulseboard/internal/metrics"
	"github.com/rs/zerolog/log"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// the dashboard is served from a different origin during development
	CheckOrigin: func(*http.Request) bool { return true },
}

// StreamFrame is one websocket message. The first frame of a connection is a snapshot;
// every simulation pass after that produces a tick frame.
type StreamFrame struct {
	Type        string                   `json:"type"`
	Seq         int64                    `json:"seq"`
	At          int64                    `json:"at,omitempty"`
	Transitions []model.StatusTransition `json:"transitions,omitempty"`
	Monitors    []model.Monitor          `json:"monitors"`
}

// Stream pushes monitor state of a project to a websocket client after every tick.
func (api *Api) Stream(c *gin.Context) {
	p, ok := api.project(c)
	if !ok {
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("project", p.Code).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	sub := api.hub.Subscribe()
	defer sub.Close()
	metrics.StreamClients.Inc()
	defer metrics.StreamClients.Dec()
	log.Debug().Str("project", p.Code).Msg("stream client connected")

	// the read side only services control frames and notices disconnects
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	snapshot := StreamFrame{
		Type:     "snapshot",
		Seq:      api.engine.Ticks(),
		Monitors: api.svc.State().Monitors(p.ID),
	}
	if err := writeFrame(conn, snapshot); err != nil {
		return
	}

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()
	for {
		select {
		case <-closed:
			log.Debug().Str("project", p.Code).Msg("stream client disconnected")
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case tick, ok := <-sub.C():
			if !ok {
				return
			}
			frame := StreamFrame{
				Type:     "tick",
				Seq:      tick.Seq,
				At:       tick.At.UnixMilli(),
				Monitors: api.svc.State().Monitors(p.ID),
			}
			for _, tr := range tick.Transitions {
				if tr.ProjectID == p.ID {
					frame.Transitions = append(frame.Transitions, tr)
				}
			}
			if err := writeFrame(conn, frame); err != nil {
				log.Debug().Err(err).Str("project", p.Code).Msg("stream write failed")
				return
			}
		}
	}
}

func writeFrame(conn *websocket.Conn, f StreamFrame) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(f)
}
