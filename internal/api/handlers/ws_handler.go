package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/client-intake/internal/application"
	"github.com/linskybing/client-intake/internal/config"
	"github.com/linskybing/client-intake/pkg/response"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	feedInterval = 2 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, allowed := range config.AllowedOrigins() {
			if origin == allowed {
				return true
			}
		}
		log.Printf("[Feed] rejected websocket origin %s", origin)
		return false
	},
}

// SubmissionsFeed godoc
// @Summary Live submissions list over websocket
// @Description Pushes the newest-first submission list every 2 seconds.
// @Tags admin
// @Param token query string true "Admin token"
// @Router /api/admin/ws/submissions [get]
func SubmissionsFeed(svc *application.SubmissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
			return
		}
		defer func() {
			_ = conn.Close()
		}()

		// Heartbeat handling
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})

		// Reader consumes control frames and reports a closed peer.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ctx := c.Request.Context()
		ticker := time.NewTicker(feedInterval)
		defer ticker.Stop()
		ping := time.NewTicker(pingPeriod)
		defer ping.Stop()

		push := func() bool {
			subs, err := svc.ListSubmissions(ctx)
			if err != nil {
				log.Printf("[Feed] list failed: %v", err)
				return true
			}
			payload, _ := json.Marshal(subs)
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			return conn.WriteMessage(websocket.TextMessage, payload) == nil
		}

		if !push() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case <-ping.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-ticker.C:
				if !push() {
					return
				}
			}
		}
	}
}
