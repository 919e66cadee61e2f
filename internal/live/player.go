package live

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"musicschool/internal/player"
	"musicschool/pkg/models"
)

type playerFrame struct {
	Command player.Command `json:"command"`
}

type PlayerState struct {
	Type string `json:"type"` // "state"
	player.State
}

const TypeState = "state"

// PlayerHandler gives every connection its own player. The connection
// receives the state after each command and on every tick while playing.
func PlayerHandler(tracks []models.Track, interval time.Duration, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := player.New(tracks)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		client := newClient(ws)
		defer ws.Close()

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		go p.Run(ctx, interval, func(st player.State) {
			if err := client.WriteJSON(PlayerState{Type: TypeState, State: st}); err != nil {
				cancel()
			}
		})

		hub.logger.Println("[ws] player client connected")
		defer hub.logger.Println("[ws] player client disconnected")

		if err := client.WriteJSON(PlayerState{Type: TypeState, State: p.State()}); err != nil {
			return
		}

		for {
			_, payload, err := ws.ReadMessage()
			if err != nil {
				return
			}

			var frame playerFrame
			if err := json.Unmarshal(payload, &frame); err != nil {
				// bare "next" / "prev" / "toggle" text is accepted too
				frame.Command = player.Command(strings.TrimSpace(string(payload)))
			}

			st, err := p.Apply(frame.Command)
			if err != nil {
				if werr := client.WriteJSON(ErrorFrame{Type: TypeError, Error: err.Error()}); werr != nil {
					return
				}
				continue
			}
			if err := client.WriteJSON(PlayerState{Type: TypeState, State: st}); err != nil {
				return
			}
		}
	}
}
