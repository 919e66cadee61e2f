package live

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"musicschool/internal/catalog"
	"musicschool/pkg/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// searchFrame is one inbound message. A frame with type "reset" restores the
// default criteria; any other frame is read as a query.
type searchFrame struct {
	Type string `json:"type,omitempty"`
	catalog.ListQuery
}

type Results struct {
	Type     string           `json:"type"`
	Total    int              `json:"total"`
	Criteria catalog.Criteria `json:"criteria"`
	Items    []models.Course  `json:"items"`
}

type ErrorFrame struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// SearchHandler answers every criteria frame with the filtered courses from
// the snapshot current at that moment.
func SearchHandler(store *catalog.Store, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		client := hub.Add(ws)
		hub.logger.Printf("[ws] search client connected (%d)", hub.Count())
		defer func() {
			hub.Remove(client)
			hub.logger.Println("[ws] search client disconnected")
		}()

		for {
			_, payload, err := ws.ReadMessage()
			if err != nil {
				return
			}
			if err := client.WriteJSON(respond(store, payload)); err != nil {
				return
			}
		}
	}
}

func respond(store *catalog.Store, payload []byte) any {
	var frame searchFrame
	if err := json.Unmarshal(payload, &frame); err != nil {
		return ErrorFrame{Type: TypeError, Error: "invalid message: " + err.Error()}
	}

	cr := catalog.DefaultCriteria()
	if frame.Type != TypeReset {
		parsed, err := frame.Criteria()
		if err != nil {
			return ErrorFrame{Type: TypeError, Error: err.Error()}
		}
		cr = parsed
	}

	items := store.Current().Search(cr)
	return Results{
		Type:     TypeResults,
		Total:    len(items),
		Criteria: cr,
		Items:    items,
	}
}
