package live

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musicschool/internal/catalog"
	"musicschool/pkg/models"
)

func testCourses() []models.Course {
	return []models.Course{
		{ID: 1, Title: "Jazz Piano Basics", Slug: "jazz-piano-basics", Price: 120, Instructor: "Jane Smith"},
		{ID: 2, Title: "Rock Guitar 101", Slug: "rock-guitar-101", Price: 80, Instructor: "John Doe", IsFeatured: true},
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *catalog.Store, *Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := log.New(io.Discard, "", 0)
	store := catalog.NewStore("test", catalog.StaticLoader(testCourses()), logger)
	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	hub := NewHub(logger)
	BroadcastReloads(store, hub)

	r := gin.New()
	r.GET("/ws/search", SearchHandler(store, hub))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store, hub
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/search"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func exchange(t *testing.T, ws *websocket.Conn, frame string) map[string]any {
	t.Helper()
	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(frame)))
	return readFrame(t, ws)
}

func readFrame(t *testing.T, ws *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := ws.ReadMessage()
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(payload, &out))
	return out
}

func TestSearchFrames(t *testing.T) {
	srv, _, _ := newTestServer(t)
	ws := dial(t, srv)

	out := exchange(t, ws, `{"q":"jazz"}`)
	assert.Equal(t, TypeResults, out["type"])
	assert.EqualValues(t, 1, out["total"])

	out = exchange(t, ws, `{"sort":"price-low"}`)
	items := out["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "Rock Guitar 101", items[0].(map[string]any)["title"])

	out = exchange(t, ws, `{"q":"drums"}`)
	assert.EqualValues(t, 0, out["total"])
	assert.Empty(t, out["items"])
}

func TestSearchResetRestoresDefaults(t *testing.T) {
	srv, _, _ := newTestServer(t)
	ws := dial(t, srv)

	out := exchange(t, ws, `{"type":"reset","q":"jazz"}`)
	assert.EqualValues(t, 2, out["total"])
	cr := out["criteria"].(map[string]any)
	assert.Equal(t, "", cr["q"])
	assert.Equal(t, "title", cr["sort"])
}

func TestSearchErrorKeepsConnectionOpen(t *testing.T) {
	srv, _, _ := newTestServer(t)
	ws := dial(t, srv)

	out := exchange(t, ws, `{"genre":"polka"}`)
	assert.Equal(t, TypeError, out["type"])
	assert.Contains(t, out["error"], "polka")

	out = exchange(t, ws, `not json`)
	assert.Equal(t, TypeError, out["type"])

	out = exchange(t, ws, `{}`)
	assert.Equal(t, TypeResults, out["type"])
}

func TestReloadIsBroadcast(t *testing.T) {
	srv, store, hub := newTestServer(t)
	ws := dial(t, srv)

	// one round trip guarantees the client is registered
	exchange(t, ws, `{}`)
	assert.Equal(t, 1, hub.Stats().WSClients)

	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	out := readFrame(t, ws)
	assert.Equal(t, TypeReloaded, out["type"])
	assert.EqualValues(t, 2, out["courses"])
	assert.Equal(t, "test", out["source"])
}

func TestHubDropsClosedClients(t *testing.T) {
	srv, _, hub := newTestServer(t)
	ws := dial(t, srv)
	exchange(t, ws, `{}`)
	require.Equal(t, 1, hub.Count())

	require.NoError(t, ws.Close())
	assert.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}
