package httpapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtask/linechat/internal/chat"
	"github.com/wtask/linechat/internal/chat/wsline"
)

type fakeStatus struct {
	clients int
	stopped bool
}

func (f fakeStatus) Clients() int  { return f.clients }
func (f fakeStatus) Stopped() bool { return f.stopped }

func get(test *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	test.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(test *testing.T) {
	srv := NewServer(fakeStatus{clients: 3}, nil, nil)

	rec := get(test, srv.Handler(), "/health/live")
	assert.Equal(test, http.StatusOK, rec.Code)

	rec = get(test, srv.Handler(), "/health/ready")
	require.Equal(test, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(test, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(test, "ready", body["status"])
	assert.Equal(test, 3.0, body["clients"])

	stopped := NewServer(fakeStatus{stopped: true}, nil, nil)
	rec = get(test, stopped.Handler(), "/health/ready")
	assert.Equal(test, http.StatusServiceUnavailable, rec.Code)

	rec = get(test, srv.Handler(), "/ws")
	assert.Equal(test, http.StatusNotFound, rec.Code)
}

func TestMetrics(test *testing.T) {
	srv := NewServer(fakeStatus{}, nil, nil)
	rec := get(test, srv.Handler(), "/metrics")
	assert.Equal(test, http.StatusOK, rec.Code)
	assert.Contains(test, rec.Body.String(), "chat_connected_clients")
}

func TestWebSocketClients(test *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	relay, err := chat.NewServer(chat.DefaultBroker(), chat.WithLogger(logger))
	require.NoError(test, err)
	test.Cleanup(func() { relay.Shutdown(time.Second) })

	srv := NewServer(relay, wsline.NewHandler(relay, func(*http.Request) bool { return true }, logger), logger)
	httpServer := httptest.NewServer(srv.Handler())
	test.Cleanup(httpServer.Close)
	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws"

	a, _, err := ws.DefaultDialer.Dial(url, nil)
	require.NoError(test, err)
	defer a.Close()
	// the first client must be registered before the second one to get predictable names
	require.Eventually(test, func() bool { return relay.Clients() == 1 }, time.Second, 5*time.Millisecond)
	b, _, err := ws.DefaultDialer.Dial(url, nil)
	require.NoError(test, err)
	defer b.Close()

	require.Eventually(test, func() bool { return relay.Clients() == 2 }, time.Second, 5*time.Millisecond)

	require.NoError(test, a.WriteMessage(ws.TextMessage, []byte("hi from ws")))
	read := func(c *ws.Conn) string {
		c.SetReadDeadline(time.Now().Add(time.Second))
		_, msg, err := c.ReadMessage()
		require.NoError(test, err)
		return string(msg)
	}
	assert.Equal(test, "You said: hi from ws", read(a))
	assert.Equal(test, "Client 1 says: hi from ws", read(b))

	relay.Announce("maintenance")
	assert.Equal(test, "Server says: maintenance", read(a))
	assert.Equal(test, "Server says: maintenance", read(b))

	relay.Stop()
	a.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err = a.ReadMessage()
	assert.True(test, ws.IsCloseError(err, ws.CloseNormalClosure), "unexpected error %v", err)
	require.Eventually(test, func() bool { return relay.Clients() == 0 }, time.Second, 5*time.Millisecond)
}
