package wsline

import (
	"bufio"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoKeeper - keeps connection and answers every line with its upper-case copy
type echoKeeper struct {
	mu     sync.Mutex
	reject bool
	lines  []string
	done   chan struct{}
}

func (k *echoKeeper) KeepConnection(conn io.ReadWriteCloser, remote string) error {
	if k.reject {
		return errors.New("rejected")
	}
	go func() {
		defer close(k.done)
		defer conn.Close()
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			k.mu.Lock()
			k.lines = append(k.lines, scanner.Text())
			k.mu.Unlock()
			if _, err := conn.Write([]byte(strings.ToUpper(scanner.Text()) + "\n")); err != nil {
				return
			}
		}
	}()
	return nil
}

func (k *echoKeeper) received() []string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]string{}, k.lines...)
}

func dial(test *testing.T, keeper Keeper) *ws.Conn {
	test.Helper()
	server := httptest.NewServer(NewHandler(keeper, func(*http.Request) bool { return true }, nil))
	test.Cleanup(server.Close)
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := ws.DefaultDialer.Dial(url, nil)
	require.NoError(test, err)
	test.Cleanup(func() { conn.Close() })
	return conn
}

func TestConn_Lines(test *testing.T) {
	keeper := &echoKeeper{done: make(chan struct{})}
	conn := dial(test, keeper)

	require.NoError(test, conn.WriteMessage(ws.TextMessage, []byte("hello")))
	require.NoError(test, conn.WriteMessage(ws.BinaryMessage, []byte("ignored")))
	require.NoError(test, conn.WriteMessage(ws.TextMessage, []byte("")))
	require.NoError(test, conn.WriteMessage(ws.TextMessage, []byte("world")))

	conn.SetReadDeadline(time.Now().Add(time.Second))
	for _, expected := range []string{"HELLO", "", "WORLD"} {
		kind, msg, err := conn.ReadMessage()
		require.NoError(test, err)
		assert.Equal(test, ws.TextMessage, kind)
		assert.Equal(test, expected, string(msg))
	}

	require.NoError(test, conn.WriteMessage(ws.CloseMessage, ws.FormatCloseMessage(ws.CloseNormalClosure, "")))
	select {
	case <-keeper.done:
	case <-time.After(time.Second):
		test.Fatal("normal close was not reported as end of stream")
	}
	assert.Equal(test, []string{"hello", "", "world"}, keeper.received())
}

func TestHandler_Rejected(test *testing.T) {
	conn := dial(test, &echoKeeper{reject: true})
	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := conn.ReadMessage()
	require.Error(test, err)
	assert.True(test, ws.IsCloseError(err, ws.CloseNormalClosure), "unexpected error %v", err)
}
