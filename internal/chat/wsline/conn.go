// Package wsline adapts WebSocket connections to the line-oriented stream
// consumed by chat sessions: every inbound text frame is one line,
// every outbound line is sent as one text frame.
package wsline

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// closeGrace - time given to deliver close frame to the peer.
const closeGrace = time.Second

// Conn - io.ReadWriteCloser over WebSocket connection.
// Reads must be done from a single goroutine, writes must be serialized by caller.
type Conn struct {
	ws      *websocket.Conn
	current io.Reader
	once    sync.Once
}

// NewConn - wraps established WebSocket connection.
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{ws: ws}
}

// Read - reads frames content, each frame is terminated with '\n'.
// Normal close of the peer is reported as io.EOF.
func (c *Conn) Read(p []byte) (int, error) {
	for {
		if c.current == nil {
			kind, r, err := c.ws.NextReader()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return 0, io.EOF
				}
				return 0, err
			}
			if kind != websocket.TextMessage {
				// binary frames are not a part of the text protocol
				io.Copy(io.Discard, r)
				continue
			}
			c.current = io.MultiReader(r, bytes.NewReader([]byte{'\n'}))
		}
		n, err := c.current.Read(p)
		if err == io.EOF {
			c.current = nil
			if n == 0 {
				continue
			}
			err = nil
		}
		return n, err
	}
}

// Write - sends p as a single text frame without trailing line terminator.
func (c *Conn) Write(p []byte) (int, error) {
	frame := bytes.TrimSuffix(p, []byte{'\n'})
	if err := c.ws.WriteMessage(websocket.TextMessage, frame); err != nil {
		return 0, err
	}
	return len(p), nil
}

// SetWriteDeadline - bounds pending and future writes.
func (c *Conn) SetWriteDeadline(t time.Time) error {
	return c.ws.SetWriteDeadline(t)
}

// Close - sends close frame and closes underlying connection.
func (c *Conn) Close() error {
	var err error
	c.once.Do(func() {
		c.ws.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(closeGrace),
		)
		err = c.ws.Close()
	})
	return err
}
