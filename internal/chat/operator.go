package chat

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/wtask/linechat/internal/chat/message"
)

// Operator - broadcasts lines typed on the server console to all clients
// and stops the server on exit command.
type Operator struct {
	server  *Server
	console io.Writer

	info *color.Color
	warn *color.Color
}

// NewOperator - builds operator console for the server. Feedback is printed into console,
// colorized output is used when colorize is true.
func NewOperator(server *Server, console io.Writer, colorize bool) *Operator {
	if console == nil {
		console = io.Discard
	}
	o := &Operator{
		server:  server,
		console: console,
		info:    color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
	}
	if colorize {
		o.info.EnableColor()
		o.warn.EnableColor()
	} else {
		o.info.DisableColor()
		o.warn.DisableColor()
	}
	return o
}

func (o *Operator) printf(c *color.Color, format string, a ...any) {
	ts := o.server.clock.Now().Format(consoleTime)
	c.Fprintf(o.console, "[%s] %s\n", ts, fmt.Sprintf(format, a...))
}

// Run - reads operator lines until end of input or exit command.
// Returns nil on exit command or clean end of input.
func (o *Operator) Run(in io.Reader) error {
	o.printf(o.info, "Type messages to broadcast, or '%s' to shutdown server.", message.ExitCommand)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if message.IsExit(line) {
			o.printf(o.warn, "Server shutting down...")
			if o.server.Stop() {
				o.server.logger.Info("Shutdown requested by operator")
			}
			return nil
		}

		delivered, pruned := o.server.Announce(line)
		o.printf(o.info, "Server broadcast: %s", line)
		o.server.logger.Info("Operator broadcast", "message", line, "delivered", delivered, "pruned", len(pruned))
		for _, h := range pruned {
			o.printf(o.warn, "%s dropped: connection is broken", h.Name())
		}
	}
	if err := scanner.Err(); err != nil {
		o.server.logger.Error("Operator console read failed", "error", err)
		return fmt.Errorf("chat.Operator: console read: %w", err)
	}
	o.server.logger.Info("Operator console closed")
	return nil
}
