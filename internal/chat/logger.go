package chat

import (
	"io"
	"log/slog"
)

// discardLogger - used when logging is explicitly switched off.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func clientAttrs(name string, id uint64, connID, remote string) []any {
	return []any{
		"client", name,
		"client_id", id,
		"conn_id", connID,
		"remote", remote,
	}
}
