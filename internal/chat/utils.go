package chat

import (
	"fmt"
	"net"

	"github.com/google/uuid"
)

// connectionID - generates trace identifier of network connection for logs.
// It is not related to client identity which is used for message attribution.
func connectionID() string {
	return uuid.NewString()
}

// formatAddress - formats specified network address for logging purposes.
func formatAddress(a net.Addr) string {
	if a == nil {
		return "unknown"
	}
	return fmt.Sprintf("%s %s", a.Network(), a.String())
}

// consoleTime - timestamp layout of operator console.
const consoleTime = "2006-01-02 15:04:05"
