package chat

import (
	"fmt"
	"sync/atomic"

	"github.com/wtask/linechat/internal/chat/broker"
)

// identities - source of client identities. Values are never reused.
type identities struct {
	last atomic.Uint64
}

func (i *identities) next() broker.ID {
	return broker.ID(i.last.Add(1))
}

// displayName - name of the client used in broadcast messages.
func displayName(id broker.ID) string {
	return fmt.Sprintf("Client %d", uint64(id))
}
