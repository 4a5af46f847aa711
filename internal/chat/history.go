package chat

// MessageHistory - interface to access ordered history of broadcast lines
type MessageHistory interface {
	// Push - push new line into history
	Push(string)
	// Tail - get a number of latest lines from history in chronological order
	Tail(n int) []string
}

func historyPush(h MessageHistory, line string) {
	if h == nil {
		return
	}
	h.Push(line)
}

func historyTail(h MessageHistory, n int) []string {
	if h == nil || n <= 0 {
		return []string{}
	}
	return h.Tail(n)
}
