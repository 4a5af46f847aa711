package chat

// closeReason - describes why client session has been closed.
type closeReason int

const (
	_ closeReason = iota
	closeLeft
	closeOversize
	closeExit
	closeReadError
	closeWriteError
	closeShutdown
	closePanic
)

func (r closeReason) String() string {
	switch r {
	case closeLeft:
		return "left"
	case closeOversize:
		return "oversize"
	case closeExit:
		return "exit"
	case closeReadError:
		return "read_error"
	case closeWriteError:
		return "write_error"
	case closeShutdown:
		return "shutdown"
	case closePanic:
		return "panic"
	default:
		return "unknown"
	}
}
