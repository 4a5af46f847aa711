package message

import "strings"

// DefaultMaxSize - default maximum size in bytes of accepted message.
const DefaultMaxSize = 1024

// ExitCommand - line which closes client session (or the whole server when typed by operator).
const ExitCommand = "exit"

// Normalize - strips line terminator and surrounding whitespace.
func Normalize(line string) string {
	return strings.TrimSpace(line)
}

// IsExit - case-insensitive check for exit command.
func IsExit(message string) bool {
	return strings.EqualFold(message, ExitCommand)
}

// Echo - formats response to message author.
func Echo(message string) string {
	return "You said: " + message
}

// Relay - formats message of one client for the rest of clients.
func Relay(author, message string) string {
	return author + " says: " + message
}

// Server - formats operator message.
func Server(message string) string {
	return "Server says: " + message
}
