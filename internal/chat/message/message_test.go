package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(test *testing.T) {
	cases := []struct{ line, expected string }{
		{"hello", "hello"},
		{"  hello world \r", "hello world"},
		{"\t\n", ""},
		{"Hello, 世界 ", "Hello, 世界"},
	}
	for _, c := range cases {
		assert.Equal(test, c.expected, Normalize(c.line), "line %q", c.line)
	}
}

func TestIsExit(test *testing.T) {
	for _, m := range []string{"exit", "EXIT", "Exit", "eXiT"} {
		assert.True(test, IsExit(m), m)
	}
	for _, m := range []string{"", "exit!", "quit", "exit now"} {
		assert.False(test, IsExit(m), m)
	}
}

func TestFormats(test *testing.T) {
	assert.Equal(test, "You said: hello", Echo("hello"))
	assert.Equal(test, "Client 1 says: hi", Relay("Client 1", "hi"))
	assert.Equal(test, "Server says: bye", Server("bye"))
}

func TestScanner(test *testing.T) {
	s := NewScanner(strings.NewReader("one\r\ntwo\n\nthree"), 16)
	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	require.NoError(test, s.Err())
	assert.Equal(test, []string{"one", "two", "", "three"}, lines)
}

func TestScanner_Limits(test *testing.T) {
	// padded line fits raw limit and may still be trimmed to the accepted size
	padded := strings.Repeat(" ", 20) + strings.Repeat("x", 10) + "\n"
	s := NewScanner(strings.NewReader(padded), 10)
	require.True(test, s.Scan())
	assert.Equal(test, strings.Repeat("x", 10), Normalize(s.Text()))

	huge := strings.Repeat("x", 10*rawSlack+10) + "\n"
	s = NewScanner(strings.NewReader(huge), 10)
	assert.False(test, s.Scan())
	assert.ErrorIs(test, s.Err(), ErrTooLong)
	assert.False(test, s.Scan(), "scanner must stay stopped after error")

	// framing bound applies to raw bytes, whitespace padding counts too
	overPadded := strings.Repeat(" ", 10*rawSlack+10) + "hi\n"
	s = NewScanner(strings.NewReader(overPadded), 10)
	assert.False(test, s.Scan())
	assert.ErrorIs(test, s.Err(), ErrTooLong)
}

func TestScanner_InvalidEncoding(test *testing.T) {
	s := NewScanner(strings.NewReader("ok\n"+string([]byte{226, 140})+"\n"), 0)
	require.True(test, s.Scan())
	assert.Equal(test, "ok", s.Text())
	assert.False(test, s.Scan())
	assert.ErrorIs(test, s.Err(), ErrInvalidEncoding)
}
