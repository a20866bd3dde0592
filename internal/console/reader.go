package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputUnreadable is returned when a line cannot be read from the input
var ErrInputUnreadable = errors.New("input stream unreadable")

// Normalize trims surrounding whitespace and lowercases s
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Reader reads one name per line; lines may be of any length
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadName returns the next normalized line.
// A last line without a newline is still returned; io.EOF comes after it.
func (r *Reader) ReadName() (string, error) {
	line, err := r.r.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", io.EOF
		}
		return Normalize(line), nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}
	return Normalize(line), nil
}
