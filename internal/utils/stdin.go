package utils

import (
	"errors"
	"io"
	"os"
)

// ErrNoPipedInput is returned when input was expected on stdin but stdin is a terminal
var ErrNoPipedInput = errors.New("expected input on stdin, but stdin is a terminal")

// ReadFromStdin reads all content from r, which is normally os.Stdin.
// When r is a terminal it returns ErrNoPipedInput instead of blocking.
func ReadFromStdin(r io.Reader) ([]byte, error) {
	if f, ok := r.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return nil, err
		}
		// If it's a terminal, we don't want to block waiting for input
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return nil, ErrNoPipedInput
		}
	}
	return io.ReadAll(r)
}
