// Package lineio reads judge style input one line at a time and writes
// answers back through the same source.
package lineio

import (
	"bufio"
	"io"
)

// Source is where input lines come from and output lines go to.
//
// ReadLine returns io.EOF once the input is exhausted.
type Source interface {
	ReadLine() (string, error)
	WriteLine(text string) error
}

const maxLineSize = 1 << 20

type Console struct {
	scanner   *bufio.Scanner
	w         *bufio.Writer
	autoflush bool
}

func NewConsole(r io.Reader, w io.Writer) *Console {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &Console{
		scanner: s,
		w:       bufio.NewWriter(w),
	}
}

// AutoFlush makes every WriteLine flush, for interactive terminals.
func (c *Console) AutoFlush(v bool) {
	c.autoflush = v
}

func (c *Console) ReadLine() (string, error) {
	if c.scanner.Scan() {
		return c.scanner.Text(), nil
	}

	if err := c.scanner.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

func (c *Console) WriteLine(text string) error {
	if _, err := c.w.WriteString(text); err != nil {
		return err
	}

	if err := c.w.WriteByte('\n'); err != nil {
		return err
	}

	if c.autoflush {
		return c.w.Flush()
	}

	return nil
}

func (c *Console) Flush() error {
	return c.w.Flush()
}
