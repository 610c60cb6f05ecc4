package lineio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// CommentPrefix marks fixture script lines that are not input.
const CommentPrefix = "//"

// Fixture replays a fixed list of lines instead of reading the console.
type Fixture struct {
	lines []string
	pos   int
	w     io.Writer
}

func NewFixture(lines []string, w io.Writer) *Fixture {
	return &Fixture{
		lines: append([]string(nil), lines...),
		w:     w,
	}
}

func (f *Fixture) ReadLine() (string, error) {
	if f.pos >= len(f.lines) {
		return "", io.EOF
	}

	line := f.lines[f.pos]
	f.pos++

	return line, nil
}

func (f *Fixture) WriteLine(text string) error {
	_, err := fmt.Fprintln(f.w, text)
	return err
}

func (f *Fixture) Pos() int {
	return f.pos
}

func (f *Fixture) Remaining() int {
	return len(f.lines) - f.pos
}

// ParseFixture returns the input lines of a fixture script. Lines are
// trimmed; blank lines and lines starting with CommentPrefix are dropped.
func ParseFixture(text string) []string {
	lines, _ := ReadFixture(strings.NewReader(text))
	return lines
}

func ReadFixture(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		lines = append(lines, line)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}

	return lines, nil
}
