package lineio

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"
)

var errNegativeCount = errors.New("negative count")

// HeaderFunc turns a header line into the number of lines that follow it.
type HeaderFunc func(header string) (int, error)

type Reader struct {
	src Source
}

func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

func (r *Reader) WriteLine(text string) error {
	return r.src.WriteLine(text)
}

// ReadLine reads a single line. Running out of input is a *ShortInputError.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.src.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", &ShortInputError{Want: 1}
	}

	return line, err
}

// ReadAll reads a count line and returns a batch of that many lines.
func (r *Reader) ReadAll() (*Batch, error) {
	return r.ReadHeader(ParseCount)
}

// ReadN returns a batch of the next n lines.
func (r *Reader) ReadN(n int) *Batch {
	return &Batch{src: r.src, n: max(n, 0)}
}

// ReadHeader reads a header line, hands it to fn and returns a batch of as
// many lines as fn reports.
func (r *Reader) ReadHeader(fn HeaderFunc) (*Batch, error) {
	header, err := r.ReadLine()
	if err != nil {
		return nil, err
	}

	n, err := fn(header)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, &FormatError{Text: header, Err: errNegativeCount}
	}

	return r.ReadN(n), nil
}

// ParseCount parses a record count line. Surrounding whitespace is ignored.
func ParseCount(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &FormatError{Text: text, Err: err}
	}

	if n < 0 {
		return 0, &FormatError{Text: text, Err: errNegativeCount}
	}

	return n, nil
}

// SumHeader counts the lines as the sum of all fields of the header.
func SumHeader(header string) (int, error) {
	var total int
	for v, err := range SplitAsInt(header) {
		if err != nil {
			return 0, err
		}

		if (v > 0 && total > math.MaxInt-v) || (v < 0 && total < math.MinInt-v) {
			return 0, &FormatError{Text: header, Err: ErrCountOverflow}
		}
		total += v
	}

	return total, nil
}

// FieldHeader uses the i-th space separated field of the header as the count.
func FieldHeader(i int) HeaderFunc {
	return func(header string) (int, error) {
		fields := SplitOnSpace(header)
		if i < 0 || i >= len(fields) {
			return 0, &FormatError{Text: header, Err: fmt.Errorf("no field %d", i)}
		}

		return ParseCount(fields[i])
	}
}

// Batch is a single pass sequence of lines pulled lazily from a Source.
type Batch struct {
	src  Source
	n    int
	read int
	used bool
	err  error
}

func (b *Batch) Len() int {
	return b.n
}

// All yields the lines of the batch as they are read. Only the first call
// yields anything; check Err afterwards.
func (b *Batch) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if b.used {
			return
		}
		b.used = true

		for b.read < b.n {
			line, err := b.src.ReadLine()
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = &ShortInputError{Want: b.n, Got: b.read}
				}
				b.err = err
				return
			}
			b.read++

			if !yield(line) {
				return
			}
		}
	}
}

func (b *Batch) Err() error {
	return b.err
}

func (b *Batch) Lines() ([]string, error) {
	// n comes from the input; do not trust it for allocation.
	lines := make([]string, 0, min(b.n, 1024))
	for line := range b.All() {
		lines = append(lines, line)
	}

	if err := b.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
