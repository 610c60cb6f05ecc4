package main

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"code.selman.me/paiza/lineio"
)

const defaultLabel = "arg: "

type answerOptions struct {
	label string
}

type answerFunc func(r *lineio.Reader, opts answerOptions) error

var answers = map[string]answerFunc{
	"echo":  echoAnswer,
	"split": splitAnswer,
	"sum":   sumAnswer,
}

func answerNames() []string {
	var names []string
	for name := range answers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// echoAnswer repeats every record of a count prefixed batch.
func echoAnswer(r *lineio.Reader, opts answerOptions) error {
	b, err := r.ReadAll()
	if err != nil {
		return err
	}

	for line := range b.All() {
		if err := r.WriteLine(opts.label + line); err != nil {
			return err
		}
	}

	return b.Err()
}

// splitAnswer reads a "a b" header followed by a+b lines and writes the first
// a lines and the following b lines under separate labels.
func splitAnswer(r *lineio.Reader, _ answerOptions) error {
	var a int
	b, err := r.ReadHeader(func(header string) (int, error) {
		first, second, err := twoPartHeader(header)
		a = first
		return first + second, err
	})
	if err != nil {
		return err
	}

	lines, err := b.Lines()
	if err != nil {
		return err
	}

	parts := []struct {
		label string
		lines []string
	}{
		{"A: ", lines[:a]},
		{"B: ", lines[a:]},
	}

	for _, p := range parts {
		for _, line := range p.lines {
			if err := r.WriteLine(p.label + line); err != nil {
				return err
			}
		}
	}

	return nil
}

func twoPartHeader(header string) (int, int, error) {
	vs, err := lineio.Ints(header)
	if err != nil {
		return 0, 0, err
	}

	if len(vs) != 2 {
		return 0, 0, fmt.Errorf("header %q: want 2 counts, got %d", header, len(vs))
	}

	if vs[0] < 0 || vs[1] < 0 {
		return 0, 0, fmt.Errorf("header %q: negative count", header)
	}

	if vs[0] > math.MaxInt-vs[1] {
		return 0, 0, &lineio.FormatError{Text: header, Err: lineio.ErrCountOverflow}
	}

	return vs[0], vs[1], nil
}

// sumAnswer writes the sum of the space separated integers of every record.
func sumAnswer(r *lineio.Reader, _ answerOptions) error {
	b, err := r.ReadAll()
	if err != nil {
		return err
	}

	var l int
	for line := range b.All() {
		l++

		var total int
		for v, err := range lineio.SplitAsInt(line) {
			if err != nil {
				return fmt.Errorf("line# %v: %w", l, err)
			}
			total += v
		}

		if err := r.WriteLine(strconv.Itoa(total)); err != nil {
			return err
		}
	}

	return b.Err()
}
