package lineio

import (
	"iter"
	"strconv"
	"strings"
)

// Splitter splits text on any of Delims. Empty tokens are kept unless
// OmitEmpty is set.
type Splitter struct {
	Delims    []string
	OmitEmpty bool
}

func (s Splitter) Split(text string) []string {
	var tokens []string
	add := func(tok string) {
		if tok == "" && s.OmitEmpty {
			return
		}
		tokens = append(tokens, tok)
	}

	start := 0
	for i := 0; i < len(text); {
		if l := s.matchAt(text, i); l > 0 {
			add(text[start:i])
			i += l
			start = i
			continue
		}
		i++
	}
	add(text[start:])

	if tokens == nil {
		return []string{}
	}

	return tokens
}

// matchAt returns the length of the longest delimiter at text[i:].
func (s Splitter) matchAt(text string, i int) int {
	var l int
	for _, d := range s.Delims {
		if d != "" && len(d) > l && strings.HasPrefix(text[i:], d) {
			l = len(d)
		}
	}
	return l
}

func SplitBy(text string, delims ...string) []string {
	return Splitter{Delims: delims}.Split(text)
}

func SplitOnSpace(text string) []string {
	return SplitBy(text, " ")
}

// SplitAs splits text on spaces and parses each token with parse as it is
// pulled. Iteration stops after the first error.
func SplitAs[T any](text string, parse func(string) (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, tok := range SplitOnSpace(text) {
			v, err := parse(tok)
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

func SplitAsInt(text string) iter.Seq2[int, error] {
	return SplitAs(text, parseInt)
}

func Ints(text string) ([]int, error) {
	var vs []int
	for v, err := range SplitAsInt(text) {
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}

	return vs, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FormatError{Text: s, Err: err}
	}
	return v, nil
}
