package lineio

import (
	"errors"
	"strconv"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"
)

func TestSplitBy(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		text     string
		delims   []string
		expected []string
	}{
		{name: "single", text: "a,b,c", delims: []string{","}, expected: []string{"a", "b", "c"}},
		{name: "any of", text: "a,b;c", delims: []string{",", ";"}, expected: []string{"a", "b", "c"}},
		{name: "keeps empty", text: "a,,b,", delims: []string{","}, expected: []string{"a", "", "b", ""}},
		{name: "multi byte delimiter", text: "a::b:c", delims: []string{"::"}, expected: []string{"a", "b:c"}},
		{name: "longest wins", text: "a::b:c", delims: []string{":", "::"}, expected: []string{"a", "b", "c"}},
		{name: "no delimiters", text: "a b", delims: nil, expected: []string{"a b"}},
		{name: "empty delimiter ignored", text: "ab", delims: []string{""}, expected: []string{"ab"}},
		{name: "empty text", text: "", delims: []string{","}, expected: []string{""}},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := SplitBy(tc.text, tc.delims...)
			assert.Assert(t, cmp.DeepEqual(tc.expected, got))
		})
	}
}

func TestSplitter_OmitEmpty(t *testing.T) {
	t.Parallel()

	s := Splitter{Delims: []string{" "}, OmitEmpty: true}

	assert.Assert(t, cmp.DeepEqual([]string{"a", "b"}, s.Split("  a   b ")))
	assert.Assert(t, cmp.DeepEqual([]string{}, s.Split("")))
}

func TestSplitOnSpace(t *testing.T) {
	t.Parallel()

	assert.Assert(t, cmp.DeepEqual([]string{"a", "b", "c"}, SplitOnSpace("a b c")))
	assert.Assert(t, cmp.DeepEqual([]string{""}, SplitOnSpace("")))
	assert.Assert(t, cmp.DeepEqual([]string{"a", "", "b"}, SplitOnSpace("a  b")))
	assert.Assert(t, cmp.DeepEqual([]string{"a\tb"}, SplitOnSpace("a\tb")))
}

func TestSplitAsInt(t *testing.T) {
	t.Parallel()

	got, err := Ints("3 1 4 1 5")
	assert.NilError(t, err)
	assert.Assert(t, cmp.DeepEqual([]int{3, 1, 4, 1, 5}, got))

	_, err = Ints("3 x 5")
	var ferr *FormatError
	assert.Assert(t, errors.As(err, &ferr))
	assert.Equal(t, ferr.Text, "x")
	assert.Assert(t, errors.Is(err, strconv.ErrSyntax))
}

func TestSplitAsInt_stopsAtFirstError(t *testing.T) {
	t.Parallel()

	var vals []int
	var errs int
	for v, err := range SplitAsInt("1 x 2 y") {
		if err != nil {
			errs++
			continue
		}
		vals = append(vals, v)
	}

	assert.Assert(t, cmp.DeepEqual([]int{1}, vals))
	assert.Equal(t, errs, 1)
}

func TestSplitAs(t *testing.T) {
	t.Parallel()

	var got []float64
	for v, err := range SplitAs("1.5 2 -0.25", func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}) {
		assert.NilError(t, err)
		got = append(got, v)
	}

	assert.Assert(t, cmp.DeepEqual([]float64{1.5, 2, -0.25}, got))
}
