package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"code.selman.me/paiza/lineio"
)

type testCase struct {
	Name   string  `yaml:"name"`
	Answer string  `yaml:"answer"`
	Label  *string `yaml:"label"`
	Input  string  `yaml:"input"`
	Want   string  `yaml:"want"`
}

type caseResult struct {
	tc   testCase
	diff string
	err  error
}

func (r caseResult) status() string {
	switch {
	case r.err != nil:
		return colorFail.Sprint("ERROR")
	case r.diff != "":
		return colorFail.Sprint("FAIL")
	default:
		return colorPass.Sprint("PASS")
	}
}

func loadCases(r io.Reader) ([]testCase, error) {
	var cases []testCase
	if err := yaml.NewDecoder(r).Decode(&cases); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	for i := range cases {
		if cases[i].Name == "" {
			cases[i].Name = fmt.Sprintf("case %d", i+1)
		}
		if cases[i].Answer == "" {
			cases[i].Answer = "echo"
		}
	}

	return cases, nil
}

func runCase(tc testCase) ([]string, error) {
	answer, ok := answers[tc.Answer]
	if !ok {
		return nil, fmt.Errorf("unknown answer: %q", tc.Answer)
	}

	opts := answerOptions{label: defaultLabel}
	if tc.Label != nil {
		opts.label = *tc.Label
	}

	var out bytes.Buffer
	src := lineio.NewFixture(lineio.ParseFixture(tc.Input), &out)
	if err := answer(lineio.NewReader(src), opts); err != nil {
		return nil, err
	}

	return outputLines(out.String()), nil
}

func check(cases []testCase, stdout io.Writer, logger *slog.Logger) error {
	results := make([]caseResult, 0, len(cases))

	var failed int
	for _, tc := range cases {
		res := caseResult{tc: tc}

		got, err := runCase(tc)
		if err != nil {
			res.err = err
		} else {
			res.diff = cmp.Diff(outputLines(tc.Want), got)
		}

		if res.err != nil || res.diff != "" {
			failed++
		}

		logger.Debug("case", "name", tc.Name, "answer", tc.Answer, "err", res.err, "pass", res.err == nil && res.diff == "")
		results = append(results, res)
	}

	table := tablewriter.NewWriter(stdout)
	table.SetHeader([]string{"Case", "Answer", "Result"})
	table.SetAutoFormatHeaders(false)
	for _, res := range results {
		table.Append([]string{res.tc.Name, res.tc.Answer, res.status()})
	}
	table.Render()

	for _, res := range results {
		switch {
		case res.err != nil:
			fmt.Fprintf(stdout, "\n%v: %v\n", res.tc.Name, res.err)
		case res.diff != "":
			fmt.Fprintf(stdout, "\n%v (-want +got):\n%s", res.tc.Name, res.diff)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(cases))
	}

	return nil
}

// outputLines splits text into lines, ignoring trailing empty lines.
func outputLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
