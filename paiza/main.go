package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	ansicolor "github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"code.selman.me/paiza/lineio"
)

func main() {
	if err := realMain(
		context.Background(),
		os.Args,
		os.Stdin,
		os.Stdout,
		os.Stderr,
	); err != nil {
		colorError.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func realMain(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) error {
	exec := args[0]
	options := []ff.Option{ff.WithEnvVarPrefix("PAIZA")}

	runFlags := flag.NewFlagSet("run", flag.ContinueOnError)
	runFlags.SetOutput(stderr)
	flagFixture := runFlags.String("fixture", "", "read input from a fixture script instead of stdin")
	flagLabel := runFlags.String("label", defaultLabel, "prefix for echoed lines")
	flagRunDebug := runFlags.Bool("debug", false, "debug logging")

	runCmd := &ffcli.Command{
		Name:       "run",
		ShortUsage: fmt.Sprintf("%v run [flags] [%v]", exec, strings.Join(answerNames(), "|")),
		ShortHelp:  "Answers from stdin, or from a fixture script with -fixture.",
		FlagSet:    runFlags,
		Options:    options,
		Exec: func(_ context.Context, args []string) error {
			logger := newLogger(*flagRunDebug, stderr)

			name := "echo"
			if len(args) > 0 {
				name = args[0]
			}

			answer, ok := answers[name]
			if !ok {
				return fmt.Errorf("unknown answer: %q", name)
			}

			src, flush, err := openSource(*flagFixture, stdin, stdout, logger)
			if err != nil {
				return err
			}

			logger.Debug("answer", "name", name)
			err = answer(lineio.NewReader(src), answerOptions{label: *flagLabel})
			return errors.Join(err, flush())
		},
	}

	checkFlags := flag.NewFlagSet("check", flag.ContinueOnError)
	checkFlags.SetOutput(stderr)
	flagCases := checkFlags.String("cases", "cases.yaml", "YAML file of cases")
	flagCheckDebug := checkFlags.Bool("debug", false, "debug logging")

	checkCmd := &ffcli.Command{
		Name:       "check",
		ShortUsage: fmt.Sprintf("%v check [-cases FILE]", exec),
		ShortHelp:  "Runs answers against YAML cases and compares their output.",
		FlagSet:    checkFlags,
		Options:    options,
		Exec: func(_ context.Context, _ []string) error {
			logger := newLogger(*flagCheckDebug, stderr)

			f, err := os.Open(*flagCases)
			if err != nil {
				return err
			}
			defer f.Close()

			cases, err := loadCases(f)
			if err != nil {
				return fmt.Errorf("%v: %w", *flagCases, err)
			}

			return check(cases, stdout, logger)
		},
	}

	fixtureCmd := &ffcli.Command{
		Name:       "fixture",
		ShortUsage: fmt.Sprintf("%v fixture [FILE]", exec),
		ShortHelp:  "Prints the input lines of a fixture script.",
		Exec: func(_ context.Context, args []string) error {
			in := stdin
			if len(args) > 0 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			lines, err := lineio.ReadFixture(in)
			if err != nil {
				return err
			}

			for _, line := range lines {
				fmt.Fprintln(stdout, line)
			}

			return nil
		},
	}

	rootCmd := &ffcli.Command{
		ShortUsage:  fmt.Sprintf("%v <subcommand>", exec),
		Subcommands: []*ffcli.Command{runCmd, checkCmd, fixtureCmd},
		Exec: func(_ context.Context, _ []string) error {
			return flag.ErrHelp
		},
	}

	return rootCmd.ParseAndRun(ctx, args[1:])
}

func openSource(
	fixture string,
	stdin io.Reader,
	stdout io.Writer,
	logger *slog.Logger,
) (lineio.Source, func() error, error) {
	if fixture != "" {
		f, err := os.Open(fixture)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()

		lines, err := lineio.ReadFixture(f)
		if err != nil {
			return nil, nil, fmt.Errorf("%v: %w", fixture, err)
		}

		logger.Debug("source", "backend", "fixture", "path", fixture, "lines", len(lines))
		return lineio.NewFixture(lines, stdout), func() error { return nil }, nil
	}

	c := lineio.NewConsole(stdin, stdout)
	if f, ok := stdout.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		c.AutoFlush(true)
	}

	logger.Debug("source", "backend", "console")
	return c, c.Flush, nil
}

func newLogger(debug bool, stderr io.Writer) *slog.Logger {
	logout := io.Discard
	if debug {
		logout = stderr
	}

	return slog.New(
		slog.NewTextHandler(
			logout,
			&slog.HandlerOptions{Level: slog.LevelDebug},
		),
	)
}

var (
	colorError = ansicolor.New(ansicolor.FgRed)
	colorPass  = ansicolor.New(ansicolor.FgGreen)
	colorFail  = ansicolor.New(ansicolor.FgRed, ansicolor.Bold)
)
