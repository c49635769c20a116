package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jessevdk/go-flags"
	"github.com/mgnsk/circstack"
	"github.com/mgnsk/circstack/internal/logging"
	"github.com/mgnsk/circstack/internal/script"
	"github.com/rs/zerolog"
)

type options struct {
	Script  string `short:"s" long:"script" description:"TOML script of operations to apply"`
	Verbose bool   `short:"v" long:"verbose" description:"Log every applied operation"`
	NoColor bool   `long:"no-color" description:"Disable colored log output"`

	Positional struct {
		Values []string `positional-arg-name:"<value>"`
	} `positional-args:"yes"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(os.Stdout, err)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options

	// Errors are returned to main, which prints them once.
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.ShortDescription = "Replay operations on a circular stack"

	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	logger := logging.New(stderr, level, opts.NoColor)

	s := &script.Script{}
	if opts.Script != "" {
		data, err := os.ReadFile(opts.Script)
		if err != nil {
			return err
		}

		if s, err = script.Parse(data); err != nil {
			return err
		}
	}

	if len(opts.Positional.Values) > 0 {
		values, err := parseValues(opts.Positional.Values)
		if err != nil {
			return err
		}
		s.Values = values
	}

	st, err := s.Stack(circstack.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info().Int("len", st.Len()).Int("ops", len(s.Ops)).Msg("loaded")

	if st, err = s.Run(st, logger); err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, st.String())

	return err
}

func parseValues(args []string) ([]int64, error) {
	values := make([]int64, 0, len(args))

	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value '%s': %w", arg, err)
		}
		values = append(values, v)
	}

	return values, nil
}
