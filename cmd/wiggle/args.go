package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/dkoosis/wiggle/internal/config"
	"github.com/dkoosis/wiggle/pkg/render"
)

// options is the parsed command line.
type options struct {
	cli        config.CliFlags
	text       string
	mode       render.Mode
	iterations int
	help       bool
	version    bool
}

var errMissingText = errors.New("missing required argument <text>")

// parseArgs parses flags and positionals. Flags may appear anywhere; the
// first positional is the text, a mode word may follow anywhere after it,
// and up to three more positionals set height, width and delay.
func parseArgs(args []string) (*options, error) {
	o := &options{mode: render.ModeWiggle}

	fs := flag.NewFlagSet("wiggle", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are reported by run
	fs.Usage = func() {}

	fs.IntVar(&o.iterations, "I", 0, "")
	fs.IntVar(&o.iterations, "iterations", 0, "Number of frames; 0 or less runs until interrupted")
	fs.IntVar(&o.cli.Height, "H", 0, "")
	fs.IntVar(&o.cli.Height, "height", 0, "Steps per wave cycle")
	fs.IntVar(&o.cli.Width, "W", 0, "")
	fs.IntVar(&o.cli.Width, "width", 0, "Amplitude; the wave spans twice this many columns")
	fs.Float64Var(&o.cli.Delay, "d", 0, "")
	fs.Float64Var(&o.cli.Delay, "delay", 0, "Milliseconds between frames")
	fs.StringVar(&o.cli.Space, "s", "", "")
	fs.StringVar(&o.cli.Space, "space", "", "Fill character")
	fs.StringVar(&o.cli.ConfigFile, "config", "", "Path to a YAML config file")
	fs.StringVar(&o.cli.UsageLog, "usage-log", "", "Path of the usage log")
	fs.BoolVar(&o.cli.NoUsage, "no-usage", false, "Do not record this run in the usage log")
	fs.BoolVar(&o.cli.Debug, "debug", false, "Print debug information to stderr")
	fs.BoolVar(&o.help, "h", false, "")
	fs.BoolVar(&o.help, "help", false, "Show help")
	fs.BoolVar(&o.version, "version", false, "Show version")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "H", "height":
			o.cli.HeightSet = true
		case "W", "width":
			o.cli.WidthSet = true
		case "d", "delay":
			o.cli.DelaySet = true
		case "s", "space":
			o.cli.SpaceSet = true
		case "usage-log":
			o.cli.UsageLogSet = true
		case "no-usage":
			o.cli.NoUsageSet = true
		case "debug":
			o.cli.DebugSet = true
		}
	})

	if o.help || o.version {
		return o, nil
	}
	if len(positional) == 0 || positional[0] == "" {
		return nil, errMissingText
	}
	o.text = positional[0]

	if err := o.applyPositionals(positional[1:]); err != nil {
		return nil, err
	}
	return o, nil
}

// parseInterspersed runs fs.Parse repeatedly so flags may follow positionals.
// Everything after a "--" terminator is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// applyPositionals handles the mode word and positional height, width, delay.
// Positional numbers take precedence over the equivalent flags.
func (o *options) applyPositionals(rest []string) error {
	modeSet := false
	var numbers []string
	for _, arg := range rest {
		if !modeSet {
			if m, err := render.ParseMode(arg); err == nil {
				o.mode = m
				modeSet = true
				continue
			}
		}
		numbers = append(numbers, arg)
	}

	if len(numbers) > 3 {
		return fmt.Errorf("unexpected argument %q (expected at most height, width and delay)", numbers[3])
	}

	for i, arg := range numbers {
		switch i {
		case 0:
			n, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid height %q: expected an integer", arg)
			}
			o.cli.Height, o.cli.HeightSet = n, true
		case 1:
			n, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid width %q: expected an integer", arg)
			}
			o.cli.Width, o.cli.WidthSet = n, true
		case 2:
			f, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("invalid delay %q: expected a number", arg)
			}
			o.cli.Delay, o.cli.DelaySet = f, true
		}
	}
	return nil
}
