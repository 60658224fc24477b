// wiggle animates text in the terminal along a cosine wave.
//
// Usage:
//
//	wiggle hello
//	wiggle hello shm -W 20
//	wiggle hello 20 10 30 -I 100
//
// Modes:
//
//	wiggle  one new line per frame, the text traces a scrolling wave
//	shm     the text swings left and right on a single line
//
// Settings resolve from flags, then WIGGLE_* environment variables, then
// .wiggle.yaml, then built-in defaults. Ctrl-C stops the animation and
// clears the screen.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"

	"github.com/dkoosis/wiggle/internal/config"
	"github.com/dkoosis/wiggle/internal/usage"
	"github.com/dkoosis/wiggle/internal/version"
	"github.com/dkoosis/wiggle/pkg/render"
	"github.com/dkoosis/wiggle/pkg/wave"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "wiggle: %v\n", err)
		fmt.Fprintf(stderr, "Run 'wiggle --help' for usage.\n")
		return 2
	}

	if opts.help {
		fmt.Fprint(stdout, helpText(isTTYWriter(stdout) && os.Getenv("NO_COLOR") == ""))
		return 0
	}
	if opts.version {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	resolved, err := config.ResolveConfig(opts.cli)
	if err != nil {
		fmt.Fprintf(stderr, "wiggle: %v\n", err)
		return 2
	}
	dbg := debugLogger{enabled: resolved.Debug, w: stderr}
	dbg.printf("ResolveConfig", "%s (height=%s width=%s delay=%s space=%s) config file=%q",
		resolved.Wave, resolved.HeightSource, resolved.WidthSource, resolved.DelaySource, resolved.SpaceSource, resolved.ConfigPath)

	defer recordUsage(usage.New(resolved.UsageLog), args, dbg)

	text := norm.NFC.String(opts.text)
	checkFit(stdout, stderr, resolved.Wave, opts.mode, text, dbg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbg.printf("run", "mode=%s iterations=%d", opts.mode, opts.iterations)
	return runRender(ctx, render.New(resolved.Wave, stdout), opts, text, stdout, stderr, dbg)
}

// runRender drives the renderer and maps its outcome to an exit code:
// 0 completed or interrupted, 1 I/O failure, 2 invalid input.
func runRender(ctx context.Context, r *render.Renderer, opts *options, text string, stdout, stderr io.Writer, dbg debugLogger) int {
	err := r.Run(ctx, opts.mode, text, opts.iterations)
	switch {
	case err == nil:
		if opts.mode == render.ModeSHM && isTTYWriter(stdout) {
			fmt.Fprintln(stdout) // keep the last frame visible
		}
		dbg.printf("run", "completed %d frames", r.Frames())
		return 0
	case errors.Is(err, render.ErrInterrupted):
		dbg.printf("run", "%v", err)
		if isTTYWriter(stdout) {
			_ = render.ClearScreen(stdout)
		}
		return 0
	case errors.Is(err, render.ErrEmptyText), errors.Is(err, render.ErrTextTooWide), errors.Is(err, wave.ErrInvalidConfig):
		fmt.Fprintf(stderr, "wiggle: %v\n", err)
		return 2
	default:
		fmt.Fprintf(stderr, "wiggle: %v\n", err)
		return 1
	}
}

// recordUsage appends this run to the usage log. Failures never change the
// exit code.
func recordUsage(log *usage.Log, args []string, dbg debugLogger) {
	if !log.Enabled() {
		return
	}
	argv := append([]string{"wiggle"}, args...)
	if err := log.Record(time.Now(), argv); err != nil {
		dbg.printf("recordUsage", "%v", err)
		return
	}
	dbg.printf("recordUsage", "recorded run in %s", log.Path())
}

// checkFit warns when the widest frame will not fit in the terminal.
// Frames are built by character count; this only estimates display width.
func checkFit(stdout, stderr io.Writer, cfg wave.Config, mode render.Mode, text string, dbg debugLogger) {
	if mode == render.ModeSHM {
		if over := shmOverhang(cfg, text); over > 0 {
			dbg.printf("checkFit", "shm frames near the crest overhang the span by %d columns; later frames leave them stale", over)
		}
	}
	if !isTTYWriter(stdout) {
		return
	}
	cols, _ := termSize(stdout)
	widest := frameWidth(cfg, text)
	dbg.printf("checkFit", "mode=%s widest frame %d columns, terminal %d", mode, widest, cols)
	if widest > cols {
		fmt.Fprintf(stderr, "wiggle: warning: frames reach %d columns but the terminal is %d wide; lines will wrap\n", widest, cols)
	}
}

// shmOverhang is how far the longest shm frame reaches past the wave span.
// Shorter frames that follow it do not cover those columns.
func shmOverhang(cfg wave.Config, text string) int {
	half := cfg.Height() / 2
	crest := max(cfg.Offset(half), cfg.Offset(half+1))
	return max(0, crest+utf8.RuneCountInString(text)-cfg.Span())
}

// frameWidth is the display width of the widest frame: a full-span offset
// followed by the text.
func frameWidth(cfg wave.Config, text string) int {
	return cfg.Span()*runewidth.RuneWidth(cfg.Space()) + runewidth.StringWidth(text)
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}

// debugLogger prints "[DEBUG scope] ..." lines when enabled.
type debugLogger struct {
	enabled bool
	w       io.Writer
}

func (d debugLogger) printf(scope, format string, args ...any) {
	if !d.enabled {
		return
	}
	fmt.Fprintf(d.w, "[DEBUG %s] %s\n", scope, fmt.Sprintf(format, args...))
}
