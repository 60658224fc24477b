// Package render draws wave offsets to a terminal.
//
// Two strategies share one loop: pull an offset, pause for the configured
// delay, then write a single frame.
//
//	wiggle  each frame is a new line, so the text traces a scrolling wave
//	shm     each frame overwrites the current line, so the text swings in place
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dkoosis/wiggle/pkg/wave"
)

var (
	// ErrInterrupted is returned when the context ends before the sequence does.
	ErrInterrupted = errors.New("render interrupted")

	// ErrEmptyText is returned when there is nothing to animate.
	ErrEmptyText = errors.New("text must not be empty")

	// ErrTextTooWide is returned by shm when the text alone exceeds 2*width.
	ErrTextTooWide = errors.New("text is wider than the wave span")

	// ErrUnknownMode is returned by ParseMode and Run for unsupported modes.
	ErrUnknownMode = errors.New("unknown render mode")
)

// Mode selects the rendering strategy.
type Mode int

const (
	ModeWiggle Mode = iota
	ModeSHM
)

// modeNames lists the accepted mode names for error text.
func modeNames() []string {
	return []string{ModeWiggle.String(), ModeSHM.String()}
}

func (m Mode) String() string {
	switch m {
	case ModeWiggle:
		return "wiggle"
	case ModeSHM:
		return "shm"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a mode name to a Mode. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wiggle":
		return ModeWiggle, nil
	case "shm":
		return ModeSHM, nil
	default:
		return 0, fmt.Errorf("%w %q (expected %s)", ErrUnknownMode, s, strings.Join(modeNames(), " or "))
	}
}

// Renderer writes animation frames for one wave configuration.
// It is not safe for concurrent use.
type Renderer struct {
	cfg   wave.Config
	tw    *termWriter
	sleep func(ctx context.Context, d time.Duration) error
}

// New returns a renderer writing to out.
func New(cfg wave.Config, out io.Writer) *Renderer {
	return &Renderer{
		cfg:   cfg,
		tw:    newTermWriter(out),
		sleep: sleepCtx,
	}
}

// Frames returns the number of frames written so far.
func (r *Renderer) Frames() int {
	return r.tw.Frames()
}

// Run renders text in the given mode. itr <= 0 runs until ctx is done.
func (r *Renderer) Run(ctx context.Context, mode Mode, text string, itr int) error {
	switch mode {
	case ModeWiggle:
		return r.Wiggle(ctx, text, itr)
	case ModeSHM:
		return r.SHM(ctx, text, itr)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

// Wiggle prints one line per offset: the padding followed by text.
func (r *Renderer) Wiggle(ctx context.Context, text string, itr int) error {
	if text == "" {
		return ErrEmptyText
	}
	return r.loop(ctx, itr, func(n int) error {
		return r.tw.WriteFrame(r.cfg.Pad(n), text, "", "\n")
	})
}

// WiggleForever is Wiggle without an iteration limit.
func (r *Renderer) WiggleForever(ctx context.Context, text string) error {
	return r.Wiggle(ctx, text, 0)
}

// SHM redraws a single line in place. Each frame is padded with trailing fill
// to 2*width characters when the offset allows it, then returns the cursor
// with a carriage return.
func (r *Renderer) SHM(ctx context.Context, text string, itr int) error {
	if text == "" {
		return ErrEmptyText
	}
	textLen := utf8.RuneCountInString(text)
	if textLen > r.cfg.Span() {
		return fmt.Errorf("%w: %d characters, span is %d (width %d)",
			ErrTextTooWide, textLen, r.cfg.Span(), r.cfg.Width())
	}
	return r.loop(ctx, itr, func(n int) error {
		return r.tw.WriteFrame(r.cfg.Pad(n), text, r.cfg.Pad(trailing(r.cfg, n, textLen)), "\r")
	})
}

func (r *Renderer) loop(ctx context.Context, itr int, emit func(n int) error) error {
	delay := r.cfg.Delay()
	for n := range r.cfg.Offsets(itr) {
		if err := r.sleep(ctx, delay); err != nil {
			return fmt.Errorf("%w after %d frames: %w", ErrInterrupted, r.tw.Frames(), err)
		}
		if err := emit(n); err != nil {
			return err
		}
	}
	return nil
}

// trailing is the fill needed after the text to reach the wave span.
func trailing(cfg wave.Config, n, textLen int) int {
	return max(0, cfg.Span()-n-textLen)
}

// WiggleFrame returns the wiggle frame for offset n.
func WiggleFrame(cfg wave.Config, n int, text string) string {
	return cfg.Pad(n) + text + "\n"
}

// SHMFrame returns the shm frame for offset n.
func SHMFrame(cfg wave.Config, n int, text string) string {
	return cfg.Pad(n) + text + cfg.Pad(trailing(cfg, n, utf8.RuneCountInString(text))) + "\r"
}

// sleepCtx pauses for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
