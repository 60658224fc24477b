// Package wave generates the padding offsets that drive the wiggle animation.
//
// An offset is the number of fill characters printed before the text on a
// given frame. Offsets follow a discretized cosine bell:
//
//	offset(i) = round(-width * (cos(2π/height * (i mod height)) - 1))
//
// so the sequence starts at 0, peaks at 2*width half way through the cycle
// and repeats every height steps.
package wave

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// Defaults used when no other source provides a value.
const (
	DefaultHeight      = 40
	DefaultWidth       = 15
	DefaultDelayMillis = 16.0
	DefaultSpace       = " "
)

// ErrInvalidConfig is wrapped by every error returned from New.
var ErrInvalidConfig = errors.New("invalid wave configuration")

// Config describes one wave. It is immutable once built by New; the zero
// value is not usable.
type Config struct {
	height int
	width  int
	delay  time.Duration
	space  rune
	step   float64 // 2π / height
}

// New validates the settings and builds a Config.
// delayMillis is the pause between frames in milliseconds.
func New(height, width int, delayMillis float64, space string) (Config, error) {
	if height <= 0 {
		return Config{}, fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, height)
	}
	if width <= 0 {
		return Config{}, fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, width)
	}
	if math.IsNaN(delayMillis) || math.IsInf(delayMillis, 0) || delayMillis < 0 {
		return Config{}, fmt.Errorf("%w: delay must be a non-negative number of milliseconds, got %v", ErrInvalidConfig, delayMillis)
	}
	if utf8.RuneCountInString(space) != 1 {
		return Config{}, fmt.Errorf("%w: space must be exactly one character, got %q", ErrInvalidConfig, space)
	}
	r, _ := utf8.DecodeRuneInString(space)
	if r == utf8.RuneError {
		return Config{}, fmt.Errorf("%w: space %q is not valid UTF-8", ErrInvalidConfig, space)
	}

	return Config{
		height: height,
		width:  width,
		delay:  time.Duration(delayMillis * float64(time.Millisecond)),
		space:  r,
		step:   (2 * math.Pi) / float64(height),
	}, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	cfg, err := New(DefaultHeight, DefaultWidth, DefaultDelayMillis, DefaultSpace)
	if err != nil {
		panic(err) // constants are valid
	}
	return cfg
}

// Height returns the number of steps in one full cycle.
func (c Config) Height() int { return c.height }

// Width returns the amplitude scale.
func (c Config) Width() int { return c.width }

// Delay returns the pause between frames.
func (c Config) Delay() time.Duration { return c.delay }

// Space returns the fill character.
func (c Config) Space() rune { return c.space }

// Span returns the largest offset the wave reaches, 2*width.
func (c Config) Span() int { return 2 * c.width }

// Offset returns the padding length for iteration index i.
func (c Config) Offset(i int) int {
	i %= c.height
	if i < 0 {
		i += c.height
	}
	return int(math.RoundToEven(-float64(c.width) * (math.Cos(c.step*float64(i)) - 1)))
}

// Offsets returns the lazy offset sequence. With limit > 0 it yields exactly
// limit values for indices 0..limit-1; otherwise it never ends.
// Every range over the returned sequence starts again from index 0.
func (c Config) Offsets(limit int) iter.Seq[int] {
	return func(yield func(int) bool) {
		i := 0
		for n := 0; limit <= 0 || n < limit; n++ {
			if !yield(c.Offset(i)) {
				return
			}
			i = (i + 1) % c.height
		}
	}
}

// Pad returns n repetitions of the fill character.
func (c Config) Pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(c.space), n)
}

func (c Config) String() string {
	return fmt.Sprintf("height=%d width=%d delay=%s space=%q", c.height, c.width, c.delay, c.space)
}
