package progress

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/napalu/gocli/style"
)

// DefaultSymbols is the width of the bar when WithSymbols is not given
const DefaultSymbols = 50

// Option configures a Bar
type Option func(b *Bar)

// WithSymbols sets the number of '#' cells of a full bar
func WithSymbols(symbols int) Option {
	return func(b *Bar) {
		b.symbols = symbols
	}
}

// WithOutput sets the writer the bar is drawn on (os.Stdout by default)
func WithOutput(w io.Writer) Option {
	return func(b *Bar) {
		b.w = w
	}
}

// WithTitle sets a title drawn above the bar in the given colour, blue by default
func WithTitle(title string, fg ...style.Foreground) Option {
	return func(b *Bar) {
		b.SetTitle(title, fg...)
	}
}

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(b *Bar) {
		b.now = now
	}
}

// WithTimeDisplay appends elapsed time and, while running, the estimated time left
func WithTimeDisplay(enabled bool) Option {
	return func(b *Bar) {
		b.showTime = enabled
	}
}

// WithMemoryDisplay appends the heap currently allocated by the process
func WithMemoryDisplay(enabled bool) Option {
	return func(b *Bar) {
		b.showMemory = enabled
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(b *Bar) {
		b.logger = logger
	}
}
