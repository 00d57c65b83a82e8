// Package progress draws a single-line progress bar on a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/napalu/gocli/errs"
	"github.com/napalu/gocli/style"
	"github.com/napalu/gocli/util"
)

const (
	cursorUp    = "\x1b[1A"
	cursorDown  = "\x1b[1B"
	cursorLeft  = "\x1b[1000D"
	clearLine   = "\x1b[2K"
	lineRewind  = cursorLeft + clearLine
	filledCell  = "#"
	emptyCell   = " "
	reservedCol = 40
)

// Bar tracks the iterations of a task bounded by max and redraws its line on
// every advance. A Bar is not safe for concurrent use.
type Bar struct {
	max        int
	symbols    int
	perSymbol  int
	current    int
	started    bool
	finished   bool
	title      string
	titleFg    style.Foreground
	w          io.Writer
	now        func() time.Time
	startedAt  time.Time
	rate       *rate
	showTime   bool
	showMemory bool
	memory     func() uint64
	logger     *log.Logger
}

// New returns a Bar counting up to max. It fails with errs.ErrInvalidMax when
// max is not positive and errs.ErrInvalidSymbols when the symbol count is not.
func New(max int, opts ...Option) (*Bar, error) {
	b := &Bar{
		max:      max,
		symbols:  DefaultSymbols,
		finished: true,
		titleFg:  style.FgBlue,
		w:        os.Stdout,
		now:      time.Now,
		rate:     newRate(),
		memory:   heapAlloc,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.max <= 0 {
		return nil, errs.ErrInvalidMax.WithArgs(b.max)
	}
	if b.symbols <= 0 {
		return nil, errs.ErrInvalidSymbols.WithArgs(b.symbols)
	}

	if util.IsTerminal(b.w) {
		width := util.TerminalWidth(b.w) - reservedCol
		if clamped := util.Clamp(b.symbols, 1, width); clamped != b.symbols {
			b.logger.Debug("bar narrowed to terminal width", "symbols", clamped, "requested", b.symbols)
			b.symbols = clamped
		}
	}
	b.perSymbol = util.Max(b.max/b.symbols, 1)

	return b, nil
}

// SetTitle sets the title drawn above the bar by Start. The title is blue
// unless a foreground is given.
func (b *Bar) SetTitle(title string, fg ...style.Foreground) *Bar {
	b.title = title
	if len(fg) > 0 {
		b.titleFg = fg[0]
	}

	return b
}

// Start opens two lines, draws the title on the first one if any and the
// empty bar on the second one.
func (b *Bar) Start() {
	b.current = 0
	b.started = true
	b.finished = false
	b.startedAt = b.now()
	b.rate.reset()
	b.rate.add(b.startedAt, 0)

	var sb strings.Builder
	sb.WriteString("\n\n")
	if b.title != "" {
		sb.WriteString(cursorUp)
		sb.WriteString(lineRewind)
		sb.WriteString(style.Stylize("\t"+b.title, style.WithForeground(b.titleFg)))
		sb.WriteString(cursorDown)
	}
	sb.WriteString(b.line())
	b.write(sb.String())
	b.logger.Debug("progress started", "max", b.max, "symbols", b.symbols)
}

// Advance moves the bar n iterations forward and redraws it. Nothing happens
// before Start, once the bar is finished or when n is negative. The iteration
// never goes past max.
func (b *Bar) Advance(n int) {
	if b.finished || n < 0 {
		return
	}

	b.current = util.Min(b.current+n, b.max)
	if b.current >= b.max {
		b.finished = true
	}
	b.rate.add(b.now(), b.current)
	b.write(b.line())

	if b.finished {
		b.logger.Debug("progress finished", "elapsed", b.now().Sub(b.startedAt))
	}
}

// Finish advances a started bar straight to max
func (b *Bar) Finish() {
	if !b.started {
		return
	}
	b.Advance(b.max - b.current)
}

// IsFinished reports whether the bar reached max or has not been started
func (b *Bar) IsFinished() bool {
	return b.finished
}

// Current returns the current iteration
func (b *Bar) Current() int {
	return b.current
}

func (b *Bar) Max() int {
	return b.max
}

// Percent returns the progress as a percentage of max
func (b *Bar) Percent() float64 {
	return float64(b.current) * 100 / float64(b.max)
}

func (b *Bar) line() string {
	var sb strings.Builder
	sb.WriteString(lineRewind)
	fmt.Fprintf(&sb, "\t%d / %d [%s] %s%%", b.current, b.max, b.cells(), formatPercent(b.Percent()))

	if b.showTime {
		sb.WriteString(" - ")
		sb.WriteString(formatDuration(b.now().Sub(b.startedAt)))
		if !b.finished {
			sb.WriteString(" / ETA ")
			if eta, ok := b.rate.remaining(b.max - b.current); ok {
				sb.WriteString(formatDuration(eta))
			} else {
				sb.WriteString("--:--")
			}
		}
	}
	if b.showMemory {
		sb.WriteString(" - ")
		sb.WriteString(formatBytes(b.memory()))
	}

	return sb.String()
}

func (b *Bar) cells() string {
	if b.finished {
		return strings.Repeat(filledCell, util.Min(b.max, b.symbols))
	}
	if b.max <= b.symbols {
		return strings.Repeat(filledCell, b.current) + strings.Repeat(emptyCell, b.max-b.current)
	}

	filled := util.Min(b.current/b.perSymbol, b.symbols)
	return strings.Repeat(filledCell, filled) + strings.Repeat(emptyCell, b.symbols-filled)
}

func (b *Bar) write(s string) {
	if _, err := io.WriteString(b.w, s); err != nil {
		b.logger.Warn("could not draw progress bar", "err", err)
	}
}

func heapAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}
