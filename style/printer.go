package style

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/napalu/gocli/util"
)

const face = "｡◕‿◕｡"

const sadFace = "(◍•﹏•)"

// Printer writes styled messages to a writer. When colours are disabled the
// same text is written without escape sequences.
type Printer struct {
	w      io.Writer
	colors bool
	logger *log.Logger
}

// PrinterOption configures a Printer
type PrinterOption func(p *Printer)

// WithColors enables or disables escape sequences
func WithColors(enabled bool) PrinterOption {
	return func(p *Printer) {
		p.colors = enabled
	}
}

// WithLogger sets the logger warned about unknown markup tags
func WithLogger(logger *log.Logger) PrinterOption {
	return func(p *Printer) {
		p.logger = logger
	}
}

// NewPrinter returns a Printer writing to w with colours enabled
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{
		w:      w,
		colors: true,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewAuto returns a Printer which only colours its output when w is a terminal
// and the environment does not ask for plain output (NO_COLOR, CLICOLOR=0).
func NewAuto(w io.Writer, opts ...PrinterOption) *Printer {
	auto := []PrinterOption{WithColors(util.IsTerminal(w) && !termenv.EnvNoColor())}
	return NewPrinter(w, append(auto, opts...)...)
}

// Colors reports whether escape sequences are written
func (p *Printer) Colors() bool {
	return p.colors
}

// Sprint returns text styled by opts, or text itself when colours are disabled
func (p *Printer) Sprint(text string, opts ...Option) string {
	if !p.colors {
		return text
	}
	return Stylize(text, opts...)
}

// Inline writes styled text
func (p *Printer) Inline(text string, opts ...Option) {
	p.write(p.Sprint(text, opts...))
}

// Outline writes styled text followed by a newline
func (p *Printer) Outline(text string, opts ...Option) {
	p.write(p.Sprint(text, opts...) + "\n")
}

// Title writes title between two rules of '=':
//
//	==============
//	｡◕‿◕｡ test ｡◕‿◕｡
//	==============
func (p *Printer) Title(title string) {
	rule := strings.Repeat("=", len(title)+10) + "\n"
	p.write(rule + face + " " + title + " " + face + "\n" + rule)
}

// Flank writes message between two runs of three dashes, e.g. --- message ---
func (p *Printer) Flank(message string) {
	p.FlankWith(message, "-", 3)
}

// FlankWith writes message between two runs of length times char
func (p *Printer) FlankWith(message, char string, length int) {
	repeated := strings.Repeat(char, util.Max(length, 0))
	p.write(repeated + " " + message + " " + repeated + "\n")
}

// FlankStyle writes message between two faces
func (p *Printer) FlankStyle(message string) {
	p.FlankWith(message, face, 1)
}

// Done writes a completion line
func (p *Printer) Done() {
	p.write("\n" + face + " Done " + face + "\n")
}

// Error writes message in light red
func (p *Printer) Error(message string) {
	p.Outline("  "+sadFace+" "+message, WithForeground(FgLightRed))
}

// Warning writes message in yellow
func (p *Printer) Warning(message string) {
	p.Outline("  "+sadFace+" "+message, WithForeground(FgYellow))
}

func (p *Printer) Red(message string) {
	p.Outline(message, WithForeground(FgLightRed))
}

func (p *Printer) Yellow(message string) {
	p.Outline(message, WithForeground(FgYellow))
}

func (p *Printer) Green(message string) {
	p.Outline(message, WithForeground(FgGreen))
}

// OutlineWithBool writes ifTrue in green when status is true and ifFalse in red
// otherwise. A non-empty toPrecede is written first, unstyled.
func (p *Printer) OutlineWithBool(status bool, ifTrue, ifFalse, toPrecede string) {
	if toPrecede != "" {
		p.Inline(toPrecede)
	}

	if status {
		p.Green(ifTrue)
		return
	}
	p.Red(ifFalse)
}

// Exception writes the type and message of err. With withTrace the chain of
// wrapped errors follows, one per line.
func (p *Printer) Exception(err error, withTrace bool) {
	if err == nil {
		return
	}

	p.write("\n")
	p.Error(fmt.Sprintf("%T returned", err))
	p.Outline("          "+err.Error(), WithAttribute(AttrBold))

	if !withTrace {
		return
	}

	var sb strings.Builder
	sb.WriteString("\nTrace :")
	for i, e := 0, errors.Unwrap(err); e != nil; i, e = i+1, errors.Unwrap(e) {
		sb.WriteString(fmt.Sprintf("\n#%d %T: %s", i, e, e.Error()))
	}
	p.Outline(sb.String())
}

// Tag writes markup with its tags replaced by styles, see Render. Unknown
// tag names are reported to the logger.
func (p *Printer) Tag(markup string) {
	out, unknown := render(markup, p.colors)
	for _, name := range unknown {
		p.logger.Warn("unknown style tag", "tag", name)
	}
	p.write(out)
}

func (p *Printer) write(s string) {
	_, _ = io.WriteString(p.w, s)
}
