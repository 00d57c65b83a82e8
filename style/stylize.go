package style

import "strings"

type styles struct {
	fg Foreground
	bg Background
	at Attribute
}

// Option selects one component of a style
type Option func(*styles)

func WithForeground(fg Foreground) Option {
	return func(s *styles) {
		s.fg = fg
	}
}

func WithBackground(bg Background) Option {
	return func(s *styles) {
		s.bg = bg
	}
}

func WithAttribute(at Attribute) Option {
	return func(s *styles) {
		s.at = at
	}
}

// Stylize wraps text in the escape sequences of the foreground, background and
// attribute options, in that order, followed by a reset. Without options text
// is returned unchanged.
func Stylize(text string, opts ...Option) string {
	var s styles
	for _, opt := range opts {
		opt(&s)
	}
	if s.fg == "" && s.bg == "" && s.at == "" {
		return text
	}

	var sb strings.Builder
	if s.fg != "" {
		sb.WriteString(sequence(s.fg.Code()))
	}
	if s.bg != "" {
		sb.WriteString(sequence(s.bg.Code()))
	}
	if s.at != "" {
		sb.WriteString(sequence(s.at.Code()))
	}
	sb.WriteString(text)
	sb.WriteString(EndTag)

	return sb.String()
}
