package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStylize(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"no style", nil, "test"},
		{"background", []Option{WithBackground(BgBlack)}, "\x1b[40mtest\x1b[0m"},
		{"attribute", []Option{WithAttribute(AttrOutline)}, "\x1b[6mtest\x1b[0m"},
		{"foreground", []Option{WithForeground(FgBrown)}, "\x1b[0;33mtest\x1b[0m"},
		{"foreground and background", []Option{WithBackground(BgBlack), WithForeground(FgPurple)}, "\x1b[0;35m\x1b[40mtest\x1b[0m"},
		{"foreground and attribute", []Option{WithAttribute(AttrUnderline), WithForeground(FgPurple)}, "\x1b[0;35m\x1b[4mtest\x1b[0m"},
		{"background and attribute", []Option{WithBackground(BgCyan), WithAttribute(AttrItalic)}, "\x1b[46m\x1b[3mtest\x1b[0m"},
		{
			"all three",
			[]Option{WithAttribute(AttrBold), WithBackground(BgRed), WithForeground(FgWhite)},
			"\x1b[1;37m\x1b[41m\x1b[1mtest\x1b[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stylize("test", tt.opts...))
		})
	}
}
