package progress

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/napalu/gocli/errs"
	"github.com/napalu/gocli/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBar(t *testing.T, max int, opts ...Option) (*Bar, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	b, err := New(max, append([]Option{WithOutput(&buf)}, opts...)...)
	require.NoError(t, err)

	return b, &buf
}

func TestNew(t *testing.T) {
	b, _ := newBar(t, 10)
	assert.Equal(t, 0, b.Current())
	assert.Equal(t, 10, b.Max())
	assert.True(t, b.IsFinished())
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		symbols int
		want    error
	}{
		{"negative max", -1, DefaultSymbols, errs.ErrInvalidMax},
		{"zero max", 0, DefaultSymbols, errs.ErrInvalidMax},
		{"negative symbols", 1, -1, errs.ErrInvalidSymbols},
		{"zero symbols", 1, 0, errs.ErrInvalidSymbols},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.max, WithSymbols(tt.symbols), WithOutput(&bytes.Buffer{}))
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestStart_WithTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		fg    []style.Foreground
		want  style.Foreground
	}{
		{"default colour", "Title in blue", nil, style.FgBlue},
		{"green", "Title in green", []style.Foreground{style.FgGreen}, style.FgGreen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, buf := newBar(t, 5)
			b.SetTitle(tt.title, tt.fg...).Start()

			want := "\n\n\x1b[1A\x1b[1000D\x1b[2K" +
				style.Stylize("\t"+tt.title, style.WithForeground(tt.want)) +
				"\x1b[1B\x1b[1000D\x1b[2K\t0 / 5 [     ] 0%"
			assert.Equal(t, want, buf.String())
		})
	}
}

func TestStart_WithTitleOption(t *testing.T) {
	b, buf := newBar(t, 5, WithTitle("Copying", style.FgRed))
	assert.Equal(t, "", buf.String())

	b.Start()
	assert.Contains(t, buf.String(), style.Stylize("\tCopying", style.WithForeground(style.FgRed)))
}

func TestAdvance_WithoutStart(t *testing.T) {
	b, buf := newBar(t, 10)
	b.Advance(1)
	b.Finish()

	assert.Equal(t, "", buf.String())
	assert.Equal(t, 0, b.Current())
}

func TestAdvance_ByStep(t *testing.T) {
	for _, step := range []int{1, 2} {
		t.Run(fmt.Sprintf("step %d", step), func(t *testing.T) {
			b, buf := newBar(t, 10)
			b.Start()
			assert.Equal(t, "\n\n\x1b[1000D\x1b[2K\t0 / 10 [          ] 0%", buf.String())

			for i := step; i <= 10; i += step {
				buf.Reset()
				b.Advance(step)

				want := fmt.Sprintf("\x1b[1000D\x1b[2K\t%d / 10 [%s%s] %d%%",
					i, strings.Repeat("#", i), strings.Repeat(" ", 10-i), i*10)
				assert.Equal(t, want, buf.String())
				assert.Equal(t, i == 10, b.IsFinished())
				assert.Equal(t, i, b.Current())
			}
		})
	}
}

func TestAdvance_PastMax(t *testing.T) {
	b, buf := newBar(t, 10, WithSymbols(2))
	b.Start()
	b.Advance(9)
	buf.Reset()

	b.Advance(5)
	assert.Equal(t, "\x1b[1000D\x1b[2K\t10 / 10 [##] 100%", buf.String())
	assert.Equal(t, 10, b.Current())
	assert.True(t, b.IsFinished())

	buf.Reset()
	b.Advance(1)
	assert.Equal(t, "", buf.String())
}

func TestAdvance_Negative(t *testing.T) {
	b, buf := newBar(t, 10)
	b.Start()
	buf.Reset()

	b.Advance(-1)
	assert.Equal(t, "", buf.String())
	assert.Equal(t, 0, b.Current())
}

func TestAdvance_FewerSymbolsThanMax(t *testing.T) {
	tests := []struct {
		symbols int
		steps   []int
		want    []string
	}{
		{2, []int{3, 2, 4, 1}, []string{"[  ]", "[# ]", "[# ]", "[##]"}},
		{3, []int{3, 3, 3, 1}, []string{"[#  ]", "[## ]", "[###]", "[###]"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d symbols", tt.symbols), func(t *testing.T) {
			b, buf := newBar(t, 10, WithSymbols(tt.symbols))
			b.Start()
			for i, step := range tt.steps {
				buf.Reset()
				b.Advance(step)
				assert.Contains(t, buf.String(), tt.want[i])
			}
			assert.True(t, b.IsFinished())
		})
	}
}

func TestPercent_Decimals(t *testing.T) {
	b, buf := newBar(t, 1000)
	b.Start()
	for _, want := range []string{"0.1%", "0.2%"} {
		buf.Reset()
		b.Advance(1)
		assert.True(t, strings.HasSuffix(buf.String(), want), buf.String())
	}
	b.Advance(9)
	assert.InDelta(t, 1.1, b.Percent(), 1e-9)
}

func TestFinish(t *testing.T) {
	b, buf := newBar(t, 4)
	b.Start()
	b.Advance(1)
	buf.Reset()

	b.Finish()
	assert.Equal(t, "\x1b[1000D\x1b[2K\t4 / 4 [####] 100%", buf.String())
	assert.True(t, b.IsFinished())
	assert.Equal(t, float64(100), b.Percent())
}

func TestStart_Restarts(t *testing.T) {
	b, buf := newBar(t, 3)
	b.Start()
	b.Finish()
	buf.Reset()

	b.Start()
	assert.False(t, b.IsFinished())
	assert.Equal(t, 0, b.Current())
	assert.Equal(t, "\n\n\x1b[1000D\x1b[2K\t0 / 3 [   ] 0%", buf.String())
}

func TestTimeDisplay(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	b, buf := newBar(t, 10, WithClock(clock), WithTimeDisplay(true))
	b.Start()
	assert.True(t, strings.HasSuffix(buf.String(), "0% - 00:00 / ETA --:--"), buf.String())

	buf.Reset()
	now = now.Add(2 * time.Second)
	b.Advance(1)
	assert.True(t, strings.HasSuffix(buf.String(), "10% - 00:02 / ETA 00:18"), buf.String())

	buf.Reset()
	now = now.Add(time.Hour)
	b.Finish()
	assert.True(t, strings.HasSuffix(buf.String(), "100% - 1:00:02"), buf.String())
}

func TestMemoryDisplay(t *testing.T) {
	b, buf := newBar(t, 2, WithMemoryDisplay(true))
	b.memory = func() uint64 { return 1536 }
	b.Start()

	assert.True(t, strings.HasSuffix(buf.String(), "0% - 1.5 KiB"), buf.String())
}
