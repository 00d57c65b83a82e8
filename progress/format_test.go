package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPercent(t *testing.T) {
	tests := map[float64]string{
		0:         "0",
		0.1:       "0.1",
		50:        "50",
		100:       "100",
		100.0 / 3: "33.33",
		2.0 / 3:   "0.67",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatPercent(in))
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{1500 * time.Millisecond, "00:02"},
		{61 * time.Second, "01:01"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.in))
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5 MiB"},
		{3 << 40, "3 TiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBytes(tt.in))
	}
}

func TestRate(t *testing.T) {
	r := newRate()
	_, ok := r.perSecond()
	assert.False(t, ok)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i <= 20; i++ {
		r.add(start.Add(time.Duration(i)*time.Second), i*2)
	}
	assert.Equal(t, rateWindow, r.samples.Len())

	perSecond, ok := r.perSecond()
	assert.True(t, ok)
	assert.InDelta(t, 2.0, perSecond, 1e-9)

	left, ok := r.remaining(10)
	assert.True(t, ok)
	assert.Equal(t, 5*time.Second, left)
}
