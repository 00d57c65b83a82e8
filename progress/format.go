package progress

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// formatPercent renders p rounded to two decimals in its shortest form
func formatPercent(p float64) string {
	return strconv.FormatFloat(math.Round(p*100)/100, 'f', -1, 64)
}

// formatDuration renders d as mm:ss, or h:mm:ss past one hour
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int64(d.Round(time.Second) / time.Second)
	h, m, s := s/3600, s/60%60, s%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%02d:%02d", m, s)
}

var memoryUnits = []string{"B", "KiB", "MiB", "GiB", "TiB"}

// formatBytes renders n with a binary unit and at most one decimal
func formatBytes(n uint64) string {
	v := float64(n)
	unit := 0
	for v >= 1024 && unit < len(memoryUnits)-1 {
		v /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", n, memoryUnits[unit])
	}

	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64) + " " + memoryUnits[unit]
}
