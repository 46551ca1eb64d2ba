package chart

import (
	"fmt"
	"math"
)

// ZeroDuration is what FormatDuration renders for anything under one second.
const ZeroDuration = "0s"

const maxSeconds = float64(1 << 62)

// FormatDuration renders seconds as "2d 3h 4m 5s", dropping leading zero units.
// Input is floored to whole seconds.
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 1 {
		return ZeroDuration
	}
	total := int64(math.Floor(math.Min(seconds, maxSeconds)))
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	secs := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, secs)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}
