package humanize

import (
	"strconv"
	"strings"
	"time"
)

// conjunction joins the shown components.
const conjunction = " and "

// Duration renders d as "1 hour and 30 minutes", "5 minutes" or "45 seconds".
//
// Hours and minutes are shown when non-zero; seconds only when both are zero.
// Zero and negative durations render as an empty string.
func Duration(d time.Duration) string {
	if d <= 0 {
		return ""
	}

	var (
		hours   = int64(d / time.Hour)
		minutes = int64(d/time.Minute) % 60
		seconds = int64(d/time.Second) % 60
		parts   = make([]string, 0, 2)
	)

	if hours > 0 {
		parts = append(parts, unit(hours, "hour"))
	}

	if minutes > 0 {
		parts = append(parts, unit(minutes, "minute"))
	}

	if hours == 0 && minutes == 0 && seconds > 0 {
		parts = append(parts, unit(seconds, "second"))
	}

	return strings.Join(parts, conjunction)
}

// unit formats a count with its singular or plural unit name.
func unit(n int64, name string) string {
	if n != 1 {
		name += "s"
	}

	return strconv.FormatInt(n, 10) + " " + name
}
