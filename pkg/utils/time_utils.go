// utils/time_utils.go
package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Calendar grid defaults shared by the schedule builder.
const (
	MinutesPerHour      = 60
	MinutesPerDay       = 24 * MinutesPerHour
	DefaultSnapInterval = 30 // minutes
)

// ParseClock converts a zero-padded 24-hour "HH:MM" string to minutes since
// midnight. Malformed or out-of-range components are clamped instead of
// rejected, so a bad drag payload degrades to a usable value rather than
// crashing the caller.
func ParseClock(clock string) int {
	hour, minute := 0, 0

	parts := strings.SplitN(clock, ":", 2)
	if len(parts) > 0 {
		hour, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	}
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}

	hour = clampInt(hour, 0, 23)
	minute = clampInt(minute, 0, 59)

	return hour*MinutesPerHour + minute
}

// FormatClock renders minutes-since-midnight as a zero-padded "HH:MM" string.
// Values outside the day are clamped into the 00:00-23:59 window.
func FormatClock(minutes int) string {
	minutes = clampInt(minutes, 0, MinutesPerDay-1)
	return fmt.Sprintf("%02d:%02d", minutes/MinutesPerHour, minutes%MinutesPerHour)
}

// TimeToPosition maps an "HH:MM" time to a vertical pixel offset relative to
// startHour. Times before startHour clamp to 0.
func TimeToPosition(clock string, startHour int, pixelsPerMinute float64) float64 {
	offset := ParseClock(clock) - startHour*MinutesPerHour
	position := float64(offset) * pixelsPerMinute
	if position < 0 {
		return 0
	}
	return position
}

// PositionToTime is the inverse of TimeToPosition. The offset is rounded to
// the nearest minute and the result is clamped into [startHour:00, 23:59];
// it never rolls into the next day.
func PositionToTime(position float64, startHour int, pixelsPerMinute float64) string {
	if pixelsPerMinute <= 0 {
		pixelsPerMinute = 1
	}
	minutes := startHour*MinutesPerHour + int(math.Round(position/pixelsPerMinute))

	floor := clampInt(startHour, 0, 23) * MinutesPerHour
	minutes = clampInt(minutes, floor, MinutesPerDay-1)

	return FormatClock(minutes)
}

// SnapToGrid rounds a pixel offset to the nearest multiple of gridSize.
func SnapToGrid(position float64, gridSize float64) float64 {
	if gridSize <= 0 {
		return position
	}
	return math.Round(position/gridSize) * gridSize
}

// SnapTimeToInterval rounds an "HH:MM" time to the nearest multiple of
// intervalMinutes (30 by default), capped at the last full interval of the
// day so snapping never overflows past midnight.
func SnapTimeToInterval(clock string, intervalMinutes int) string {
	if intervalMinutes <= 0 {
		intervalMinutes = DefaultSnapInterval
	}

	snapped := int(math.Round(float64(ParseClock(clock))/float64(intervalMinutes))) * intervalMinutes

	lastInterval := (MinutesPerDay - 1) / intervalMinutes * intervalMinutes
	if snapped > lastInterval {
		snapped = lastInterval
	}

	return FormatClock(snapped)
}

// CalculateDuration returns the minutes between two "HH:MM" times. When end
// is numerically at or before start the end is treated as next-day, so the
// result is always positive (23:30 -> 00:30 is 60, not -1380).
func CalculateDuration(start, end string) int {
	duration := ParseClock(end) - ParseClock(start)
	if duration <= 0 {
		duration += MinutesPerDay
	}
	return duration
}

// FormatTimeAMPM renders "HH:MM" as a 12-hour display string, e.g. "9:00 AM".
// Presentation only; never feed the result back into the grid math.
func FormatTimeAMPM(clock string) string {
	minutes := ParseClock(clock)
	hour := minutes / MinutesPerHour
	minute := minutes % MinutesPerHour

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}

	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%d:%02d %s", displayHour, minute, suffix)
}

// FormatTimeRange renders a start/end pair for display, e.g. "9:00 AM - 10:30 AM".
func FormatTimeRange(start, end string) string {
	return FormatTimeAMPM(start) + " - " + FormatTimeAMPM(end)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
