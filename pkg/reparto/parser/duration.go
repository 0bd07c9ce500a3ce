package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

// clockPattern matches "[N day(s)[,]] H:MM[:SS[.frac]]".
var clockPattern = regexp.MustCompile(`^(?:(\d+)\s+days?,?\s*)?(\d+):(\d{1,2})(?::(\d{1,2})(\.\d+)?)?$`)

// daysPattern matches a bare "N day(s)".
var daysPattern = regexp.MustCompile(`^(\d+)\s+days?$`)

// ParseDuration parses a wait-time cell. Accepted forms are
// "0 days 00:25:13", "00:25:13", "0:25", Go duration strings ("25m13s")
// and numbers, taken as a fraction of a day the way Excel stores times.
// Negative or unparsable input returns false.
func ParseDuration(v interface{}) (time.Duration, bool) {
	switch val := v.(type) {
	case int64, int, float64:
		f, ok := ToFloat(val)
		if !ok || f < 0 || f*float64(day) >= math.MaxInt64 {
			return 0, false
		}
		return time.Duration(math.Round(f * float64(day))), true
	case string:
		return parseDurationString(strings.TrimSpace(val))
	default:
		return 0, false
	}
}

func parseDurationString(s string) (time.Duration, bool) {
	if s == "" {
		return 0, false
	}

	if m := clockPattern.FindStringSubmatch(s); m != nil {
		minutes, _ := strconv.Atoi(m[3])
		seconds, _ := strconv.Atoi(m[4])
		if minutes >= 60 || seconds >= 60 {
			return 0, false
		}

		d, ok := addUnits(0, m[1], day)
		if ok {
			d, ok = addUnits(d, m[2], time.Hour)
		}
		if !ok {
			return 0, false
		}
		d += time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
		if m[5] != "" {
			frac, _ := strconv.ParseFloat("0"+m[5], 64)
			d += time.Duration(frac * float64(time.Second))
		}
		if d < 0 {
			return 0, false
		}
		return d, true
	}

	if m := daysPattern.FindStringSubmatch(s); m != nil {
		return addUnits(0, m[1], day)
	}

	if d, err := time.ParseDuration(s); err == nil && d >= 0 {
		return d, true
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return ParseDuration(f)
	}

	return 0, false
}

// addUnits adds digits*unit to d. Empty digits add nothing; counts that do
// not fit a Duration fail.
func addUnits(d time.Duration, digits string, unit time.Duration) (time.Duration, bool) {
	if digits == "" {
		return d, true
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n > int64((math.MaxInt64-d)/unit) {
		return 0, false
	}
	return d + time.Duration(n)*unit, true
}

// FormatClock renders d as HH:MM:SS. Hours include whole days and
// fractional seconds are dropped.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}
