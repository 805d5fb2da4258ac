// Package timeparse normalizes the "HH-MM" time-of-day strings stored by the
// news archive and converts them to and from absolute timestamps.
//
// Every function here is best-effort and never returns an error: failures
// are signalled with a sentinel (0 from ParseHHMM, "00-00" from FormatHHMM)
// or with a fallback to the current time (SafeParse, FromStored).
//
// HH-MM values carry no date. Text is always anchored to today's date in the
// local zone, so timestamps derived on different days are not comparable.
package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

const (
	// HHMMFormat is the strftime template of the stored representation.
	HHMMFormat = "%H-%M"

	// InvalidHHMM is returned by FormatHHMM for values that cannot denote a
	// time.
	InvalidHHMM = "00-00"
)

// Timestamps outside years 1..9999 are rejected.
const (
	minUnix int64 = -62135596800
	maxUnix int64 = 253402300799
)

var hhmmPattern = regexp.MustCompile(`^[0-9]{1,2}-[0-9]{1,2}$`)

// fallbackFormats are tried by SafeParse after the HH-MM and timestamp
// interpretations failed.
var fallbackFormats = []string{
	"%H:%M",
	"%H-%M",
	"%Y-%m-%d %H:%M:%S",
	"%Y-%m-%d %H:%M",
}

// ParseHHMM converts a time of day into the Unix timestamp of that time
// today, in the local zone. Accepted forms are "HH-MM", "HH:MM" and, for
// exactly four characters, "HHMM".
//
// It returns 0 when text is empty, does not split into exactly two numeric
// parts, or is out of range (hour 0..23, minute 0..59). 0 always means "no
// valid time", never the epoch.
func ParseHHMM(text string) int64 {
	hour, minute, ok := splitHHMM(text)
	if !ok {
		return 0
	}

	y, m, d := time.Now().Date()
	return time.Date(y, m, d, hour, minute, 0, 0, time.Local).Unix()
}

func splitHHMM(text string) (hour, minute int, ok bool) {
	if text == "" {
		return 0, 0, false
	}

	var parts []string
	switch {
	case strings.Contains(text, "-"):
		parts = strings.Split(text, "-")
	case strings.Contains(text, ":"):
		parts = strings.Split(text, ":")
	default:
		runes := []rune(text)
		if len(runes) != 4 {
			return 0, 0, false
		}
		parts = []string{string(runes[:2]), string(runes[2:])}
	}

	if len(parts) != 2 {
		return 0, 0, false
	}

	hour, err := atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}

// FormatHHMM renders value as "HH-MM". It accepts:
//   - time.Time: formatted directly;
//   - any integer: a Unix timestamp, out-of-range values give "00-00";
//   - string: returned unchanged when already "H-M"/"HH-MM"; colons are
//     replaced by dashes; otherwise it is tried as a Unix timestamp and
//     returned unchanged if that fails.
//
// Any other type yields "00-00".
func FormatHHMM(value any) string {
	switch v := value.(type) {
	case time.Time:
		return strftime.Format(HHMMFormat, v)
	case *time.Time:
		if v == nil {
			return InvalidHHMM
		}
		return strftime.Format(HHMMFormat, *v)
	case string:
		return formatText(v)
	}

	ts, ok := asInt64(value)
	if !ok {
		return InvalidHHMM
	}
	t, ok := unixTime(ts)
	if !ok {
		return InvalidHHMM
	}
	return strftime.Format(HHMMFormat, t)
}

func formatText(text string) string {
	if hhmmPattern.MatchString(text) {
		return text
	}
	if strings.Contains(text, ":") {
		return strings.ReplaceAll(text, ":", "-")
	}

	n, err := atoi(text)
	if err != nil {
		return text
	}
	t, ok := unixTime(int64(n))
	if !ok {
		return text
	}
	return strftime.Format(HHMMFormat, t)
}

// SafeParse interprets value as a point in time and never fails.
//
// nil yields now; a time.Time is returned as is; an integer is a Unix
// timestamp. A string is tried, in order, as HH-MM (see ParseHHMM), as a
// Unix timestamp, then against "%H:%M", "%H-%M", "%Y-%m-%d %H:%M:%S" and
// "%Y-%m-%d %H:%M" in the local zone. When nothing matches the current time
// is returned.
func SafeParse(value any) time.Time {
	switch v := value.(type) {
	case nil:
		return time.Now()
	case time.Time:
		return v
	case *time.Time:
		if v == nil {
			return time.Now()
		}
		return *v
	case string:
		return parseText(v)
	}

	if ts, ok := asInt64(value); ok {
		if t, ok := unixTime(ts); ok {
			return t
		}
	}

	return time.Now()
}

func parseText(text string) time.Time {
	if ts := ParseHHMM(text); ts > 0 {
		return time.Unix(ts, 0)
	}

	if n, err := atoi(text); err == nil {
		if t, ok := unixTime(int64(n)); ok {
			return t
		}
	}

	for _, format := range fallbackFormats {
		if t, err := strftime.Parse(format, text); err == nil {
			return inLocal(t)
		}
	}

	return time.Now()
}

// ToStored converts value to the HH-MM form persisted by the archive.
func ToStored(value any) string {
	return FormatHHMM(value)
}

// FromStored converts a persisted HH-MM value back to today's time of day,
// falling back to now when it cannot be parsed.
func FromStored(text string) time.Time {
	if ts := ParseHHMM(text); ts > 0 {
		return time.Unix(ts, 0)
	}
	return time.Now()
}

// inLocal keeps the wall clock of a zone-less parse result and places it in
// the local zone.
func inLocal(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local)
}

func unixTime(ts int64) (time.Time, bool) {
	if ts < minUnix || ts > maxUnix {
		return time.Time{}, false
	}

	t := time.Unix(ts, 0)
	if y := t.Year(); y < 1 || y > 9999 {
		return time.Time{}, false
	}

	return t, true
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func asInt64(value any) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), n <= uint(maxUnix)
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= uint64(maxUnix)
	default:
		return 0, false
	}
}
