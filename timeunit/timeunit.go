// Package timeunit provides named time units and conversion between them,
// including calendar-free day and week units that time.ParseDuration does
// not understand.
package timeunit

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Unit is a named time unit.
type Unit int

const (
	Nanoseconds Unit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
	Weeks
)

// ErrUnknownUnit is returned by Parse for unrecognized unit names.
var ErrUnknownUnit = errors.New("unknown time unit")

// span returns the duration of one unit.
func (u Unit) span() time.Duration {
	switch u {
	case Nanoseconds:
		return time.Nanosecond
	case Microseconds:
		return time.Microsecond
	case Milliseconds:
		return time.Millisecond
	case Seconds:
		return time.Second
	case Minutes:
		return time.Minute
	case Hours:
		return time.Hour
	case Days:
		return 24 * time.Hour
	case Weeks:
		return 7 * 24 * time.Hour
	default:
		return 0
	}
}

// Duration returns the length of one unit, e.g. Days.Duration() is 24h.
func (u Unit) Duration() time.Duration {
	return u.span()
}

// String returns the canonical short suffix for the unit ("ns", "ms", "d", ...).
func (u Unit) String() string {
	switch u {
	case Nanoseconds:
		return "ns"
	case Microseconds:
		return "us"
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	case Minutes:
		return "m"
	case Hours:
		return "h"
	case Days:
		return "d"
	case Weeks:
		return "w"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// unitNames maps accepted spellings (lower-cased) to units.
var unitNames = map[string]Unit{ //nolint:gochecknoglobals
	"ns": Nanoseconds, "nanos": Nanoseconds, "nanosecond": Nanoseconds, "nanoseconds": Nanoseconds,
	"us": Microseconds, "micros": Microseconds, "microsecond": Microseconds, "microseconds": Microseconds,
	"ms": Milliseconds, "millis": Milliseconds, "millisecond": Milliseconds, "milliseconds": Milliseconds,
	"s": Seconds, "sec": Seconds, "secs": Seconds, "second": Seconds, "seconds": Seconds,
	"m": Minutes, "min": Minutes, "mins": Minutes, "minute": Minutes, "minutes": Minutes,
	"h": Hours, "hr": Hours, "hrs": Hours, "hour": Hours, "hours": Hours,
	"d": Days, "day": Days, "days": Days,
	"w": Weeks, "wk": Weeks, "week": Weeks, "weeks": Weeks,
}

// Parse resolves a unit name. It accepts common short and long spellings,
// case-insensitively: "ms", "millis", "Milliseconds", ...
func Parse(name string) (Unit, error) {
	unit, ok := unitNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}

	return unit, nil
}

// Convert converts value from one unit to another, e.g.
// Convert(90, Seconds, Minutes) = 1.5.
func Convert(value float64, from, to Unit) float64 {
	return value * float64(from.span()) / float64(to.span())
}

// In expresses a duration in the given unit, e.g. In(90*time.Second,
// Minutes) = 1.5.
func In(d time.Duration, u Unit) float64 {
	return float64(d) / float64(u.span())
}

// Of builds a duration from a value and unit, e.g. Of(1.5, Minutes) = 90s.
func Of(value float64, u Unit) time.Duration {
	return time.Duration(value * float64(u.span()))
}
