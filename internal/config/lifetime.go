package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var lifetimePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([a-z]*)$`)

var lifetimeUnits = map[string]time.Duration{
	"ms": time.Millisecond, "msec": time.Millisecond, "msecs": time.Millisecond,
	"millisecond": time.Millisecond, "milliseconds": time.Millisecond,
	"s": time.Second, "sec": time.Second, "secs": time.Second,
	"second": time.Second, "seconds": time.Second,
	"m": time.Minute, "min": time.Minute, "mins": time.Minute,
	"minute": time.Minute, "minutes": time.Minute,
	"h": time.Hour, "hr": time.Hour, "hrs": time.Hour,
	"hour": time.Hour, "hours": time.Hour,
	"d": 24 * time.Hour, "day": 24 * time.Hour, "days": 24 * time.Hour,
	"w": 7 * 24 * time.Hour, "week": 7 * 24 * time.Hour, "weeks": 7 * 24 * time.Hour,
	"y": 8766 * time.Hour, "yr": 8766 * time.Hour, "yrs": 8766 * time.Hour,
	"year": 8766 * time.Hour, "years": 8766 * time.Hour,
}

// minLifetime is the smallest lifetime that survives the whole-second exp claim.
const minLifetime = time.Second

// ParseLifetime resolves a token lifetime expression such as "1h", "7d", "2 days",
// "1h30m" or a bare number of milliseconds. The result must be at least one second.
func ParseLifetime(expr string) (time.Duration, error) {
	s := strings.ToLower(strings.TrimSpace(expr))
	if s == "" {
		return 0, fmt.Errorf("empty lifetime")
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		d, err = parseUnitLifetime(s)
		if err != nil {
			return 0, err
		}
	}
	if d < minLifetime {
		return 0, fmt.Errorf("lifetime %q must be at least %s", expr, minLifetime)
	}
	return d, nil
}

func parseUnitLifetime(s string) (time.Duration, error) {
	match := lifetimePattern.FindStringSubmatch(s)
	if match == nil {
		return 0, fmt.Errorf("unrecognised lifetime %q", s)
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, fmt.Errorf("unrecognised lifetime %q: %w", s, err)
	}

	unit := time.Millisecond
	if match[2] != "" {
		var ok bool
		unit, ok = lifetimeUnits[match[2]]
		if !ok {
			return 0, fmt.Errorf("unknown lifetime unit %q", match[2])
		}
	}
	return time.Duration(value * float64(unit)), nil
}
