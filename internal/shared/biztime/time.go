// Package biztime provides utilities for time arithmetic on billing dates.
// All storage and transport use UTC. The business timezone is only used for
// date boundaries shown to users (start/end of day, parsed date inputs).
//
// Design principles:
// - All time storage is in UTC
// - Remaining-day counts use a ceiling, never a floor, so a subscription
//   still inside its last day is never shown as "0 days"
// - Implicit Local timezone is prohibited
package biztime

import (
	"fmt"
	"math"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Europe/Rome"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to Europe/Rome.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone location, auto-initializing with the
// default when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DaysUntilCeil returns the number of whole or partial days between now and
// target, rounded up. Any remaining fraction of a day counts as a full day,
// so a trial that ends later today still reports 1 day. Returns 0 when now
// and target coincide, and a negative count when target is in the past.
func DaysUntilCeil(now, target time.Time) int {
	diff := target.Sub(now)
	return int(math.Ceil(float64(diff) / float64(24*time.Hour)))
}

// IsExpired reports whether the deadline has passed. The deadline itself is
// still valid: expiry begins strictly after it.
func IsExpired(now, deadline time.Time) bool {
	return now.After(deadline)
}

// EndOfDayUTC returns the end of the business day containing t, in UTC.
func EndOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	endOfDay := time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 23, 59, 59, 999999999, Location())
	return endOfDay.UTC()
}

// ParseDateInBizTimezone parses a date string (YYYY-MM-DD) as business
// timezone midnight, then returns the UTC equivalent.
func ParseDateInBizTimezone(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.UTC(), nil
}
