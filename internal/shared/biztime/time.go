// Package biztime resolves "today" for the gym's business timezone.
// Membership dates are calendar dates without a time component, so the only
// timezone-sensitive question is which calendar day it currently is.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is used when no timezone is configured.
	DefaultTimezone = "Local"
)

var (
	bizLocation   *time.Location
	bizLocationMu sync.RWMutex

	// nowFunc is replaced in tests.
	nowFunc = time.Now
)

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", tz, err)
	}
	bizLocationMu.Lock()
	bizLocation = loc
	bizLocationMu.Unlock()
	return nil
}

// Location returns the business timezone, falling back to the local zone
// when Init has not been called.
func Location() *time.Location {
	bizLocationMu.RLock()
	defer bizLocationMu.RUnlock()
	if bizLocation == nil {
		return time.Local
	}
	return bizLocation
}

// Now returns the current time in the business timezone.
func Now() time.Time {
	return nowFunc().In(Location())
}

// Today returns midnight of the current business day.
func Today() time.Time {
	y, m, d := Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, Location())
}
