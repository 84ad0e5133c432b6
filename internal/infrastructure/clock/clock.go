// Package clock provides the time sources wired into the use case layer.
package clock

import "time"

// System implements usecase.Clock with the wall clock in UTC.
type System struct{}

// NewSystem creates a new System clock.
func NewSystem() System {
	return System{}
}

// Now returns the current time in UTC.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed implements usecase.Clock with a constant instant.
type Fixed struct {
	at time.Time
}

// NewFixed creates a clock frozen at the given instant.
func NewFixed(at time.Time) Fixed {
	return Fixed{at: at}
}

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return f.at
}
