package clock

import (
	"time"

	"github.com/nikrus/rpsduel-go/internal/model"
)

// Clock provides time operations that can be mocked for testing.
// "Today" drives the one-game-per-date invariant, so it must be injectable.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the clock's current date as a store date key
func Today(c Clock) string {
	return model.DateOf(c.Now())
}
