package clock

import (
	"fmt"
	"time"

	"github.com/saradorri/predictor/internal/domain"
)

// FixedZoneClock reads the system time and projects it onto a fixed UTC offset
type FixedZoneClock struct {
	loc *time.Location
	now func() time.Time
}

// NewFixedZoneClock creates a clock for UTC+offsetHours
func NewFixedZoneClock(offsetHours int) *FixedZoneClock {
	return &FixedZoneClock{
		loc: Zone(offsetHours),
		now: time.Now,
	}
}

// Zone returns the fixed location for UTC+offsetHours
func Zone(offsetHours int) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*60*60)
}

// Now returns the current instant in the clock's zone
func (c *FixedZoneClock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today returns the current calendar day in the clock's zone
func (c *FixedZoneClock) Today() domain.Date {
	return domain.DateOf(c.now(), c.loc)
}

// Location returns the clock's zone
func (c *FixedZoneClock) Location() *time.Location {
	return c.loc
}
