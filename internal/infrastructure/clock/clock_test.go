package clock

import (
	"testing"
	"time"

	"github.com/saradorri/predictor/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFixedZoneClock_Today(t *testing.T) {
	c := NewFixedZoneClock(3)
	c.now = func() time.Time { return time.Date(2024, 5, 9, 21, 0, 0, 0, time.UTC) }

	assert.Equal(t, domain.Date{Year: 2024, Month: 5, Day: 10}, c.Today())
	assert.Equal(t, 0, c.Now().Hour())
	assert.Equal(t, "UTC+3", c.Location().String())
}

func TestFixedZoneClock_BeforeMidnight(t *testing.T) {
	c := NewFixedZoneClock(3)
	c.now = func() time.Time { return time.Date(2024, 5, 9, 20, 59, 59, 0, time.UTC) }

	assert.Equal(t, domain.Date{Year: 2024, Month: 5, Day: 9}, c.Today())
}

func TestZone(t *testing.T) {
	_, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, Zone(-5)).Zone()
	assert.Equal(t, -5*60*60, offset)
	assert.Equal(t, "UTC-5", Zone(-5).String())
}
