package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntilCeil_WholeDays(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysUntilCeil(now, now.Add(72*time.Hour)))
	assert.Equal(t, 1, DaysUntilCeil(now, now.Add(24*time.Hour)))
}

func TestDaysUntilCeil_PartialDayRoundsUp(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	// 1ms into the next day still counts as a full day
	assert.Equal(t, 1, DaysUntilCeil(now, now.Add(time.Millisecond)))
	assert.Equal(t, 2, DaysUntilCeil(now, now.Add(24*time.Hour+time.Minute)))
	assert.Equal(t, 1, DaysUntilCeil(now, now.Add(23*time.Hour)))
}

func TestDaysUntilCeil_Boundary(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntilCeil(now, now))
	assert.Equal(t, 0, DaysUntilCeil(now, now.Add(-time.Millisecond)))
	assert.Equal(t, -1, DaysUntilCeil(now, now.Add(-25*time.Hour)))
}

func TestIsExpired(t *testing.T) {
	deadline := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.False(t, IsExpired(deadline, deadline), "exact deadline is still valid")
	assert.True(t, IsExpired(deadline.Add(time.Millisecond), deadline))
	assert.False(t, IsExpired(deadline.Add(-time.Hour), deadline))
}

func TestParseDateInBizTimezone(t *testing.T) {
	got, err := ParseDateInBizTimezone("2025-07-01")
	assert.NoError(t, err)

	// Business midnight, converted to UTC.
	want := time.Date(2025, 7, 1, 0, 0, 0, 0, Location()).UTC()
	assert.True(t, want.Equal(got))

	_, err = ParseDateInBizTimezone("01/07/2025")
	assert.Error(t, err)
}

func TestEndOfDayUTC(t *testing.T) {
	day, err := ParseDateInBizTimezone("2025-07-01")
	assert.NoError(t, err)

	end := EndOfDayUTC(day)
	inBiz := end.In(Location())
	assert.Equal(t, 2025, inBiz.Year())
	assert.Equal(t, time.July, inBiz.Month())
	assert.Equal(t, 1, inBiz.Day())
	assert.Equal(t, 23, inBiz.Hour())
	assert.Equal(t, 59, inBiz.Minute())
}
