package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.Equal(t, "10:30", ts.String())

	for _, bad := range []string{"", "25:00", "10:60", "1030", "10:3", "abc"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestTimeString_HourMinute(t *testing.T) {
	ts := TimeString("19:45")

	h, err := ts.Hour()
	require.NoError(t, err)
	assert.Equal(t, 19, h)

	m, err := ts.Minute()
	require.NoError(t, err)
	assert.Equal(t, 45, m)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), next)

	next, err = ts.AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00"), next)
}

func TestTimeString_Ordering(t *testing.T) {
	// Лексикографическое сравнение корректно для формата HH:MM
	assert.True(t, TimeString("09:30").IsBefore("10:00"))
	assert.True(t, TimeString("20:00").IsAfter("19:30"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsAfter("12:00"))
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2025, 10, 16, 23, 59, 0, 0, time.UTC)

	got, err := TimeString("12:00").At(date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 16, 12, 0, 0, 0, time.UTC), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan([]byte("15:00")))
	assert.Equal(t, TimeString("15:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 16, 16, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:30"), ts)

	assert.Error(t, ts.Scan(42))
}
