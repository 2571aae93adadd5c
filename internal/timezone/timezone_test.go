package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("America/Sao_Paulo"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
}

func TestLocationFallback(t *testing.T) {
	loc := Location("not-a-zone")
	assert.Equal(t, DefaultTimezone, loc.String())

	loc = Location("America/New_York")
	assert.Equal(t, "America/New_York", loc.String())
}

func TestDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	date := time.Date(2026, 3, 10, 15, 42, 7, 0, loc)
	start, end := DayBounds(date, loc)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, loc), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}
