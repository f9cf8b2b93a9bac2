package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpeningWindow(t *testing.T) {
	venue := &Venue{OpenTime: "08:00", CloseTime: "22:00"}
	day := time.Date(2025, 6, 1, 13, 45, 0, 0, time.UTC)

	open, close, err := venue.OpeningWindow(day)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), open)
	assert.Equal(t, time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC), close)
}

func TestOpeningWindowBadClock(t *testing.T) {
	venue := &Venue{OpenTime: "8am", CloseTime: "22:00"}

	_, _, err := venue.OpeningWindow(time.Now())
	assert.Error(t, err)
}
