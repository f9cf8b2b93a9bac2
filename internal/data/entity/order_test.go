package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour int) time.Time {
	return time.Date(2025, 6, 1, hour, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		s1, e1   time.Time
		s2, e2   time.Time
		expected bool
	}{
		{"identical slots", at(10), at(12), at(10), at(12), true},
		{"contained slot", at(10), at(14), at(11), at(12), true},
		{"partial overlap left", at(10), at(12), at(11), at(13), true},
		{"partial overlap right", at(11), at(13), at(10), at(12), true},
		{"touching boundaries do not overlap", at(10), at(12), at(12), at(14), false},
		{"touching boundaries reversed", at(12), at(14), at(10), at(12), false},
		{"disjoint", at(8), at(9), at(10), at(11), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// The predicate is symmetric.
			assert.Equal(t, tt.expected, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestOrderEndTime(t *testing.T) {
	order := &Order{StartTime: at(10), Hours: 3}
	assert.Equal(t, at(13), order.EndTime())
}

func TestOrderStateBlocks(t *testing.T) {
	assert.True(t, OrderStatePending.Blocks())
	assert.True(t, OrderStateConfirmed.Blocks())
	assert.False(t, OrderStateRejected.Blocks())
	assert.False(t, OrderStateFinished.Blocks())
}
