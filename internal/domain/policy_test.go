package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCancellation(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		now        time.Time
		freeBefore int
		want       CancellationClass
	}{
		{
			name:       "well before threshold",
			now:        start.Add(-3 * time.Hour),
			freeBefore: 60,
			want:       CancellationFree,
		},
		{
			name:       "exactly at threshold is free",
			now:        start.Add(-60 * time.Minute),
			freeBefore: 60,
			want:       CancellationFree,
		},
		{
			name:       "one minute past threshold",
			now:        start.Add(-59 * time.Minute),
			freeBefore: 60,
			want:       CancellationLate,
		},
		{
			name:       "zero threshold before start",
			now:        start.Add(-time.Minute),
			freeBefore: 0,
			want:       CancellationFree,
		},
		{
			name:       "zero threshold exactly at start",
			now:        start,
			freeBefore: 0,
			want:       CancellationFree,
		},
		{
			name:       "after start",
			now:        start.Add(time.Minute),
			freeBefore: 0,
			want:       CancellationLate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyCancellation(start, tt.now, tt.freeBefore)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResourceCanFit(t *testing.T) {
	r := &Resource{Capacity: 4}

	assert.True(t, r.CanFit(1))
	assert.True(t, r.CanFit(4))
	assert.False(t, r.CanFit(5))
}
