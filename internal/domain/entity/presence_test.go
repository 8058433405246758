package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActiveWithin(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	window := 30 * time.Minute

	tests := []struct {
		name         string
		lastActivity time.Time
		want         bool
	}{
		{"just now", now, true},
		{"29 minutes ago", now.Add(-29 * time.Minute), true},
		{"exactly at the window", now.Add(-30 * time.Minute), false},
		{"31 minutes ago", now.Add(-31 * time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActiveWithin(tt.lastActivity, now, window))
		})
	}
}
