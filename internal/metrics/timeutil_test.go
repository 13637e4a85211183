package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationHours(t *testing.T) {
	t.Run("same-day", func(t *testing.T) {
		hours, err := DurationHours("06:00", "14:00")
		assert.NoError(t, err)
		assert.Equal(t, 8.0, hours)
	})
	t.Run("overnight-wraparound", func(t *testing.T) {
		hours, err := DurationHours("22:00", "06:00")
		assert.NoError(t, err)
		assert.Equal(t, 8.0, hours)
	})
	t.Run("fractional", func(t *testing.T) {
		hours, err := DurationHours("16:00", "18:30")
		assert.NoError(t, err)
		assert.Equal(t, 2.5, hours)
	})
	t.Run("zero-length", func(t *testing.T) {
		hours, err := DurationHours("08:00", "08:00")
		assert.NoError(t, err)
		assert.Equal(t, 0.0, hours)
	})
	t.Run("malformed-start", func(t *testing.T) {
		_, err := DurationHours("6am", "14:00")
		assert.Error(t, err)
	})
	t.Run("malformed-end", func(t *testing.T) {
		_, err := DurationHours("06:00", "25:99")
		assert.Error(t, err)
	})
}
