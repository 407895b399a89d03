package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The running example: a 09:00-12:00 window, 15 minute grid, a service
// taking 30-45 minutes and a 10 minute buffer. Every candidate must
// clear 45+10=55 minutes before noon, so the last offer is 11:00.
func TestGenerateSlots(t *testing.T) {
	window := []Window{{Start: 540, End: 720}}

	t.Run("free day", func(t *testing.T) {
		got := GenerateSlots(window, 15, 55, 30, nil)
		want := []Minutes{540, 555, 570, 585, 600, 615, 630, 645, 660}
		assert.Equal(t, want, got)
	})

	t.Run("occupied interval removes overlapping candidates", func(t *testing.T) {
		// 10:00-10:30 is taken. A 30 minute booking starting at
		// 09:45, 10:00 or 10:15 would overlap it; 09:30 ends exactly
		// at 10:00 and survives.
		got := GenerateSlots(window, 15, 55, 30, []Window{{Start: 600, End: 630}})
		want := []Minutes{540, 555, 570, 630, 645, 660}
		assert.Equal(t, want, got)
	})

	t.Run("window start is rounded down to the grid", func(t *testing.T) {
		got := GenerateSlots([]Window{{Start: 547, End: 720}}, 15, 55, 30, nil)
		assert.NotEmpty(t, got)
		for _, slot := range got {
			assert.Zero(t, int(slot)%15, "candidate %s off the grid", slot.Clock())
			assert.GreaterOrEqual(t, int(slot), 540)
		}
		assert.Equal(t, Minutes(540), got[0])
	})

	t.Run("window too short for the block yields nothing", func(t *testing.T) {
		got := GenerateSlots([]Window{{Start: 540, End: 590}}, 15, 55, 30, nil)
		assert.Empty(t, got)
	})

	t.Run("duplicate candidates across windows are deduplicated", func(t *testing.T) {
		overlapping := []Window{{Start: 540, End: 720}, {Start: 540, End: 660}}
		got := GenerateSlots(overlapping, 15, 55, 30, nil)
		seen := make(map[Minutes]bool)
		for _, slot := range got {
			assert.False(t, seen[slot], "duplicate candidate %s", slot.Clock())
			seen[slot] = true
		}
	})

	t.Run("non-positive slot size yields nothing", func(t *testing.T) {
		assert.Empty(t, GenerateSlots(window, 0, 55, 30, nil))
	})
}
