package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    Minutes
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:07", want: 547},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "garbage", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockRoundTrip(t *testing.T) {
	m, err := ParseClock("09:07")
	require.NoError(t, err)
	assert.Equal(t, "09:07", m.Clock())
	assert.Equal(t, "00:05", Minutes(5).Clock())
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		aStart, aEnd, bStart, bEnd Minutes
		want                   bool
	}{
		{name: "disjoint", aStart: 540, aEnd: 570, bStart: 600, bEnd: 630, want: false},
		{name: "touching do not overlap", aStart: 540, aEnd: 570, bStart: 570, bEnd: 600, want: false},
		{name: "partial overlap", aStart: 540, aEnd: 580, bStart: 570, bEnd: 600, want: true},
		{name: "containment", aStart: 540, aEnd: 660, bStart: 570, bEnd: 600, want: true},
		{name: "identical", aStart: 540, aEnd: 570, bStart: 540, bEnd: 570, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)
			// symmetry
			assert.Equal(t, got, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestSubtract(t *testing.T) {
	w := func(start, end Minutes) Window { return Window{Start: start, End: end} }

	tests := []struct {
		name    string
		windows []Window
		blocks  []Window
		want    []Window
	}{
		{
			name:    "no blocks is a no-op",
			windows: []Window{w(540, 720)},
			blocks:  nil,
			want:    []Window{w(540, 720)},
		},
		{
			name:    "disjoint block is a no-op",
			windows: []Window{w(540, 720)},
			blocks:  []Window{w(780, 840)},
			want:    []Window{w(540, 720)},
		},
		{
			name:    "full cover removes the window",
			windows: []Window{w(540, 720)},
			blocks:  []Window{w(500, 800)},
			want:    []Window{},
		},
		{
			name:    "interior block splits the window",
			windows: []Window{w(540, 720)},
			blocks:  []Window{w(600, 630)},
			want:    []Window{w(540, 600), w(630, 720)},
		},
		{
			name:    "block overlapping the left edge trims",
			windows: []Window{w(540, 720)},
			blocks:  []Window{w(500, 600)},
			want:    []Window{w(600, 720)},
		},
		{
			name:    "blocks fold one at a time",
			windows: []Window{w(540, 720)},
			blocks:  []Window{w(600, 630), w(660, 690)},
			want:    []Window{w(540, 600), w(630, 660), w(690, 720)},
		},
		{
			name:    "block spanning two windows",
			windows: []Window{w(540, 600), w(630, 720)},
			blocks:  []Window{w(570, 660)},
			want:    []Window{w(540, 570), w(660, 720)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtract(tt.windows, tt.blocks)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStoreDayOfWeek(t *testing.T) {
	// Store convention: Sunday=1 .. Saturday=7.
	tests := []struct {
		date time.Time
		want int
	}{
		{date: time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), want: 1}, // Sunday
		{date: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), want: 2}, // Monday
		{date: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), want: 4}, // Wednesday
		{date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), want: 6}, // Friday
		{date: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), want: 7}, // Saturday
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StoreDayOfWeek(tt.date), tt.date.Weekday().String())
	}
}
