package scheduling

import (
	"fmt"
	"time"
)

// Minutes is a time of day expressed as minutes from midnight.
type Minutes int

// ParseClock parses a "HH:MM" 24h string.
func ParseClock(s string) (Minutes, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return Minutes(h*60 + m), nil
}

// Clock formats as "HH:MM".
func (m Minutes) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Window is a half-open interval [Start, End) within a single day.
type Window struct {
	Start Minutes
	End   Minutes
}

// Overlaps is the half-open interval test. Touching intervals
// (aEnd == bStart) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd Minutes) bool {
	return aStart < bEnd && bStart < aEnd
}

// Subtract removes the blocked intervals from the windows. Blocks are
// folded in one at a time: a window partially covered by a block is
// split into its surviving left/right remainders, a fully covered
// window disappears, and disjoint windows pass through unchanged.
func Subtract(windows, blocks []Window) []Window {
	result := windows
	for _, b := range blocks {
		next := make([]Window, 0, len(result))
		for _, w := range result {
			if b.End <= w.Start || b.Start >= w.End {
				next = append(next, w)
				continue
			}
			if w.Start < b.Start {
				next = append(next, Window{Start: w.Start, End: b.Start})
			}
			if b.End < w.End {
				next = append(next, Window{Start: b.End, End: w.End})
			}
		}
		result = next
	}
	return result
}

// StoreDayOfWeek maps a date onto the availability table's day-of-week
// convention:
//
//	Sunday=1 Monday=2 Tuesday=3 Wednesday=4 Thursday=5 Friday=6 Saturday=7
//
// Go's time.Weekday counts Sunday=0..Saturday=6, so the mapping is a
// plain +1. Kept as a named function so the convention has a single
// point of change.
func StoreDayOfWeek(date time.Time) int {
	return int(date.Weekday()) + 1
}
