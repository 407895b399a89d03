package scheduling

import "sort"

// GenerateSlots produces the ordered, deduplicated candidate start
// times for a day.
//
// Per window, the start is rounded down to the slotMinutes grid and the
// cursor steps forward by slotMinutes while the candidate still clears
// blockMinutes of calendar time before the window ends. blockMinutes is
// the service's worst-case duration plus the inter-appointment buffer;
// durationMin is the actual appointment length used for the occupancy
// overlap test.
func GenerateSlots(windows []Window, slotMinutes, blockMinutes, durationMin int, occupied []Window) []Minutes {
	if slotMinutes <= 0 {
		return nil
	}
	seen := make(map[Minutes]bool)
	var slots []Minutes
	for _, w := range windows {
		start := roundToSlot(w.Start, slotMinutes)
		for start+Minutes(blockMinutes) <= w.End {
			end := start + Minutes(durationMin)
			if end <= w.End && !overlapsAny(start, end, occupied) && !seen[start] {
				seen[start] = true
				slots = append(slots, start)
			}
			start += Minutes(slotMinutes)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

func roundToSlot(t Minutes, slotMinutes int) Minutes {
	return Minutes(int(t) / slotMinutes * slotMinutes)
}

func overlapsAny(start, end Minutes, occupied []Window) bool {
	for _, o := range occupied {
		if Overlaps(start, end, o.Start, o.End) {
			return true
		}
	}
	return false
}
