package hos

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts a "HH:MM" clock string to its slot index. "24:00"
// maps to 96 (end of day). Minutes inside a slot floor down, so "08:14"
// and "08:00" both map to 32. Malformed or out-of-range input returns an
// error; callers that want the lenient fallback use TimeToSlotIndex.
func ParseClock(t string) (int, error) {
	if t == "24:00" {
		return SlotsPerDay, nil
	}

	hh, mm, ok := strings.Cut(t, ":")
	if !ok {
		return 0, fmt.Errorf("parse clock: %q is not HH:MM", t)
	}

	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("parse clock: bad hour in %q", t)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("parse clock: bad minute in %q", t)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("parse clock: %q out of range", t)
	}

	return hours*4 + minutes/15, nil
}

// TimeToSlotIndex converts a clock string to a slot index in [0, 96].
// Invalid input collapses to slot 0 rather than failing; callers that
// must distinguish "midnight" from "unparseable" validate the raw string
// first (or use ParseClock).
func TimeToSlotIndex(t string) int {
	slot, err := ParseClock(t)
	if err != nil {
		return 0
	}
	return slot
}

// SlotIndexToTime converts a slot index back to a clock string, clamping
// out-of-range indices to "00:00" and "24:00". Slot 96 always renders as
// "24:00", so the codec is not a perfect inverse at the day boundary.
func SlotIndexToTime(slot int) string {
	if slot >= SlotsPerDay {
		return "24:00"
	}
	if slot < 0 {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", slot/4, (slot%4)*15)
}
