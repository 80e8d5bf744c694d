package hos

import "testing"

func TestTimeToSlotIndex(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"00:15", 1},
		{"00:30", 2},
		{"00:45", 3},
		{"01:00", 4},
		{"08:00", 32},
		{"12:00", 48},
		{"23:45", 95},
		{"24:00", 96},
		// Minutes inside a slot floor down.
		{"08:14", 32},
		{"08:16", 33},
		// Invalid input collapses to slot 0.
		{"invalid", 0},
		{"25:00", 0},
		{"12:70", 0},
		{"", 0},
	}

	for _, c := range cases {
		if got := TimeToSlotIndex(c.in); got != c.want {
			t.Errorf("TimeToSlotIndex(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseClockStrict(t *testing.T) {
	if slot, err := ParseClock("08:15"); err != nil || slot != 33 {
		t.Errorf("ParseClock(08:15) = %d, %v, want 33, nil", slot, err)
	}
	if slot, err := ParseClock("24:00"); err != nil || slot != 96 {
		t.Errorf("ParseClock(24:00) = %d, %v, want 96, nil", slot, err)
	}

	for _, in := range []string{"invalid", "25:00", "12:70", "", "08", "-1:00", "08:-5"} {
		if _, err := ParseClock(in); err == nil {
			t.Errorf("ParseClock(%q): expected error", in)
		}
	}
}

func TestSlotIndexToTime(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{1, "00:15"},
		{4, "01:00"},
		{32, "08:00"},
		{48, "12:00"},
		{95, "23:45"},
		{96, "24:00"},
		// Clamping.
		{-1, "00:00"},
		{100, "24:00"},
	}

	for _, c := range cases {
		if got := SlotIndexToTime(c.in); got != c.want {
			t.Errorf("SlotIndexToTime(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlotRoundTrip(t *testing.T) {
	// Slot-aligned clock strings survive the round trip exactly.
	for slot := 0; slot < SlotsPerDay; slot++ {
		s := SlotIndexToTime(slot)
		if got := TimeToSlotIndex(s); got != slot {
			t.Fatalf("round trip slot %d via %q gave %d", slot, s, got)
		}
	}
}
