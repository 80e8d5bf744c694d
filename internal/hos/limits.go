// Package hos implements the FMCSA Hours-of-Service timeline and
// compliance engine: a 15-minute slot codec, a gap-filling timeline
// builder, duty-hour aggregation, advisory entry validation, per-day
// limit evaluation, and a greedy multi-day schedule generator.
//
// All functions are pure and safe for concurrent use; errors surface as
// return values, never panics.
//
// Known quirk: the 14-hour check compares the recorded on_duty_hours
// total alone against the limit, while FMCSA's actual 14-hour rule is a
// window that includes driving time. Generated schedules record driving
// inside on_duty_hours and are therefore checked conservatively;
// timeline-derived totals keep the categories separate.
package hos

// Per-day FMCSA limits (49 CFR 395.3, property-carrying drivers).
// The 60/70-hour rolling window and 34-hour restart are out of scope;
// the high-driving warning is the only multi-day signal emitted.
const (
	MaxDrivingHours      = 11.0
	MaxOnDutyHours       = 14.0
	MinRestHours         = 10.0
	HighDrivingWarnHours = 10.0
	BreakHours           = 0.5
)

// The day is quantized into 96 fifteen-minute slots.
const (
	SlotsPerDay = 96
	SlotHours   = 0.25
)
