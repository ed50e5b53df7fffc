package schedule

import (
	"regexp"
	"strings"
	"time"
)

// Resolution is the tenant-local view of a single instant.
type Resolution struct {
	Clock        string    // local time as zero-padded HH:MM
	Weekday      int       // ISO weekday, 1=Monday .. 7=Sunday
	Local        time.Time // the instant in the resolved location
	FallbackUsed bool      // set when the timezone name was invalid and UTC was used
}

// Resolve converts now into the local clock and ISO weekday for the named
// IANA timezone. It never fails: an empty or unrecognized name resolves
// against UTC with FallbackUsed set, so the caller can log the fallback at a
// single point instead of scattering error handling.
func Resolve(timezone string, now time.Time) Resolution {
	var res Resolution

	name := strings.TrimSpace(timezone)
	loc, err := time.LoadLocation(name)
	if err != nil || name == "" {
		loc = time.UTC
		res.FallbackUsed = true
	}

	res.Local = now.In(loc)
	res.Clock = normalizeClock(res.Local.Format("15:04"))
	res.Weekday = isoWeekday(res.Local.Weekday())
	return res
}

// some locale backends render midnight as hour 24, bring it back to 00
func normalizeClock(clock string) string {
	if strings.HasPrefix(clock, "24:") {
		return "00:" + clock[3:]
	}
	return clock
}

// isoWeekday maps Go's Sunday-based weekday to ISO numbering. Anything that
// doesn't map lands on Monday rather than failing.
func isoWeekday(d time.Weekday) int {
	switch d {
	case time.Monday:
		return 1
	case time.Tuesday:
		return 2
	case time.Wednesday:
		return 3
	case time.Thursday:
		return 4
	case time.Friday:
		return 5
	case time.Saturday:
		return 6
	case time.Sunday:
		return 7
	}
	return 1
}

var slotRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidSlotTime reports whether s is a zero-padded HH:MM time in
// 00:00..23:59. Used by the configuration surface; the scheduler itself
// tolerates malformed slots by never matching them.
func ValidSlotTime(s string) bool {
	return slotRe.MatchString(s)
}
