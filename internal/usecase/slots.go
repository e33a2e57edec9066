package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/entity"
)

// Slot is a candidate bookable interval of exactly the event type's
// duration, expressed as absolute UTC instants.
type Slot struct {
	Start time.Time
	End   time.Time
}

// parseWallClock splits an "HH:MM" rule boundary.
func parseWallClock(value string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid wall-clock time %q: %w", value, err)
	}
	return t.Hour(), t.Minute(), nil
}

// localWeekday resolves which weekly rules apply to a calendar date by
// anchoring the date in the operator's zone, not the server's. The date
// string alone is ambiguous across timezones.
func localWeekday(date time.Time, loc *time.Location) time.Weekday {
	y, m, d := date.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, loc).Weekday()
}

// buildSlots tiles each rule window with back-to-back slots of exactly
// duration minutes and drops candidates that intersect a confirmed
// booking. Rule boundaries are resolved to absolute instants through the
// operator's zone first, then tiled in absolute time, so every slot is
// the same real length even across a DST transition; a fall-back day
// simply fits more slots into the wall-clock window, a spring-forward
// day fewer.
//
// Duplicate candidates from overlapping rules are collapsed by start
// instant before the conflict filter. Intervals are half-open, so a slot
// abutting a booking boundary survives.
func buildSlots(date time.Time, rules []*entity.AvailabilityRule, durationMinutes int, loc *time.Location, bookings []*entity.Booking) ([]Slot, error) {
	duration := time.Duration(durationMinutes) * time.Minute
	y, m, d := date.Date()

	seen := make(map[int64]struct{})
	var candidates []Slot

	for _, rule := range rules {
		startHour, startMin, err := parseWallClock(rule.StartTime)
		if err != nil {
			return nil, err
		}
		endHour, endMin, err := parseWallClock(rule.EndTime)
		if err != nil {
			return nil, err
		}

		ruleStart := time.Date(y, m, d, startHour, startMin, 0, 0, loc)
		ruleEnd := time.Date(y, m, d, endHour, endMin, 0, 0, loc)

		// No partial trailing slot: a candidate must end on or before
		// the rule boundary.
		for cursor := ruleStart; !cursor.Add(duration).After(ruleEnd); cursor = cursor.Add(duration) {
			if _, dup := seen[cursor.Unix()]; dup {
				continue
			}
			seen[cursor.Unix()] = struct{}{}
			candidates = append(candidates, Slot{
				Start: cursor.UTC(),
				End:   cursor.Add(duration).UTC(),
			})
		}
	}

	var free []Slot
	for _, slot := range candidates {
		conflict := false
		for _, booking := range bookings {
			if booking.Overlaps(slot.Start, slot.End) {
				conflict = true
				break
			}
		}
		if !conflict {
			free = append(free, slot)
		}
	}

	sort.Slice(free, func(i, j int) bool {
		return free[i].Start.Before(free[j].Start)
	})

	return free, nil
}

// localDayBounds returns the absolute instants delimiting the calendar
// date in the operator's zone, used to scope the booking lookup.
func localDayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	end := time.Date(y, m, d+1, 0, 0, 0, 0, loc)
	return start.UTC(), end.UTC()
}
