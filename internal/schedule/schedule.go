// Package schedule computes staggered publish times for batches of pins.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Slot pairs a pin with its computed publish timestamp.
type Slot struct {
	PinID       string
	ScheduledAt time.Time
}

// Plan assigns pin i (0-indexed) the timestamp
// startDate + i*intervalDays at the given time of day ("HH:MM",
// 24-hour), seconds and subseconds zeroed. Output order matches the
// input order.
//
// Plan is a pure function of its inputs. It does not reject a zero or
// negative interval; a zero interval collapses every pin onto the
// start date. Rejecting that is a caller-side constraint.
func Plan(pinIDs []string, startDate time.Time, timeOfDay string, intervalDays int) ([]Slot, error) {
	hour, minute, err := parseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, len(pinIDs))
	for i, id := range pinIDs {
		day := startDate.AddDate(0, 0, i*intervalDays)
		slots[i] = Slot{
			PinID:       id,
			ScheduledAt: time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, startDate.Location()),
		}
	}
	return slots, nil
}

func parseTimeOfDay(raw string) (hour, minute int, err error) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("time %q is not HH:MM", raw)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("time %q has invalid hour", raw)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time %q has invalid minute", raw)
	}
	return hour, minute, nil
}
