package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSlot parses a time-of-day value like "08:15" or "8:15:00" into its
// hour and minute. Seconds are ignored. The hour must be 0-23 and the
// minute 0-59.
func ParseSlot(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("invalid time slot %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in time slot %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in time slot %q", s)
	}
	return hour, minute, nil
}

// SlotString formats an hour and minute as a canonical zero-padded HH:MM slot.
func SlotString(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// CompareSlots orders two canonical HH:MM slots chronologically.
// Zero-padded slots sort correctly as plain strings.
func CompareSlots(a, b string) int {
	return strings.Compare(a, b)
}
