// utils/hours.go
package utils

import (
	"strings"

	"github.com/top5deutschland/top5_backend/models"
)

// ClosedMarker is the default text for a day without hours.
const ClosedMarker = "Geschlossen"

// dayLabels is the fixed Monday-to-Sunday order used in the serialized
// openingHours string.
var dayLabels = []string{
	"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag",
}

func hoursFields(h *models.WeeklyHours) []*string {
	return []*string{
		&h.Monday, &h.Tuesday, &h.Wednesday, &h.Thursday, &h.Friday, &h.Saturday, &h.Sunday,
	}
}

// FormatWeeklyHours serializes per-day hour fields into the single
// free-text openingHours value: "<DayLabel>: <hours-text>" joined by
// newline in Monday-to-Sunday order, with unset days marked closed.
func FormatWeeklyHours(h models.WeeklyHours) string {
	fields := hoursFields(&h)
	lines := make([]string, len(dayLabels))
	for i, label := range dayLabels {
		text := strings.TrimSpace(*fields[i])
		if text == "" {
			text = ClosedMarker
		}
		lines[i] = label + ": " + text
	}
	return strings.Join(lines, "\n")
}

// ParseWeeklyHours splits a serialized openingHours value back into
// per-day fields for structured editing. Lines that do not match a day
// label are ignored; missing days stay empty.
func ParseWeeklyHours(openingHours string) models.WeeklyHours {
	var h models.WeeklyHours
	fields := hoursFields(&h)
	for _, line := range strings.Split(openingHours, "\n") {
		parts := strings.SplitN(line, ": ", 2)
		if len(parts) != 2 {
			continue
		}
		for i, label := range dayLabels {
			if parts[0] == label {
				*fields[i] = parts[1]
				break
			}
		}
	}
	return h
}
