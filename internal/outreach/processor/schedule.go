package processor

import (
	"time"

	"soundreach-server/internal/store"
)

// validateSchedule checks a sending schedule for internal consistency.
// Returns ErrInvalidSchedule on any violation.
func validateSchedule(schedule store.SendingSchedule) error {
	if _, err := time.LoadLocation(schedule.Timezone); err != nil {
		return ErrInvalidSchedule
	}
	if len(schedule.DaysOfWeek) == 0 {
		return ErrInvalidSchedule
	}
	for _, day := range schedule.DaysOfWeek {
		if day < 0 || day > 6 {
			return ErrInvalidSchedule
		}
	}
	start, err := parseClock(schedule.StartTime)
	if err != nil {
		return ErrInvalidSchedule
	}
	end, err := parseClock(schedule.EndTime)
	if err != nil {
		return ErrInvalidSchedule
	}
	if !start.Before(end) {
		return ErrInvalidSchedule
	}
	if schedule.MaxEmailsPerDay < 1 {
		return ErrInvalidSchedule
	}
	if schedule.DelayBetweenEmails < 1 {
		return ErrInvalidSchedule
	}
	return nil
}

// parseClock parses a wall-clock time in HH:MM form.
func parseClock(value string) (time.Time, error) {
	return time.Parse("15:04", value)
}
