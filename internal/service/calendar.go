package service

import (
	"time"

	"deskboard/internal/domain"
)

// BuildMonth lays out a month as whole weeks (Sunday first), padding
// with the neighboring months' days, and marks today and event days.
func BuildMonth(now time.Time, year int, month time.Month, events []domain.CalendarEvent) domain.CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))

	last := first.AddDate(0, 1, -1)
	gridEnd := last.AddDate(0, 0, 6-int(last.Weekday()))

	eventDays := make(map[string]bool, len(events))
	for _, ev := range events {
		eventDays[ev.Date.In(now.Location()).Format("2006-01-02")] = true
	}
	today := now.Format("2006-01-02")

	var weeks [][]domain.CalendarDay
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 7) {
		week := make([]domain.CalendarDay, 0, 7)
		for i := 0; i < 7; i++ {
			day := d.AddDate(0, 0, i)
			key := day.Format("2006-01-02")
			week = append(week, domain.CalendarDay{
				Date:      key,
				Day:       day.Day(),
				InMonth:   day.Month() == month,
				Today:     key == today,
				HasEvents: eventDays[key],
			})
		}
		weeks = append(weeks, week)
	}

	monthEvents := make([]domain.CalendarEvent, 0)
	for _, ev := range events {
		local := ev.Date.In(now.Location())
		if local.Year() == year && local.Month() == month {
			monthEvents = append(monthEvents, ev)
		}
	}

	return domain.CalendarMonth{
		Year:   year,
		Month:  int(month),
		Weeks:  weeks,
		Events: monthEvents,
	}
}
