// Package dateutil holds the calendar helpers shared by the reminder
// queries and the presentation layer. Display strings follow the
// product's pt-BR wording.
package dateutil

import (
	"fmt"
	"time"

	"mypills/dbtypes"
)

const (
	dateLayout     = "02/01/2006"
	timeLayout     = "15:04"
	dateTimeLayout = "02/01/2006 15:04"
	dayKeyLayout   = "2006-01-02"
)

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func FormatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func FormatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// DayKey collapses t to its calendar day in local time. Two instants
// share a DayKey exactly when the device clock puts them on the same
// calendar day.
func DayKey(t time.Time) string {
	return t.Local().Format(dayKeyLayout)
}

// IsToday reports whether t falls on the same local calendar day as now.
func IsToday(now, t time.Time) bool {
	return DayKey(t) == DayKey(now)
}

func IsTomorrow(now, t time.Time) bool {
	return DayKey(t) == DayKey(now.AddDate(0, 0, 1))
}

func IsYesterday(now, t time.Time) bool {
	return DayKey(t) == DayKey(now.AddDate(0, 0, -1))
}

// IsOverdue reports whether t has already passed.
func IsOverdue(now, t time.Time) bool {
	return t.Before(now)
}

// RelativeDayText renders t as "Hoje", "Amanhã", or "Ontem" when it falls
// on a neighboring calendar day, and as a plain date otherwise.
func RelativeDayText(now, t time.Time) string {
	switch {
	case IsToday(now, t):
		return "Hoje"
	case IsTomorrow(now, t):
		return "Amanhã"
	case IsYesterday(now, t):
		return "Ontem"
	}
	return FormatDate(t)
}

// TimeRemaining renders the time left until target in the largest
// applicable unit, or "Vencido" when target has passed.
func TimeRemaining(now, target time.Time) string {
	diff := target.Sub(now)
	if diff <= 0 {
		return "Vencido"
	}

	days := int(diff.Hours() / 24)
	hours := int(diff.Hours()) % 24
	minutes := int(diff.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%d %s", days, plural(days, "dia", "dias"))
	case hours > 0:
		return fmt.Sprintf("%d %s", hours, plural(hours, "hora", "horas"))
	default:
		return fmt.Sprintf("%d %s", minutes, plural(minutes, "minuto", "minutos"))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// WeekDay pairs a weekday tag with its display label.
type WeekDay struct {
	Key   dbtypes.DayOfWeek
	Label string
}

// WeekDays lists the week starting on Monday, the order schedule editors
// display.
func WeekDays() []WeekDay {
	return []WeekDay{
		{dbtypes.Monday, "Segunda"},
		{dbtypes.Tuesday, "Terça"},
		{dbtypes.Wednesday, "Quarta"},
		{dbtypes.Thursday, "Quinta"},
		{dbtypes.Friday, "Sexta"},
		{dbtypes.Saturday, "Sábado"},
		{dbtypes.Sunday, "Domingo"},
	}
}
