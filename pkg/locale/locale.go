// Package locale holds the fixed short-name tables and the clock/date
// formatting used by the lock screen. All functions are pure and total.
package locale

import (
	"fmt"
	"time"
)

// weekdays is indexed by ISO weekday number minus one (Monday first).
var weekdays = [...]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

var months = [...]string{
	"янв", "фев", "мар", "апр", "мая", "июн",
	"июл", "авг", "сен", "окт", "ноя", "дек",
}

// Weekday returns the short name for ISO weekday n (1 = Monday). Any value
// outside 1-7 returns the last entry.
func Weekday(n int) string {
	if n < 1 || n > len(weekdays) {
		return weekdays[len(weekdays)-1]
	}
	return weekdays[n-1]
}

// Month returns the short name for month n (1 = January). Any value outside
// 1-12 returns the last entry.
func Month(n int) string {
	if n < 1 || n > len(months) {
		return months[len(months)-1]
	}
	return months[n-1]
}

// ISOWeekday converts a time.Weekday (Sunday = 0) to the ISO numbering
// (Monday = 1 ... Sunday = 7).
func ISOWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// FormatTime renders t as zero-padded 24-hour "HH:MM".
func FormatTime(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// FormatDate renders t as "<weekday>, <DD> <month>", e.g. "Вт, 12 мар".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %02d %s", Weekday(ISOWeekday(t.Weekday())), t.Day(), Month(int(t.Month())))
}
