package hijri

import "time"

// Sunnah days for hijama: the 17th, 19th and 21st of the lunar month, plus
// the "white days" (13th, 14th, 15th). Advisory only, never a booking
// constraint.
var sunnahDays = map[int]bool{
	13: true,
	14: true,
	15: true,
	17: true,
	19: true,
	21: true,
}

// IsSunnahDay reports whether the Gregorian date falls on a Sunnah day of
// the lunar month. Dates outside the supported range are not Sunnah days.
func IsSunnahDay(t time.Time) bool {
	d, err := FromTime(t)
	if err != nil {
		return false
	}
	return sunnahDays[d.Day]
}

// SunnahDaysInMonth returns every Gregorian date in the given month whose
// lunar day-of-month is a Sunnah day, in ascending order.
func SunnahDaysInMonth(year int, month time.Month) []time.Time {
	var days []time.Time
	cur := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for cur.Month() == month {
		if IsSunnahDay(cur) {
			days = append(days, cur)
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}
