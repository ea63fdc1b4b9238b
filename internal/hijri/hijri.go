// Package hijri converts Gregorian dates to the Islamic (Hijri) calendar
// using the tabular civil calendar: a 30-year intercalation cycle computed
// with Julian Day Number arithmetic. The conversion is pure and does no I/O.
package hijri

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Month is a Hijri month, 1 (Muharram) through 12 (Dhul Hijjah).
type Month int

const (
	Muharram Month = 1 + iota
	Safar
	RabiAlAwwal
	RabiAlThani
	JumadaAlAwwal
	JumadaAlThani
	Rajab
	Shaban
	Ramadan
	Shawwal
	DhulQadah
	DhulHijjah
)

var monthNames = [12]string{
	"Muharram", "Safar", "Rabi al-Awwal", "Rabi al-Thani",
	"Jumada al-Awwal", "Jumada al-Thani", "Rajab", "Shaban",
	"Ramadan", "Shawwal", "Dhul Qadah", "Dhul Hijjah",
}

// String returns the month's English name.
func (m Month) String() string {
	if m < Muharram || m > DhulHijjah {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// MarshalJSON encodes the month as its English name.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts the English month name.
func (m *Month) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i, n := range monthNames {
		if n == name {
			*m = Month(i + 1)
			return nil
		}
	}
	return fmt.Errorf("unknown hijri month %q", name)
}

// Date is a Hijri calendar date. Day is 1-30; months are 29 or 30 days.
type Date struct {
	Day   int   `json:"day"`
	Month Month `json:"month"`
	Year  int   `json:"year"`
}

// String renders the date as "14 Ramadan 1445".
func (d Date) String() string {
	return fmt.Sprintf("%d %s %d", d.Day, d.Month, d.Year)
}

// ErrDateOutOfRange is returned for Gregorian dates outside the supported range.
var ErrDateOutOfRange = errors.New("hijri: date outside supported range")

// Supported Gregorian year range. The tabular cycle is valid well beyond
// this, but dates outside it have no business in a booking form.
const (
	minYear = 1900
	maxYear = 2299
)

// Islamic civil epoch, expressed as a Julian Day Number offset.
const islamicEpoch = 1948440

// FromTime converts a Gregorian calendar date to its Hijri equivalent.
// Only the year, month and day of t are considered.
func FromTime(t time.Time) (Date, error) {
	year, month, day := t.Date()
	if year < minYear || year > maxYear {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrDateOutOfRange, year, month, day)
	}

	jdn := gregorianJDN(year, int(month), day)

	l := jdn - islamicEpoch + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29

	hm := (24 * l) / 709
	hd := l - (709*hm)/24
	hy := 30*n + j - 30

	return Date{Day: hd, Month: Month(hm), Year: hy}, nil
}

// gregorianJDN computes the Julian Day Number for a Gregorian calendar date.
func gregorianJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}
