// Package parser parses the date stamps printed on cartridge boards and
// chips.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
)

// DateCode is a partially known production date. Week and Month are mutually
// exclusive; zero fields are unknown.
type DateCode struct {
	Year  int
	Month int
	Week  int
}

// CalendarShort renders the date code in the short listing form, e.g.
// "W14/1997" or "03/1998". Unknown date codes render as "".
func (d DateCode) CalendarShort() string {
	switch {
	case d.Year == 0:
		return ""
	case d.Week > 0:
		return fmt.Sprintf("W%02d/%d", d.Week, d.Year)
	case d.Month > 0:
		return fmt.Sprintf("%02d/%d", d.Month, d.Year)
	default:
		return strconv.Itoa(d.Year)
	}
}

// stampRE matches the week-and-year stamp form used on later boards, e.g.
// "218-2221": two week digits, one year digit, then a lot code.
var stampRE = regexp.MustCompile(`^([0-9]{2})([0-9])[-\ .X]?[0-9]{2,4}Y?$`)

// yearWeekRE matches the plain four digit year+week form, e.g. "9747".
var yearWeekRE = regexp.MustCompile(`^([0-9]{2})([0-9]{2})$`)

// yearMonthRE matches the screen/chip lot code form ending in one year digit,
// two month digits and a two digit sequence number, e.g. "S890220".
var yearMonthRE = regexp.MustCompile(`^.*[0-9]([0-9])([0-9]{2})[0-9]{2}$`)

// ParseStamp parses a date stamp in any known form. Week forms are tried
// before the month form; a form that matches but carries an out-of-range
// field falls through to the next.
func ParseStamp(text string) (DateCode, bool) {
	if c := stampRE.FindStringSubmatch(text); c != nil {
		week, okWeek := week2(c[1])
		year, okYear := year1(c[2])
		if okWeek && okYear {
			return DateCode{Year: year, Week: week}, true
		}
	}
	if c := yearWeekRE.FindStringSubmatch(text); c != nil {
		year, okYear := year2(c[1])
		week, okWeek := week2(c[2])
		if okYear && okWeek {
			return DateCode{Year: year, Week: week}, true
		}
	}
	if c := yearMonthRE.FindStringSubmatch(text); c != nil {
		year, okYear := year1(c[1])
		month, okMonth := month2(c[2])
		if okYear && okMonth {
			return DateCode{Year: year, Month: month}, true
		}
	}
	return DateCode{}, false
}

// year1 resolves a single year digit within the 1990s.
func year1(s string) (int, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	return 1990 + int(s[0]-'0'), true
}

// year2 resolves a two digit year: 89-99 within the 1900s, everything below
// within the 2000s.
func year2(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if n >= 89 {
		return 1900 + n, true
	}
	return 2000 + n, true
}

func month2(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return 0, false
	}
	return n, true
}

func week2(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 53 {
		return 0, false
	}
	return n, true
}
