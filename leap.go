package koyomi

// IsLeapYear reports whether d's local calendar year is a Gregorian leap year.
func IsLeapYear(d DateTime) bool {
	y := d.Year()
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}
