package koyomi

import "fmt"

// FormatTimeSpan renders the difference between two instants as "HH:mm:ss.sss".
//
// Each field is the absolute difference of the corresponding local calendar
// sub-field, computed independently: hours against hours, minutes against
// minutes, and so on, with no borrowing between fields. 10:50 vs 11:10 is
// "01:40:00.000", not twenty minutes. The result is symmetric in its arguments.
func FormatTimeSpan(d1 DateTime, d2 DateTime) string {
	t1, t2 := d1.Time(), d2.Time()
	return fmt.Sprintf("%02d:%02d:%02d.%03d",
		absInt(t1.Hour()-t2.Hour()),
		absInt(t1.Minute()-t2.Minute()),
		absInt(t1.Second()-t2.Second()),
		absInt(d1.Millisecond()-d2.Millisecond()))
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
