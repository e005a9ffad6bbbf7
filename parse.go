package koyomi

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layouts attempted by ParseRFC2822, in order.
//
// RFC 2822 in the wild is messy: day names and seconds are optional, the zone may
// be numeric or named, and callers throw plain human-readable dates at the same
// entry point. Layouts that carry no zone information parse in local time.
var rfc2822Layouts = []string{
	time.RFC1123Z, // "Mon, 02 Jan 2006 15:04:05 -0700"
	time.RFC1123,  // "Mon, 02 Jan 2006 15:04:05 MST"
	time.RFC822Z,  // "02 Jan 06 15:04 -0700"
	time.RFC822,   // "02 Jan 06 15:04 MST"
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05",
	"2 Jan 2006",
	"January 2, 2006 15:04:05",
	"January 2, 2006 3:04:05 PM",
	"January 2, 2006",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
}

// Layouts attempted by ParseISO8601 that contain a zone offset or can omit one,
// parsed in local time when the offset is absent.
var iso8601Layouts = []string{
	time.RFC3339Nano, // offset or 'Z'
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Date-only ISO 8601 forms parse as midnight UTC, matching the convention of the
// usual parsing primitives ('Z'-less date-times are local, bare dates are not).
var iso8601DateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

// ParseRFC2822 parses an RFC 2822 date string, or one of several common
// human-readable date forms.
//
// It never returns an error; an unparseable value yields the Invalid() sentinel.
func ParseRFC2822(value string) DateTime {
	t, err := FuzzParseTimeLoc(rfc2822Layouts, strings.TrimSpace(value), time.Local)
	if err != nil {
		DebugLog("ParseRFC2822 failed, %v", err)
		return Invalid()
	}
	return Of(t)
}

// ParseISO8601 parses an ISO 8601 date string with or without a zone offset.
//
// An explicit offset (or 'Z') is honoured and the result is an absolute instant;
// a date-time without offset is interpreted in local time, a bare date as UTC.
// It never returns an error; an unparseable value yields the Invalid() sentinel.
func ParseISO8601(value string) DateTime {
	value = strings.TrimSpace(value)
	if t, err := FuzzParseTimeLoc(iso8601Layouts, value, time.Local); err == nil {
		return Of(t)
	}
	t, err := FuzzParseTimeLoc(iso8601DateLayouts, value, time.UTC)
	if err != nil {
		DebugLog("ParseISO8601 failed, %v", err)
		return Invalid()
	}
	return Of(t)
}

// FuzzParseTime attempts each format with ParseInLocation in UTC until one matches.
func FuzzParseTime(formats []string, value string) (time.Time, error) {
	return FuzzParseTimeLoc(formats, value, time.UTC)
}

// FuzzParseTimeLoc attempts each format with ParseInLocation until one matches.
//
// Formats that embed zone information take precedence over loc, same as
// time.ParseInLocation itself.
func FuzzParseTimeLoc(formats []string, value string, loc *time.Location) (time.Time, error) {
	if len(formats) < 1 {
		return time.Time{}, errors.New("formats is empty")
	}
	if loc == nil {
		loc = time.UTC
	}

	var t time.Time
	var err error
	for _, f := range formats {
		t, err = time.ParseInLocation(f, value, loc)
		if err == nil {
			return t, nil
		}
	}
	return t, fmt.Errorf("failed to parse time '%s'", value)
}
