package koyomi

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/curtisnewbie/koyomi/util"
	"github.com/spf13/cast"
)

const (
	unixSecPersudoMax = 9999999999 // 2286-11-21, should be enough :D

	SQLDateTimeFormat = "2006/01/02 15:04:05"
)

// DateTime is an instant carried as float64 unix epoch milliseconds.
//
// Unlike time.Time, a DateTime can be invalid: parsing garbage yields a NaN-backed
// value that is never equal to anything, itself included (see Invalid and Valid).
// Calendar field accessors (Year, Hour, ...) read the local calendar unless stated
// otherwise.
//
// This type implements sql.Scanner and driver.Valuer, and thus can be safely used
// in GORM just like time.Time. It also implements json/encoding Marshaler and
// Unmarshaler to support json marshalling (in forms of epoch milliseconds).
type DateTime struct {
	ms float64
}

func Now() DateTime {
	return Of(time.Now())
}

func Of(t time.Time) DateTime {
	return DateTime{ms: float64(t.UnixMilli())}
}

func FromUnixMilli(ms int64) DateTime {
	return DateTime{ms: float64(ms)}
}

// Invalid returns the invalid DateTime sentinel.
//
// The sentinel is backed by NaN, so Invalid().Equal(Invalid()) is false.
func Invalid() DateTime {
	return DateTime{ms: math.NaN()}
}

func (d DateTime) Valid() bool {
	return !math.IsNaN(d.ms)
}

// Equal reports whether d and u are the same instant.
//
// An invalid DateTime never equals anything, not even itself.
func (d DateTime) Equal(u DateTime) bool {
	return d.ms == u.ms
}

func (d DateTime) EpochMillis() float64 {
	return d.ms
}

func (d DateTime) UnixMilli() int64 {
	return int64(d.ms)
}

// Time converts to time.Time in the local location.
func (d DateTime) Time() time.Time {
	return time.UnixMilli(int64(d.ms))
}

func (d DateTime) In(loc *time.Location) time.Time {
	return d.Time().In(loc)
}

func (d DateTime) UTC() time.Time {
	return d.Time().UTC()
}

func (d DateTime) Add(dur time.Duration) DateTime {
	return DateTime{ms: d.ms + float64(dur.Milliseconds())}
}

func (d DateTime) Sub(u DateTime) time.Duration {
	return time.Duration(d.ms-u.ms) * time.Millisecond
}

func (d DateTime) After(u DateTime) bool {
	return d.ms > u.ms
}

func (d DateTime) Before(u DateTime) bool {
	return d.ms < u.ms
}

func (d DateTime) Year() int {
	return d.Time().Year()
}

func (d DateTime) Month() time.Month {
	return d.Time().Month()
}

func (d DateTime) Day() int {
	return d.Time().Day()
}

func (d DateTime) Hour() int {
	return d.Time().Hour()
}

func (d DateTime) Minute() int {
	return d.Time().Minute()
}

func (d DateTime) Second() int {
	return d.Time().Second()
}

func (d DateTime) Millisecond() int {
	return d.Time().Nanosecond() / int(time.Millisecond)
}

func (d DateTime) FormatDate() string {
	return d.Time().Format(time.DateOnly)
}

func (d DateTime) FormatClassic() string {
	return d.Time().Format(SQLDateTimeFormat)
}

func (d DateTime) String() string {
	if !d.Valid() {
		return "Invalid Date"
	}
	return d.Time().String()
}

// Implements driver.Valuer in database/sql.
func (d DateTime) Value() (driver.Value, error) {
	if !d.Valid() || d.Time().IsZero() {
		return nil, nil
	}
	return d.Time().Format(SQLDateTimeFormat), nil
}

// Implements encoding/json Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return util.UnsafeStr2Byt("null"), nil
	}
	return util.UnsafeStr2Byt(fmt.Sprintf("%d", d.UnixMilli())), nil
}

// Implements encoding/json Unmarshaler.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Invalid()
		return nil
	}
	millisec, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*d = FromUnixMilli(millisec)
	return nil
}

// Implements sql.Scanner in database/sql.
func (d *DateTime) Scan(value interface{}) error {
	if value == nil {
		*d = Invalid()
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = Of(v)
	case []byte:
		t, err := time.ParseInLocation(SQLDateTimeFormat, string(v), time.Local)
		if err != nil {
			return err
		}
		*d = Of(t)
	case string:
		t, err := time.ParseInLocation(SQLDateTimeFormat, v, time.Local)
		if err != nil {
			return err
		}
		*d = Of(t)
	default:
		val, err := cast.ToInt64E(value)
		if err != nil {
			return fmt.Errorf("invalid field type '%T' for DateTime, unable to convert, %#v", value, value)
		}
		if val > unixSecPersudoMax {
			*d = FromUnixMilli(val) // in milli-sec
		} else {
			*d = Of(time.Unix(val, 0)) // in sec
		}
	}
	return nil
}
