package timezone

import "time"

const (
	DefaultTimezone = "America/New_York"

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Clock is the single source of "now" for date comparisons.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

func NewClock(tz string) Clock {
	return systemClock{loc: Location(tz)}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Today formats the clock's current day as YYYY-MM-DD.
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}
