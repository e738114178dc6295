// Package period models a time period that is either a start date plus a
// tenor, or an explicit start and end date.
package period

import (
	"fmt"
	"time"

	"github.com/KasperOmsK/adtfn"
)

// DateLayout is the layout used to print and parse dates.
const DateLayout = time.DateOnly

// Sum declares the Period variants.
var Sum = adtfn.NewSum("Period", "DurationPeriod", "DatePeriod")

// Period is a DurationPeriod or a DatePeriod.
type Period interface {
	adtfn.Variant
	isPeriod()
}

// DurationPeriod starts on Start and lasts Duration.
type DurationPeriod struct {
	Start    time.Time
	Duration Tenor
}

// DatePeriod runs from Start to End inclusive.
type DatePeriod struct {
	Start time.Time
	End   time.Time
}

func (DurationPeriod) Variant() string { return "DurationPeriod" }
func (DatePeriod) Variant() string     { return "DatePeriod" }

func (DurationPeriod) isPeriod() {}
func (DatePeriod) isPeriod()     {}

// NewDurationPeriod builds a DurationPeriod from a start date and a tenor
// string such as "1M".
func NewDurationPeriod(start time.Time, duration string) (DurationPeriod, error) {
	if start.IsZero() {
		return DurationPeriod{}, adtfn.Invalidf(Sum, "DurationPeriod", "start", "zero date")
	}
	tenor, err := ParseTenor(duration)
	if err != nil {
		return DurationPeriod{}, &adtfn.ConstructionError{
			Sum:     Sum.Name(),
			Variant: "DurationPeriod",
			Field:   "duration",
			Reason:  err,
		}
	}
	return DurationPeriod{Start: civil(start), Duration: tenor}, nil
}

// NewDatePeriod builds a DatePeriod. end may equal start but not precede it.
func NewDatePeriod(start, end time.Time) (DatePeriod, error) {
	if start.IsZero() {
		return DatePeriod{}, adtfn.Invalidf(Sum, "DatePeriod", "start", "zero date")
	}
	if end.IsZero() {
		return DatePeriod{}, adtfn.Invalidf(Sum, "DatePeriod", "end", "zero date")
	}
	start, end = civil(start), civil(end)
	if end.Before(start) {
		return DatePeriod{}, adtfn.Invalidf(Sum, "DatePeriod", "end",
			"%s is before start %s", end.Format(DateLayout), start.Format(DateLayout))
	}
	return DatePeriod{Start: start, End: end}, nil
}

const secondsPerDay = 24 * 60 * 60

// civil drops the clock and zone of t, keeping its calendar date.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Match calls onDuration or onDate depending on the variant of p.
func Match[R any](p Period, onDuration func(DurationPeriod) R, onDate func(DatePeriod) R) (R, error) {
	switch v := p.(type) {
	case DurationPeriod:
		return adtfn.Dispatch(Sum, v, onDuration)
	case *DurationPeriod:
		if v != nil {
			return adtfn.Dispatch(Sum, *v, onDuration)
		}
	case DatePeriod:
		return adtfn.Dispatch(Sum, v, onDate)
	case *DatePeriod:
		if v != nil {
			return adtfn.Dispatch(Sum, *v, onDate)
		}
	}
	var zero R
	return zero, adtfn.Unmatched(Sum, p)
}

// Format renders p as an indented two line description.
func Format(p Period) (string, error) {
	return Match(p,
		func(d DurationPeriod) string {
			return fmt.Sprintf("start_date: %s\n  duration: %s", d.Start.Format(DateLayout), d.Duration)
		},
		func(d DatePeriod) string {
			return fmt.Sprintf("start_date: %s\n  end_date: %s", d.Start.Format(DateLayout), d.End.Format(DateLayout))
		},
	)
}

// Length returns the tenor of a DurationPeriod, or the number of days
// between the dates of a DatePeriod.
func Length(p Period) (Tenor, error) {
	return Match(p,
		func(d DurationPeriod) Tenor { return d.Duration },
		func(d DatePeriod) Tenor {
			// both dates are UTC midnight; time.Sub would saturate past
			// about 292 years
			return Tenor{Count: int((d.End.Unix() - d.Start.Unix()) / secondsPerDay), Unit: Days}
		},
	)
}

// End resolves the last date of p.
func End(p Period) (time.Time, error) {
	return Match(p,
		func(d DurationPeriod) time.Time { return d.Duration.AddTo(d.Start) },
		func(d DatePeriod) time.Time { return d.End },
	)
}

// Equal reports whether a and b are the same variant covering the same dates.
func Equal(a, b Period) bool {
	switch x := a.(type) {
	case DurationPeriod:
		y, ok := b.(DurationPeriod)
		return ok && x.Start.Equal(y.Start) && x.Duration == y.Duration
	case DatePeriod:
		y, ok := b.(DatePeriod)
		return ok && x.Start.Equal(y.Start) && x.End.Equal(y.End)
	}
	return false
}
