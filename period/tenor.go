package period

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Unit is the calendar unit of a Tenor.
type Unit byte

const (
	Days   Unit = 'D'
	Weeks  Unit = 'W'
	Months Unit = 'M'
	Years  Unit = 'Y'
)

// ErrTenor is wrapped by every tenor parse failure.
var ErrTenor = errors.New("invalid tenor")

var tenorPattern = regexp.MustCompile(`^(\d+)([DWMY])$`)

// Tenor is a length of time expressed as a count of calendar units, such as
// "1M" or "10D".
type Tenor struct {
	Count int
	Unit  Unit
}

// ParseTenor reads a tenor string. The unit letter is case-insensitive and
// the count must be positive.
func ParseTenor(s string) (Tenor, error) {
	m := tenorPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return Tenor{}, fmt.Errorf("%w: %q", ErrTenor, s)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n == 0 {
		return Tenor{}, fmt.Errorf("%w: %q needs a positive count", ErrTenor, s)
	}
	return Tenor{Count: n, Unit: Unit(m[2][0])}, nil
}

func (t Tenor) String() string {
	return strconv.Itoa(t.Count) + string(t.Unit)
}

// AddTo moves date forward by the tenor.
func (t Tenor) AddTo(date time.Time) time.Time {
	switch t.Unit {
	case Weeks:
		return date.AddDate(0, 0, 7*t.Count)
	case Months:
		return date.AddDate(0, t.Count, 0)
	case Years:
		return date.AddDate(t.Count, 0, 0)
	default:
		return date.AddDate(0, 0, t.Count)
	}
}
