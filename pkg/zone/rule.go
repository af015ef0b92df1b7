// Package zone provides the target timezone rules that timestamps are
// projected into.
package zone

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
)

// Rule maps an absolute instant to a local calendar representation.
// The returned time carries the date, time of day, and UTC offset.
type Rule interface {
	// Project returns t expressed in the rule's zone.
	Project(t time.Time) time.Time

	// String returns a human-readable name for the rule.
	String() string
}

// LocalRule projects into the system local timezone.
// time.Local is read on every call, so InitLocal may run after construction.
type LocalRule struct{}

// Local returns the system local timezone rule.
func Local() LocalRule {
	return LocalRule{}
}

// Project returns t in time.Local.
func (LocalRule) Project(t time.Time) time.Time {
	return t.In(time.Local)
}

func (LocalRule) String() string {
	return "Local"
}

// FixedRule projects into a constant UTC offset.
type FixedRule struct {
	offset int
	loc    *time.Location
}

// Fixed returns a rule for a constant offset, in seconds east of UTC.
func Fixed(offsetSeconds int) FixedRule {
	return FixedRule{
		offset: offsetSeconds,
		loc:    time.FixedZone(formatOffset(offsetSeconds), offsetSeconds),
	}
}

// Offset returns the offset in seconds east of UTC.
func (r FixedRule) Offset() int {
	return r.offset
}

// Project returns t at the fixed offset.
func (r FixedRule) Project(t time.Time) time.Time {
	if r.loc == nil {
		return t.UTC()
	}
	return t.In(r.loc)
}

func (r FixedRule) String() string {
	return formatOffset(r.offset)
}

// NamedRule projects into an IANA timezone, honoring its DST transitions.
type NamedRule struct {
	loc *time.Location
}

// Named loads the IANA zone with the given name.
func Named(name string) (NamedRule, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return NamedRule{}, errors.Wrapf(err, "loading zone %q", name)
	}
	return NamedRule{loc: loc}, nil
}

// Location returns the underlying location.
func (r NamedRule) Location() *time.Location {
	return r.loc
}

// Project returns t in the named zone. The zero NamedRule projects to UTC.
func (r NamedRule) Project(t time.Time) time.Time {
	if r.loc == nil {
		return t.UTC()
	}
	return t.In(r.loc)
}

func (r NamedRule) String() string {
	return r.loc.String()
}

func formatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, seconds%3600/60)
}
