package zone

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// maxOffsetHours bounds numeric offsets to what RFC 3339 can express.
const maxOffsetHours = 23

// Parse resolves a rule description.
//
// Accepted forms:
//   - "" or "local" (any case): the system local timezone
//   - "utc" or "z" (any case): offset zero
//   - "+09:00", "-0800", "+05": a fixed numeric offset
//   - anything else: an IANA zone name such as "Asia/Tokyo"
func Parse(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "local":
		return Local(), nil
	case "utc", "z":
		return Fixed(0), nil
	}

	if s[0] == '+' || s[0] == '-' {
		offset, err := ParseOffset(s)
		if err != nil {
			return nil, err
		}
		return Fixed(offset), nil
	}

	return Named(s)
}

// ParseOffset parses a signed numeric offset (±HH, ±HHMM or ±HH:MM) into
// seconds east of UTC.
func ParseOffset(s string) (int, error) {
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return 0, errors.Newf("offset %q: must start with + or -", s)
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}

	digits := s[1:]
	var hh, mm string
	switch {
	case len(digits) == 2:
		hh = digits
	case len(digits) == 4:
		hh, mm = digits[:2], digits[2:]
	case len(digits) == 5 && digits[2] == ':':
		hh, mm = digits[:2], digits[3:]
	default:
		return 0, errors.Newf("offset %q: want ±HH, ±HHMM or ±HH:MM", s)
	}

	hours, err := parseTwoDigits(hh)
	if err != nil || hours > maxOffsetHours {
		return 0, errors.Newf("offset %q: invalid hours", s)
	}
	minutes := 0
	if mm != "" {
		minutes, err = parseTwoDigits(mm)
		if err != nil || minutes > 59 {
			return 0, errors.Newf("offset %q: invalid minutes", s)
		}
	}

	return sign * (hours*3600 + minutes*60), nil
}

func parseTwoDigits(s string) (int, error) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, errors.Newf("%q is not two digits", s)
	}
	return strconv.Atoi(s)
}
