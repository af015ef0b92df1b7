package filter

import (
	"bytes"
	"time"
)

// Output layouts. The fraction is copied from the input between the two, so
// its digits survive exactly, and the offset is always numeric.
const (
	dateTimeLayout = "2006-01-02T15:04:05"
	offsetLayout   = "-07:00"
)

// AppendLine appends line to dst with every parseable timestamp rewritten.
func (f *Filter) AppendLine(dst, line []byte) []byte {
	var stats Stats
	return f.appendLine(dst, line, &stats)
}

// RewriteString returns s with every parseable timestamp rewritten.
func (f *Filter) RewriteString(s string) string {
	return string(f.AppendLine(nil, []byte(s)))
}

func (f *Filter) appendLine(dst, line []byte, stats *Stats) []byte {
	locs := f.pattern.FindAllIndex(line, -1)
	if len(locs) == 0 {
		return append(dst, line...)
	}

	last := 0
	for _, loc := range locs {
		dst = append(dst, line[last:loc[0]]...)

		var ok bool
		dst, ok = f.AppendSpan(dst, line[loc[0]:loc[1]])
		stats.Matched++
		if ok {
			stats.Rewritten++
		}
		last = loc[1]
	}
	return append(dst, line[last:]...)
}

// AppendSpan appends the rewritten form of a candidate timestamp to dst and
// reports whether it parsed. When it does not, span is appended unchanged.
func (f *Filter) AppendSpan(dst, span []byte) ([]byte, bool) {
	t, ok := parseInstant(span)
	if !ok {
		return append(dst, span...), false
	}

	local := f.rule.Project(t)
	if _, off := local.Zone(); off%60 != 0 {
		// The printed offset has no seconds field, so the wall clock must
		// not carry them either or the output names another instant.
		local = t.In(time.FixedZone("", off-off%60))
	}
	dst = local.AppendFormat(dst, dateTimeLayout)
	dst = append(dst, fraction(span)...)
	return local.AppendFormat(dst, offsetLayout), true
}

// parseInstant parses an RFC 3339 timestamp, accepting a lower-case z as UTC.
// Leap seconds (":60") are rejected by time.Parse and pass through.
func parseInstant(span []byte) (time.Time, bool) {
	if !wellFormed(span) {
		return time.Time{}, false
	}

	s := string(span)
	if n := len(s); n > 0 && s[n-1] == 'z' {
		s = s[:n-1] + "Z"
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// wellFormed reports whether span has the exact RFC 3339 shape
// YYYY-MM-DDTHH:MM:SS[.f...](Z|±HH:MM). time.Parse falls back to a lenient
// parser that takes one-digit fields, so the shape is checked first.
func wellFormed(span []byte) bool {
	const prefix = len("2006-01-02T15:04:05")
	if len(span) < prefix+1 {
		return false
	}
	for i := 0; i < prefix; i++ {
		c := span[i]
		switch i {
		case 4, 7:
			if c != '-' {
				return false
			}
		case 10:
			if c != 'T' {
				return false
			}
		case 13, 16:
			if c != ':' {
				return false
			}
		default:
			if !isDigit(c) {
				return false
			}
		}
	}

	rest := span[prefix:]
	if rest[0] == '.' {
		n := len(fraction(rest))
		if n < 2 {
			return false
		}
		rest = rest[n:]
	}

	switch {
	case len(rest) == 1:
		return rest[0] == 'Z' || rest[0] == 'z'
	case len(rest) == 6:
		return (rest[0] == '+' || rest[0] == '-') &&
			isDigit(rest[1]) && rest[1] <= '2' && isDigit(rest[2]) &&
			rest[3] == ':' &&
			isDigit(rest[4]) && rest[4] <= '5' && isDigit(rest[5]) &&
			(rest[1] < '2' || rest[2] <= '3')
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// fraction returns the ".ddd" part of span, or nil.
// Projection moves whole seconds only, so these digits never change.
func fraction(span []byte) []byte {
	i := bytes.IndexByte(span, '.')
	if i < 0 {
		return nil
	}

	j := i + 1
	for j < len(span) && isDigit(span[j]) {
		j++
	}
	return span[i:j]
}
