package filter

// Pattern recognizes text that plausibly is an ISO-8601 timestamp with a zone:
// date digits and hyphens, a literal T, time digits and colons, an optional
// fraction, then Z, z or a signed numeric offset. Calendar validity is left
// to the parser.
const Pattern = `[\d-]+T[\d:]+(?:\.\d+)?(?:[Zz]|[+-][\d:]+)`

// Span is a candidate timestamp within a line.
type Span struct {
	// Start is the byte offset of the first byte of the match.
	Start int

	// End is the byte offset just past the match.
	End int

	// Text is the matched text.
	Text string
}

// Spans returns the candidate timestamps in line, left to right and
// non-overlapping.
func (f *Filter) Spans(line []byte) []Span {
	locs := f.pattern.FindAllIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}

	spans := make([]Span, len(locs))
	for i, loc := range locs {
		spans[i] = Span{
			Start: loc[0],
			End:   loc[1],
			Text:  string(line[loc[0]:loc[1]]),
		}
	}
	return spans
}
