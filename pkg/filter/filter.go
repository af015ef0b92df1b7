// Package filter rewrites ISO-8601 timestamps in a text stream into a target
// timezone, passing every other byte through unchanged.
//
// A Filter is built once with a zone.Rule and then applied line by line:
//
//	f, err := filter.New(zone.Local())
//	if err != nil {
//		return err
//	}
//	_, err = f.Run(os.Stdin, os.Stdout)
//
// Text that matches Pattern but does not parse as a timestamp is left as is.
package filter

import (
	"bufio"
	"io"
	"regexp"

	"github.com/ccollicutt/ltime/pkg/zone"
)

// readBufferSize is the bufio chunk size; lines longer than this are
// assembled from several chunks.
const readBufferSize = 64 * 1024

// Filter rewrites timestamps into a target timezone.
// A Filter holds no per-run state and may be reused.
type Filter struct {
	pattern *regexp.Regexp
	rule    zone.Rule
}

// Stats counts what a run did.
type Stats struct {
	// Lines is the number of lines read, including a final line without
	// terminator.
	Lines int

	// Matched is the number of candidate spans found.
	Matched int

	// Rewritten is the number of spans that parsed and were replaced.
	Rewritten int
}

// New creates a Filter that projects timestamps through rule.
// A nil rule means the system local timezone.
func New(rule zone.Rule) (*Filter, error) {
	return NewWithPattern(Pattern, rule)
}

// NewWithPattern creates a Filter with a custom recognizer expression.
// A compile failure is returned marked with ErrPattern.
func NewWithPattern(expr string, rule zone.Rule) (*Filter, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, patternError(err)
	}
	if rule == nil {
		rule = zone.Local()
	}
	return &Filter{pattern: re, rule: rule}, nil
}

// Rule returns the target timezone rule.
func (f *Filter) Rule() zone.Rule {
	return f.rule
}

// Run copies r to w line by line, rewriting timestamps on the way.
// Line terminators are kept with their line, and each line is written with a
// single Write before the next one is read. Run returns nil at end of input;
// a read or write failure stops it immediately with an error marked ErrIO.
func (f *Filter) Run(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	br := bufio.NewReaderSize(r, readBufferSize)

	var line, out []byte
	for {
		var err error
		line, err = readLine(br, line[:0])
		if err != nil && err != io.EOF {
			return stats, readError(err)
		}

		if len(line) > 0 {
			stats.Lines++
			out = f.appendLine(out[:0], line, &stats)
			if _, werr := w.Write(out); werr != nil {
				return stats, writeError(werr)
			}
		}

		if err == io.EOF {
			return stats, nil
		}
	}
}

// readLine appends the next line, terminator included, to buf.
func readLine(br *bufio.Reader, buf []byte) ([]byte, error) {
	for {
		chunk, err := br.ReadSlice('\n')
		buf = append(buf, chunk...)
		if err != bufio.ErrBufferFull {
			return buf, err
		}
	}
}
