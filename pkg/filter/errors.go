package filter

import "github.com/cockroachdb/errors"

// Sentinel markers for the two failure kinds a filter can produce.
// Test with errors.Is; the wrapped cause keeps its own message.
var (
	// ErrPattern marks a recognizer pattern that failed to compile.
	ErrPattern = errors.New("timestamp pattern")

	// ErrIO marks a failed read from the input or write to the output.
	ErrIO = errors.New("stream i/o")
)

// Kind classifies an error returned by this package.
type Kind int

const (
	KindNone Kind = iota
	KindPattern
	KindIO
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPattern:
		return "pattern"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// KindOf reports which failure kind err carries.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrPattern):
		return KindPattern
	case errors.Is(err, ErrIO):
		return KindIO
	default:
		return KindUnknown
	}
}

func patternError(err error) error {
	return errors.Mark(errors.Wrap(err, "compiling timestamp pattern"), ErrPattern)
}

func readError(err error) error {
	return errors.Mark(errors.Wrap(err, "reading input"), ErrIO)
}

func writeError(err error) error {
	return errors.Mark(errors.Wrap(err, "writing output"), ErrIO)
}
