package lustream

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrorKind classifies a parse failure.
//
// An ErrorKind is itself an error so it can be used as an errors.Is target:
//
//	if errors.Is(err, lustream.UnterminatedUnit) { ... }
type ErrorKind int

const (
	// UnterminatedUnit is reported when an opening delimiter ("^", "{" or "[")
	// was consumed but its closer was never found.
	UnterminatedUnit ErrorKind = iota + 1
	// InvalidEscape is reported when a backslash is not followed by a reserved character.
	InvalidEscape
	// NoMatch is reported when no stream alternative matches the input.
	NoMatch
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedUnit:
		return "unterminated unit"
	case InvalidEscape:
		return "invalid escape"
	case NoMatch:
		return "no match"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) Error() string { return k.String() }

// Error is returned by the Parser for any failure.
//
// It satisfies participle.Error so it composes with other Participle based parsers.
type Error struct {
	Kind ErrorKind
	Msg  string
	Pos  lexer.Position
}

var _ participle.Error = &Error{}

func errorf(kind ErrorKind, pos lexer.Position, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Pos: pos}
}

func (e *Error) Error() string            { return participle.FormatError(e) }
func (e *Error) Message() string          { return e.Msg }
func (e *Error) Position() lexer.Position { return e.Pos }

// Is reports whether target is the ErrorKind of this error.
func (e *Error) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}

func unterminated(pos lexer.Position, opener, closer rune) *Error {
	return errorf(UnterminatedUnit, pos, "expected %q to close %q", closer, opener)
}

// sample of the input at the cursor for use in error messages.
func sample(s string) string {
	runes := []rune(s)
	if len(runes) > 16 {
		return string(runes[:16]) + "..."
	}
	return string(runes)
}
