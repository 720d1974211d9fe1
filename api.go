package lustream

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"
)

// A Parser for lexical unit streams.
//
// A Parser is immutable once built and may be shared between goroutines.
type Parser struct {
	trace         io.Writer
	allowTrailing bool
}

// New builds a Parser.
func New(options ...Option) (*Parser, error) {
	p := &Parser{allowTrailing: true}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNew calls New and panics on error.
func MustNew(options ...Option) *Parser {
	p, err := New(options...)
	if err != nil {
		panic(err)
	}
	return p
}

// Stream is the result of a parse.
type Stream struct {
	Units []Unit
	// Remainder is the input following the last unit that matched, if any.
	Remainder string
	// RemainderPos is the position of Remainder in the input.
	RemainderPos lexer.Position
}

// Parse from r.
//
// If filename is empty, the name of r is used if it has one.
func (p *Parser) Parse(filename string, r io.Reader) (*Stream, error) {
	if filename == "" {
		filename = lexer.NameOfReader(r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.ParseString(filename, string(data))
}

// ParseBytes parses b.
func (p *Parser) ParseBytes(filename string, b []byte) (*Stream, error) {
	return p.ParseString(filename, string(b))
}

// ParseString parses input.
//
// Parsing stops at the end of the input, or at the first position where no
// unit matches. In the latter case the unparsed input is returned in
// Stream.Remainder, unless nothing matched at all in which case a NoMatch
// error is returned.
func (p *Parser) ParseString(filename string, input string) (*Stream, error) {
	ctx := newParseContext(filename, input, p.trace)
	units, err := ctx.stream()
	if err != nil {
		return nil, err
	}
	out := &Stream{Units: units, Remainder: ctx.Rest(), RemainderPos: ctx.Pos()}
	if out.Remainder != "" && (len(units) == 0 || !p.allowTrailing) {
		return nil, errorf(NoMatch, out.RemainderPos, "unexpected input %q", sample(out.Remainder))
	}
	return out, nil
}

var defaultParser = MustNew()

// ParseString parses input with the default Parser.
func ParseString(input string) (*Stream, error) {
	return defaultParser.ParseString("", input)
}
