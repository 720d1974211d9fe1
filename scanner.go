package lustream

import (
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

const eof rune = -1

// A rewindable rune cursor over the whole input.
//
// Attempts save Pos() and Rewind() to it if they do not match.
type scanner struct {
	input string
	pos   lexer.Position
}

func newScanner(filename, input string) *scanner {
	return &scanner{
		input: input,
		pos:   lexer.Position{Filename: filename, Line: 1, Column: 1},
	}
}

func (s *scanner) Pos() lexer.Position { return s.pos }

// Rewind to a position previously returned by Pos().
func (s *scanner) Rewind(pos lexer.Position) { s.pos = pos }

func (s *scanner) EOF() bool { return s.pos.Offset >= len(s.input) }

// Rest of the input from the cursor.
func (s *scanner) Rest() string { return s.input[s.pos.Offset:] }

// Since returns the input between pos and the cursor.
func (s *scanner) Since(pos lexer.Position) string { return s.input[pos.Offset:s.pos.Offset] }

func (s *scanner) Peek() rune {
	if s.EOF() {
		return eof
	}
	rn, _ := utf8.DecodeRuneInString(s.input[s.pos.Offset:])
	return rn
}

func (s *scanner) Next() rune {
	if s.EOF() {
		return eof
	}
	rn, size := utf8.DecodeRuneInString(s.input[s.pos.Offset:])
	s.pos.Offset += size
	if rn == '\n' {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}
	return rn
}

// Accept consumes the next rune if it is r.
func (s *scanner) Accept(r rune) bool {
	if s.Peek() != r {
		return false
	}
	s.Next()
	return true
}
