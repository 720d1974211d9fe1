package lustream

import "io"

// Trace the parse to "w".
//
// One line is written for each alternative attempted, with its position, name
// and a sample of the upcoming input. Chunk children are indented.
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}
