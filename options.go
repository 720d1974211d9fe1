package lustream

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// AllowTrailing controls whether unparseable input following at least one
// unit is returned in Stream.Remainder (the default) or is a NoMatch error.
func AllowTrailing(ok bool) Option {
	return func(p *Parser) error {
		p.allowTrailing = ok
		return nil
	}
}
