package lustream

import "strings"

// Characters that terminate lemma text and may be escaped with a backslash.
const reserved = `^$/<>{}\[]*#@`

func isReserved(r rune) bool { return r != eof && strings.ContainsRune(reserved, r) }

// An alternative attempts to parse one unit at the cursor.
//
// It returns (nil, nil) without moving the cursor if it does not match, and
// an error only once it has committed to a unit.
type alternative struct {
	name  string
	parse func(p *parseContext) (Unit, error)
}

// Top level alternatives, in priority order.
//
// The joined shape is produced by the same attempt as the plain shape, as the
// two only diverge once a "+" is seen inside the delimiters.
var streamAlternatives = []alternative{
	{"Space", (*parseContext).space},
	{"Format", (*parseContext).format},
	{unitAlternative, (*parseContext).lexicalUnit},
	{"Chunk", (*parseContext).chunk},
}

// Alternatives allowed inside a chunk.
var chunkAlternatives = []alternative{
	{unitAlternative, (*parseContext).lexicalUnit},
	{"Format", (*parseContext).format},
	{"Space", (*parseContext).space},
}

const unitAlternative = "LexicalUnit|JoinedLexicalUnit"

func (p *parseContext) space() (Unit, error) {
	start := p.Pos()
	switch p.Peek() {
	case ' ', '\t':
		for p.Peek() == ' ' || p.Peek() == '\t' {
			p.Next()
		}
	case '\n':
		p.Next()
	case '\r':
		p.Next()
		if !p.Accept('\n') {
			p.Rewind(start)
			return nil, nil
		}
	default:
		return nil, nil
	}
	return &Space{Text: p.Since(start)}, nil
}

func (p *parseContext) format() (Unit, error) {
	if !p.Accept('[') {
		return nil, nil
	}
	start := p.Pos()
	for r := p.Peek(); r != eof && r != '[' && r != ']'; r = p.Peek() {
		p.Next()
	}
	text := p.Since(start)
	if !p.Accept(']') {
		return nil, unterminated(p.Pos(), '[', ']')
	}
	return &Format{Text: text}, nil
}

// lexicalUnit parses "^" body "$" where body is "/" separated slots of "+"
// joined SubUnits. A body without any "+" is a plain LexicalUnit.
func (p *parseContext) lexicalUnit() (Unit, error) {
	if !p.Accept('^') {
		return nil, nil
	}
	var slots [][]*SubUnit
	joined := false
	if p.Peek() != '$' {
		for {
			slot, err := p.slot()
			if err != nil {
				return nil, err
			}
			if slot == nil {
				return nil, unterminated(p.Pos(), '^', '$')
			}
			joined = joined || len(slot) > 1
			slots = append(slots, slot)
			if !p.Accept('/') {
				break
			}
		}
	}
	if !p.Accept('$') {
		return nil, unterminated(p.Pos(), '^', '$')
	}
	if joined {
		return &JoinedLexicalUnit{Analyses: slots}, nil
	}
	lu := &LexicalUnit{}
	for _, slot := range slots {
		lu.Analyses = append(lu.Analyses, slot[0])
	}
	return lu, nil
}

// slot parses SubUnit { "+" SubUnit }. A "+" not followed by a SubUnit is
// left unconsumed. It returns nil if there is no SubUnit at the cursor.
func (p *parseContext) slot() ([]*SubUnit, error) {
	var out []*SubUnit
	for {
		before := p.Pos()
		if len(out) > 0 && !p.Accept('+') {
			return out, nil
		}
		su, err := p.subUnit()
		if err != nil {
			return nil, err
		}
		if su == nil {
			p.Rewind(before)
			return out, nil
		}
		out = append(out, su)
	}
}

// chunk parses a head SubUnit followed by "{" children "}".
//
// Nothing is committed until the "{", so a head that fails to parse is not a match.
func (p *parseContext) chunk() (Unit, error) {
	start := p.Pos()
	head, err := p.subUnit()
	if err != nil || head == nil || !p.Accept('{') {
		p.Rewind(start)
		return nil, nil
	}
	chunk := &Chunk{Head: head}
	p.depth++
	for {
		child, err := p.choose(chunkAlternatives)
		if err != nil {
			return nil, err
		}
		if child == nil {
			break
		}
		chunk.Children = append(chunk.Children, child)
	}
	p.depth--
	if !p.Accept('}') {
		return nil, unterminated(p.Pos(), '{', '}')
	}
	return chunk, nil
}

// subUnit parses flag? lemma? tag*, where at least one of the flag or the
// lemma must be present. It returns nil without moving the cursor otherwise.
func (p *parseContext) subUnit() (*SubUnit, error) {
	su := &SubUnit{}
	flag, flagged := FlagFromRune(p.Peek())
	if flagged {
		p.Next()
		su.Flag = flag
	}
	lemma, err := p.lemma()
	if err != nil {
		return nil, err
	}
	if !flagged && lemma == "" {
		return nil, nil
	}
	su.LingForm = lemma
	su.Tags = p.tags()
	return su, nil
}

// lemma consumes the longest run of non-reserved or escaped characters,
// returning the unescaped text. An empty result means nothing was consumed.
func (p *parseContext) lemma() (string, error) {
	out := strings.Builder{}
	for r := p.Peek(); r != eof; r = p.Peek() {
		if r == '\\' {
			pos := p.Pos()
			p.Next()
			escaped := p.Peek()
			if escaped == eof {
				return "", errorf(InvalidEscape, pos, "escape at end of input")
			}
			if !isReserved(escaped) {
				return "", errorf(InvalidEscape, pos, "invalid escape %q", `\`+string(escaped))
			}
			out.WriteRune(p.Next())
			continue
		}
		if isReserved(r) {
			break
		}
		out.WriteRune(p.Next())
	}
	return out.String(), nil
}

// tags consumes zero or more "<...>" tokens. An incomplete tag is left unconsumed.
func (p *parseContext) tags() []string {
	var tags []string
	for p.Peek() == '<' {
		open := p.Pos()
		p.Next()
		start := p.Pos()
		for r := p.Peek(); r != eof && r != '<' && r != '>'; r = p.Peek() {
			p.Next()
		}
		text := p.Since(start)
		if text == "" || !p.Accept('>') {
			p.Rewind(open)
			break
		}
		tags = append(tags, text)
	}
	return tags
}
