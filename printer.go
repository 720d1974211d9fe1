package lustream

import "strings"

// Render units in their canonical textual form.
//
// Parsing the result yields the same units.
func Render(units []Unit) string {
	w := &strings.Builder{}
	for _, unit := range units {
		writeUnit(w, unit)
	}
	return w.String()
}

// String renders the units followed by the unparsed remainder.
func (s *Stream) String() string {
	return Render(s.Units) + s.Remainder
}

func (s *SubUnit) String() string {
	w := &strings.Builder{}
	writeSubUnit(w, s)
	return w.String()
}

func (l *LexicalUnit) String() string       { return Render([]Unit{l}) }
func (j *JoinedLexicalUnit) String() string { return Render([]Unit{j}) }
func (c *Chunk) String() string             { return Render([]Unit{c}) }
func (f *Format) String() string            { return "[" + f.Text + "]" }
func (s *Space) String() string             { return s.Text }

func writeUnit(w *strings.Builder, unit Unit) {
	switch unit := unit.(type) {
	case *LexicalUnit:
		w.WriteByte('^')
		for i, su := range unit.Analyses {
			if i > 0 {
				w.WriteByte('/')
			}
			writeSubUnit(w, su)
		}
		w.WriteByte('$')

	case *JoinedLexicalUnit:
		w.WriteByte('^')
		for i, slot := range unit.Analyses {
			if i > 0 {
				w.WriteByte('/')
			}
			for j, su := range slot {
				if j > 0 {
					w.WriteByte('+')
				}
				writeSubUnit(w, su)
			}
		}
		w.WriteByte('$')

	case *Chunk:
		writeSubUnit(w, unit.Head)
		w.WriteByte('{')
		for _, child := range unit.Children {
			writeUnit(w, child)
		}
		w.WriteByte('}')

	default:
		w.WriteString(unit.String())
	}
}

func writeSubUnit(w *strings.Builder, su *SubUnit) {
	if su == nil {
		return
	}
	if r := su.Flag.Rune(); r != 0 {
		w.WriteRune(r)
	}
	for _, r := range su.LingForm {
		if isReserved(r) {
			w.WriteByte('\\')
		}
		w.WriteRune(r)
	}
	for _, tag := range su.Tags {
		w.WriteByte('<')
		w.WriteString(tag)
		w.WriteByte('>')
	}
}
