package lustream

import "fmt"

// Flag marks the status of a SubUnit.
type Flag int

const (
	FlagNone Flag = iota
	// FlagUnanalyzed is written as "*".
	FlagUnanalyzed
	// FlagUntranslated is written as "@".
	FlagUntranslated
	// FlagUnableToGenerate is written as "#". It also marks invariant forms.
	FlagUnableToGenerate
)

var flagRunes = map[rune]Flag{
	'*': FlagUnanalyzed,
	'@': FlagUntranslated,
	'#': FlagUnableToGenerate,
}

// FlagFromRune returns the Flag marked by r, if any.
func FlagFromRune(r rune) (Flag, bool) {
	flag, ok := flagRunes[r]
	return flag, ok
}

// Rune returns the marker character for the flag, or 0 for FlagNone.
func (f Flag) Rune() rune {
	switch f {
	case FlagUnanalyzed:
		return '*'
	case FlagUntranslated:
		return '@'
	case FlagUnableToGenerate:
		return '#'
	}
	return 0
}

func (f Flag) String() string {
	switch f {
	case FlagNone:
		return "none"
	case FlagUnanalyzed:
		return "unanalyzed"
	case FlagUntranslated:
		return "untranslated"
	case FlagUnableToGenerate:
		return "unable-to-generate"
	default:
		return fmt.Sprintf("Flag(%d)", int(f))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Flag) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// SubUnit is a single analysis, or a single component of a multiword analysis.
//
// LingForm is only empty when a flag was written without lemma text, eg. "^*<det>$".
// Tags are kept in written order.
type SubUnit struct {
	LingForm string   `json:"ling_form"`
	Flag     Flag     `json:"flag"`
	Tags     []string `json:"tags"`
}

// A Unit is one element of a parsed stream.
//
// It is one of *LexicalUnit, *JoinedLexicalUnit, *Chunk, *Format or *Space.
type Unit interface {
	fmt.Stringer
	unit()
}

// LexicalUnit is "^a/b/c$", a token with zero or more ambiguous analyses.
type LexicalUnit struct {
	Analyses []*SubUnit
}

// JoinedLexicalUnit is a multiword token such as "^a<n>+b<v>/c$".
//
// Each element of Analyses is one ambiguity slot, holding the "+" joined components.
type JoinedLexicalUnit struct {
	Analyses [][]*SubUnit
}

// Chunk is "head{...}", a labelled group of units.
//
// Children are never themselves chunks.
type Chunk struct {
	Head     *SubUnit
	Children []Unit
}

// Format is opaque "[...]" markup. Text excludes the brackets.
type Format struct {
	Text string
}

// Space is a run of blanks or a single newline, kept verbatim.
type Space struct {
	Text string
}

func (*LexicalUnit) unit()       {}
func (*JoinedLexicalUnit) unit() {}
func (*Chunk) unit()             {}
func (*Format) unit()            {}
func (*Space) unit()             {}
