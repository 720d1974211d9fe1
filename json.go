package lustream

import "encoding/json"

// Units are encoded as JSON objects with a "type" discriminator. Empty lists
// are encoded as [] rather than null.

func (s *SubUnit) MarshalJSON() ([]byte, error) {
	type plain SubUnit
	out := plain(*s)
	out.Tags = nonNil(out.Tags)
	return json.Marshal(out)
}

func (l *LexicalUnit) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string     `json:"type"`
		Analyses []*SubUnit `json:"analyses"`
	}{"lexical_unit", nonNil(l.Analyses)})
}

func (j *JoinedLexicalUnit) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string       `json:"type"`
		Analyses [][]*SubUnit `json:"analyses"`
	}{"joined_lexical_unit", j.Analyses})
}

func (c *Chunk) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string   `json:"type"`
		Head     *SubUnit `json:"head"`
		Children []Unit   `json:"children"`
	}{"chunk", c.Head, nonNil(c.Children)})
}

func (f *Format) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{"format", f.Text})
}

func (s *Space) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{"space", s.Text})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
