package lustream

import (
	"fmt"
	"io"
	"strings"
)

// Context for a single parse.
type parseContext struct {
	*scanner
	trace io.Writer
	depth int
}

func newParseContext(filename, input string, trace io.Writer) *parseContext {
	return &parseContext{scanner: newScanner(filename, input), trace: trace}
}

// stream parses units until the input is exhausted or nothing matches.
func (p *parseContext) stream() ([]Unit, error) {
	var units []Unit
	for !p.EOF() {
		unit, err := p.choose(streamAlternatives)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			break
		}
		units = append(units, unit)
	}
	return units, nil
}

// choose returns the first alternative to match.
func (p *parseContext) choose(alternatives []alternative) (Unit, error) {
	for _, alt := range alternatives {
		start := p.Pos()
		if p.trace != nil {
			fmt.Fprintf(p.trace, "%s%s %s %q\n", strings.Repeat(" ", p.depth*2), start, alt.name, sample(p.Rest()))
		}
		unit, err := alt.parse(p)
		if err != nil {
			return nil, err
		}
		if unit == nil || p.Pos().Offset == start.Offset {
			p.Rewind(start)
			continue
		}
		return unit, nil
	}
	return nil, nil
}
