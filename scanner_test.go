package lustream

import (
	"testing"

	require "github.com/alecthomas/assert/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

func TestScannerPosition(t *testing.T) {
	s := newScanner("f", "aé\nb")
	require.Equal(t, 'a', s.Next())
	require.Equal(t, 'é', s.Peek())
	mark := s.Pos()
	require.Equal(t, 'é', s.Next())
	require.Equal(t, lexer.Position{Filename: "f", Offset: 3, Line: 1, Column: 3}, s.Pos())
	require.True(t, s.Accept('\n'))
	require.Equal(t, lexer.Position{Filename: "f", Offset: 4, Line: 2, Column: 1}, s.Pos())
	require.Equal(t, "é\n", s.Since(mark))
	require.False(t, s.Accept('x'))
	require.Equal(t, "b", s.Rest())
	s.Next()
	require.True(t, s.EOF())
	require.Equal(t, eof, s.Peek())
	require.Equal(t, eof, s.Next())
	s.Rewind(mark)
	require.Equal(t, "é\nb", s.Rest())
}

func TestSubUnitFallsBackToFlagAndTags(t *testing.T) {
	p := newParseContext("", "#<n><pl>$", nil)
	su, err := p.subUnit()
	require.NoError(t, err)
	require.Equal(t, &SubUnit{Flag: FlagUnableToGenerate, Tags: []string{"n", "pl"}}, su)
	require.Equal(t, "$", p.Rest())
}

func TestSubUnitRequiresFlagOrLemma(t *testing.T) {
	p := newParseContext("", "<n><pl>$", nil)
	su, err := p.subUnit()
	require.NoError(t, err)
	require.Zero(t, su)
	require.Equal(t, "<n><pl>$", p.Rest())
}

func TestSlotLeavesDanglingJoin(t *testing.T) {
	p := newParseContext("", "a<n>+$", nil)
	slot, err := p.slot()
	require.NoError(t, err)
	require.Equal(t, []*SubUnit{{LingForm: "a", Tags: []string{"n"}}}, slot)
	require.Equal(t, "+$", p.Rest())
}

func TestZeroWidthAlternativeDoesNotMatch(t *testing.T) {
	p := newParseContext("", "x", nil)
	unit, err := p.choose([]alternative{{"Empty", func(p *parseContext) (Unit, error) {
		return &Space{}, nil
	}}})
	require.NoError(t, err)
	require.Zero(t, unit)
	require.Equal(t, "x", p.Rest())
}
