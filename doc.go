// Package lustream parses streams of lexical units.
//
// A stream interleaves lexical units, chunks, format markup and whitespace:
//
//	^ab/xy<n>$ ^cd<v>+ef<adv>$[<b>]N1<SN>{^i<prn>$ ^j$}
//
// The units are:
//
//   - "^" analysis { "/" analysis } "$" is a LexicalUnit holding ambiguous analyses.
//   - Analyses made of "+" joined components form a JoinedLexicalUnit.
//   - head "{" units "}" is a Chunk. Its children may not be chunks.
//   - "[" text "]" is opaque Format markup.
//   - A run of blanks, or a single newline, is a Space. "\r\n" counts as a single
//     newline, but a lone "\r" is not whitespace and ends the stream.
//
// An analysis is an optional flag ("*" unanalyzed, "@" untranslated, "#" unable to
// generate), lemma text and zero or more "<tag>" tokens. The lemma may only be
// omitted after a flag, as in "^*<det>$". Any of the characters ^$/<>{}\[]*#@
// must be escaped with a backslash to appear in lemma text.
//
// See Grammar for the full EBNF.
package lustream
