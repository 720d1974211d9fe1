package lustream

// Grammar of the stream in the EBNF dialect of golang.org/x/exp/ebnf, starting at "Stream".
//
// Productions are always upper case. Lexical productions are always lower case.
// Alternatives are tried in the order written and the first match wins.
// LexicalUnit and JoinedLexicalUnit are tried as one alternative, which traces
// as "LexicalUnit|JoinedLexicalUnit", since they only differ after a "+".
const Grammar = `Stream = { Space | Format | LexicalUnit | JoinedLexicalUnit | Chunk } .
Space = blank { blank } | newline .
Format = "[" { formatChar } "]" .
LexicalUnit = "^" [ SubUnit { "/" SubUnit } ] "$" .
JoinedLexicalUnit = "^" [ Joined { "/" Joined } ] "$" .
Joined = SubUnit { "+" SubUnit } .
Chunk = SubUnit "{" { LexicalUnit | JoinedLexicalUnit | Format | Space } "}" .
SubUnit = ( flag [ lemma ] | lemma ) { tag } .
flag = "*" | "@" | "#" .
lemma = lemmaChar { lemmaChar } .
lemmaChar = textChar | "\\" reservedChar .
tag = "<" tagChar { tagChar } ">" .
blank = " " | "\t" .
newline = "\n" | "\r\n" .
reservedChar = "^" | "$" | "/" | "<" | ">" | "{" | "}" | "\\" | "[" | "]" | "*" | "#" | "@" .
textChar = "\x00" … "\"" | "%" … ")" | "+" … "." | "0" … ";" | "=" | "?" | "A" … "Z" | "_" … "z" | "|" | "~" … "\U0010FFFF" .
tagChar = "\x00" … ";" | "=" | "?" … "\U0010FFFF" .
formatChar = "\x00" … "Z" | "\\" | "^" … "\U0010FFFF" .`

// String returns the EBNF for the grammar.
func (p *Parser) String() string {
	return Grammar
}
