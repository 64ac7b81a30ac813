package syntax

import (
	"regexp"

	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes annotated module source.
//
// Rules are tried in order and the first match wins, so multi-character
// punctuation precedes single characters and character literals precede
// lifetimes. `<<` and `>>` are deliberately not single tokens so that nested
// generic arguments close correctly.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*(?s:.*?)\*/`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "String", Pattern: `b?"(?:\\.|[^"\\])*"`},
	{Name: "Char", Pattern: `b?'(?:\\u\{[0-9a-fA-F]+\}|\\.|[^'\\])'`},
	{Name: "Lifetime", Pattern: `'[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Float", Pattern: `[0-9][0-9_]*\.[0-9][0-9_]*(?:[eE][+-]?[0-9_]+)?(?:f32|f64)?`},
	{Name: "Int", Pattern: `(?:0x[0-9a-fA-F_]+|0o[0-7_]+|0b[01_]+|[0-9][0-9_]*)(?:[iu](?:8|16|32|64|128|size))?`},
	{Name: "Ident", Pattern: `r#[a-zA-Z_][a-zA-Z0-9_]*|[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `::|->|=>|==|!=|<=|>=|&&|\|\||\+=|-=|\*=|/=|%=|\^=|&=|\|=|\.\.\.|\.\.=|\.\.|[-+*/%^!&|=<>@.,;:#$?~()\[\]{}]`},
})

var intSuffix = regexp.MustCompile(`[iu](?:8|16|32|64|128|size)$`)

// IntSuffix returns the type suffix of an integer literal, eg. "u8" for "10u8".
func IntSuffix(lit string) string {
	// Hex digits never contain 'i' or 'u', so the suffix is unambiguous.
	return intSuffix.FindString(lit)
}
