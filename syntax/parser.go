// Package syntax tokenizes and parses annotated module source into typed
// syntax nodes.
//
// The grammar covers the declarations that the front end inspects
// (attributes, functions and their signatures, structs, foreign blocks, use
// declarations, statics and types). Expressions and statements other than
// statics are kept as token trees: they are carried through verbatim and never
// interpreted.
package syntax

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// TokenStream is a free standing sequence of token trees, eg. the content of
// an attribute argument list.
type TokenStream struct {
	Pos lexer.Position

	Trees []*TokenTree `@@*`
}

var (
	parserOptions = []participle.Option{
		participle.Lexer(Lexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(1024),
	}

	moduleParser = participle.MustBuild[Module](parserOptions...)
	streamParser = participle.MustBuild[TokenStream](parserOptions...)
)

// ParseModule parses an annotated module declaration.
func ParseModule(filename, src string, options ...participle.ParseOption) (*Module, error) {
	return moduleParser.ParseString(filename, src, options...)
}

// ParseModuleReader parses an annotated module declaration from r.
func ParseModuleReader(filename string, r io.Reader, options ...participle.ParseOption) (*Module, error) {
	return moduleParser.Parse(filename, r, options...)
}

// ParseModuleTrace parses an annotated module declaration, writing a trace
// of the grammar productions tried to w.
func ParseModuleTrace(filename, src string, w io.Writer) (*Module, error) {
	return moduleParser.ParseString(filename, src, participle.Trace(w))
}

// ParseTokens parses src into token trees.
func ParseTokens(filename, src string) ([]*TokenTree, error) {
	stream, err := streamParser.ParseString(filename, src)
	if err != nil {
		return nil, err
	}
	return stream.Trees, nil
}

// Tokens returns the raw lexer tokens of src, without whitespace and comments.
func Tokens(filename, src string) ([]lexer.Token, error) {
	lex, err := Lexer.Lex(filename, strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}
	symbols := Lexer.Symbols()
	elide := map[lexer.TokenType]bool{
		symbols["Comment"]:    true,
		symbols["Whitespace"]: true,
	}
	out := make([]lexer.Token, 0, len(tokens))
	for _, token := range tokens {
		if token.EOF() || elide[token.Type] {
			continue
		}
		out = append(out, token)
	}
	return out, nil
}

// TokenName returns the lexer rule name of a token type.
func TokenName(tt lexer.TokenType) string {
	for name, t := range Lexer.Symbols() {
		if t == tt {
			return name
		}
	}
	return "?"
}

// Grammar returns the EBNF of the module grammar.
func Grammar() string {
	return moduleParser.String()
}
