package rtsyntax

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/irqkit/rtsyntax/syntax"
)

// stream is a cursor over the token trees of an attribute argument list.
type stream struct {
	trees []*syntax.TokenTree
	i     int
	// end is reported for errors at the end of the stream.
	end lexer.Position
}

func newStream(trees []*syntax.TokenTree, end lexer.Position) *stream {
	return &stream{trees: trees, end: end}
}

func (s *stream) empty() bool { return s.i >= len(s.trees) }

// pos returns the position of the next tree, or the end of the stream.
func (s *stream) pos() lexer.Position {
	if s.empty() {
		return s.end
	}
	return s.trees[s.i].Pos
}

// peek returns the next term, or nil at the end of the stream or at a `;`.
func (s *stream) peek() *syntax.Term {
	if s.empty() {
		return nil
	}
	return s.trees[s.i].Term
}

func (s *stream) peekPunct(punct string) bool {
	if s.empty() {
		return false
	}
	if punct == ";" {
		return s.trees[s.i].Semi
	}
	term := s.peek()
	return term != nil && term.Punct == punct
}

func (s *stream) peekIdent() bool {
	term := s.peek()
	return term != nil && term.Ident != ""
}

func (s *stream) advance() { s.i++ }

func (s *stream) unexpected(expected string) error {
	if s.empty() {
		return errorf(KindSyntax, s.end, "unexpected end of input (expected %s)", expected)
	}
	return errorf(KindSyntax, s.pos(), "unexpected token %q (expected %s)", s.trees[s.i].String(), expected)
}

func (s *stream) ident() (*syntax.Ident, error) {
	if !s.peekIdent() {
		return nil, s.unexpected("identifier")
	}
	term := s.peek()
	s.advance()
	return &syntax.Ident{Pos: term.Pos, Name: term.Ident}, nil
}

func (s *stream) punct(punct string) error {
	if !s.peekPunct(punct) {
		return s.unexpected(fmt.Sprintf("%q", punct))
	}
	s.advance()
	return nil
}

func (s *stream) lit() (*syntax.Lit, error) {
	term := s.peek()
	if term == nil || term.Lit == nil {
		return nil, s.unexpected("literal")
	}
	s.advance()
	return term.Lit, nil
}

// group consumes a group opened by open and returns a stream over its
// content.
func (s *stream) group(open string) (*syntax.Group, *stream, error) {
	term := s.peek()
	if term == nil || term.Group == nil || term.Group.Open() != open {
		return nil, nil, s.unexpected(fmt.Sprintf("%q", open))
	}
	s.advance()
	return term.Group, newStream(term.Group.Trees(), term.Group.EndPos), nil
}

// path consumes a module style path such as `::stm32::pac`.
func (s *stream) path() (*syntax.Path, error) {
	path := &syntax.Path{Pos: s.pos()}
	if s.peekPunct("::") {
		path.Leading = true
		s.advance()
	}
	for {
		ident, err := s.ident()
		if err != nil {
			return nil, err
		}
		path.Segments = append(path.Segments, &syntax.PathSegment{Pos: ident.Pos, Ident: ident})
		if !s.peekPunct("::") {
			return path, nil
		}
		s.advance()
	}
}

// until consumes terms up to, but excluding, the next `,` or `;`.
func (s *stream) until() []*syntax.Term {
	var terms []*syntax.Term
	for !s.empty() && !s.peekPunct(",") && !s.peekPunct(";") {
		terms = append(terms, s.peek())
		s.advance()
	}
	return terms
}

// separator consumes the `,` following a list element. A trailing comma is
// optional.
func (s *stream) separator() error {
	if s.empty() {
		return nil
	}
	return s.punct(",")
}

// finish fails if anything is left in the stream.
func (s *stream) finish() error {
	if s.empty() {
		return nil
	}
	return s.unexpected("end of input")
}

// intDigits returns the base 10 digits of an integer literal without its type
// suffix.
func intDigits(lit string) (string, bool) {
	lit = strings.TrimSuffix(lit, syntax.IntSuffix(lit))
	lit = strings.ReplaceAll(lit, "_", "")
	base := 10
	switch {
	case strings.HasPrefix(lit, "0x"):
		base, lit = 16, lit[2:]
	case strings.HasPrefix(lit, "0o"):
		base, lit = 8, lit[2:]
	case strings.HasPrefix(lit, "0b"):
		base, lit = 2, lit[2:]
	}
	n, ok := new(big.Int).SetString(lit, base)
	if !ok {
		return "", false
	}
	return n.String(), true
}
