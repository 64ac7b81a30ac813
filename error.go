package rtsyntax

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Kind classifies an Error.
type Kind int

const (
	// KindSyntax is a tokenizer or grammar failure, or a malformed attribute
	// argument list.
	KindSyntax Kind = iota
	// KindRedefinition is a duplicate definition of a name, binding or key.
	KindRedefinition
	// KindShapeMismatch is a declaration whose shape is not permitted, eg. a
	// task with the wrong signature.
	KindShapeMismatch
	// KindMisplacedItem is an item that can't live inside the annotated
	// module, or an attribute on an item that can't host it.
	KindMisplacedItem
	// KindReservedName is a task named `init` or `idle`.
	KindReservedName
	// KindRange is a missing or out of range core number, or a multi-core
	// only attribute on a single core target.
	KindRange
	// KindValue is a literal of an unsupported kind.
	KindValue
	// KindInternal is an unsupported combination of attributes.
	KindInternal
)

var kindNames = map[Kind]string{
	KindSyntax:        "syntax",
	KindRedefinition:  "redefinition",
	KindShapeMismatch: "shape mismatch",
	KindMisplacedItem: "misplaced item",
	KindReservedName:  "reserved name",
	KindRange:         "range",
	KindValue:         "value",
	KindInternal:      "internal",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by all parsing functions of this package.
//
// It implements participle.Error, so positions and unadorned messages are
// available in the same way as for grammar errors.
type Error struct {
	Kind Kind
	Pos  lexer.Position
	Msg  string
}

var _ participle.Error = (*Error)(nil)

func (e *Error) Error() string            { return participle.FormatError(e) }
func (e *Error) Message() string          { return e.Msg }
func (e *Error) Position() lexer.Position { return e.Pos }

func errorf(kind Kind, pos lexer.Position, format string, args ...any) error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var perr *Error
	return errors.As(err, &perr) && perr.Kind == kind
}

// syntaxError converts an error from the syntax package into a KindSyntax
// *Error, keeping its position and message.
func syntaxError(err error) error {
	if err == nil {
		return nil
	}
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr
	}
	var perr participle.Error
	if errors.As(err, &perr) {
		return &Error{Kind: KindSyntax, Pos: perr.Position(), Msg: perr.Message()}
	}
	return &Error{Kind: KindSyntax, Msg: err.Error()}
}
