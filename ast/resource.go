package ast

import (
	"strings"

	"github.com/irqkit/rtsyntax/syntax"
)

// LateResource is a resource initialized at runtime by init.
type LateResource struct {
	Name *syntax.Ident

	// Cfgs are `#[cfg(..)]` attributes such as `#[cfg(debug_assertions)]`.
	Cfgs []*syntax.Attribute

	// Attrs will be applied to the resource.
	Attrs []*syntax.Attribute

	Type *syntax.Type

	Properties ResourceProperties
}

// Resource is a resource initialized at compile time.
type Resource struct {
	LateResource

	// Expr is the initial value.
	Expr *syntax.Expr
}

// ResourceProperties are the `#[task_local]`, `#[lock_free]` and `#[shared]`
// markers of a resource.
type ResourceProperties struct {
	// TaskLocal resources are accessible from exactly one task.
	TaskLocal bool

	// LockFree resources are declared exclusive only.
	LockFree bool

	// Shared resources are accessed from more than one core.
	Shared bool
}

// Access is how a context accesses a resource.
type Access int

const (
	// Exclusive is `[x]`: the context may mutate the resource.
	Exclusive Access = iota
	// Shared is `[&x]`: the context may only read the resource.
	Shared
)

func (a Access) IsExclusive() bool { return a == Exclusive }
func (a Access) IsShared() bool    { return a == Shared }

func (a Access) String() string {
	if a == Shared {
		return "Shared"
	}
	return "Exclusive"
}

// MarshalText implements encoding.TextMarshaler.
func (a Access) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Resources is a resource access list keyed by resource name.
type Resources struct {
	Map[Access]
}

// String renders the list in attribute syntax, eg. `[a, &b]`.
func (r *Resources) String() string {
	parts := make([]string, 0, r.Len())
	for name, access := range r.All() {
		if access.IsShared() {
			name = "&" + name
		}
		parts = append(parts, name)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
