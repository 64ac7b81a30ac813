package rtsyntax

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/irqkit/rtsyntax/syntax"
)

// appAttribute is an attribute that places an item in the model.
type appAttribute int

const (
	attrNone appAttribute = iota
	attrResources
	attrInit
	attrIdle
	attrTask
	attrDispatch
)

var appAttributes = []struct {
	name string
	kind appAttribute
}{
	{"resources", attrResources},
	{"init", attrInit},
	{"idle", attrIdle},
	{"task", attrTask},
	{"dispatch", attrDispatch},
}

func (a appAttribute) String() string {
	for _, attr := range appAttributes {
		if attr.kind == a {
			return "#[" + attr.name + "]"
		}
	}
	return "none"
}

func checkAttr(attr *syntax.Attribute) appAttribute {
	for _, known := range appAttributes {
		if attrIs(attr, known.name) {
			return known.kind
		}
	}
	return attrNone
}

// takeAppAttr removes the recognized attribute from attrs. It fails if
// more than one is present.
func takeAppAttr(attrs []*syntax.Attribute) (appAttribute, *syntax.Attribute, []*syntax.Attribute, error) {
	var (
		kind  = attrNone
		found *syntax.Attribute
		rest  = make([]*syntax.Attribute, 0, len(attrs))
	)
	for _, attr := range attrs {
		k := checkAttr(attr)
		if k == attrNone {
			rest = append(rest, attr)
			continue
		}
		if found != nil {
			return attrNone, nil, nil, errorf(KindInternal, attr.Pos, "%s can't be combined with %s on the same item", k, kind)
		}
		kind, found = k, attr
	}
	return kind, found, rest, nil
}

// extractCfgs splits `#[cfg(..)]` attributes from the others.
func extractCfgs(attrs []*syntax.Attribute) (cfgs, rest []*syntax.Attribute) {
	for _, attr := range attrs {
		if attrIs(attr, "cfg") {
			cfgs = append(cfgs, attr)
		} else {
			rest = append(rest, attr)
		}
	}
	return cfgs, rest
}

// extractCore removes the `#[core = N]` attribute from attrs. It is
// required on multi-core targets and defaults to 0 otherwise.
func extractCore(attrs []*syntax.Attribute, cores uint8, pos lexer.Position) (uint8, []*syntax.Attribute, error) {
	var (
		core  uint8
		found *syntax.Attribute
		rest  = make([]*syntax.Attribute, 0, len(attrs))
	)
	for _, attr := range attrs {
		if !attrIs(attr, "core") {
			rest = append(rest, attr)
			continue
		}
		if found != nil {
			return 0, nil, errorf(KindRedefinition, attr.Pos, "`#[core]` appears more than once")
		}
		n, err := parseCore(attr, cores)
		if err != nil {
			return 0, nil, err
		}
		core, found = n, attr
	}
	if found == nil && cores > 1 {
		return 0, nil, errorf(KindRange, pos, "core needs to be specified using the `#[core = 0]` attribute")
	}
	return core, rest, nil
}

// parseCore decodes the `= N` of a `#[core = N]` attribute.
func parseCore(attr *syntax.Attribute, cores uint8) (uint8, error) {
	s := newStream(attr.Tokens, attr.EndPos)
	if err := s.punct("="); err != nil {
		return 0, err
	}
	term := s.peek()
	if term == nil || term.Lit == nil || term.Lit.Int == "" {
		return 0, s.unexpected("integer literal")
	}
	s.advance()
	if err := s.finish(); err != nil {
		return 0, err
	}
	lit := term.Lit
	if syntax.IntSuffix(lit.Int) != "" {
		return 0, errorf(KindValue, lit.Pos, "this integer must be unsuffixed")
	}
	if digits, ok := intDigits(lit.Int); ok {
		if n, err := strconv.ParseUint(digits, 10, 8); err == nil && n < uint64(cores) {
			return uint8(n), nil
		}
	}
	return 0, errorf(KindRange, lit.Pos, "core number must be in the range 0..%d", cores)
}

// extractShared removes a `#[shared]` attribute from attrs.
func extractShared(attrs []*syntax.Attribute, cores uint8) (bool, []*syntax.Attribute, error) {
	if err := checkShared(attrs, cores); err != nil {
		return false, nil, err
	}
	return extractFlag(attrs, "shared")
}

// checkShared rejects `#[shared]` on single-core targets. Functions keep the
// attribute with their other attributes on multi-core targets.
func checkShared(attrs []*syntax.Attribute, cores uint8) error {
	for _, attr := range attrs {
		if attrIs(attr, "shared") && cores == 1 {
			return errorf(KindRange, attr.Pos, "`#[shared]` can only be used in multi-core mode")
		}
	}
	return nil
}

// extractFlag removes every `#[name]` attribute from attrs and reports
// whether there was one. Flags take no arguments.
func extractFlag(attrs []*syntax.Attribute, name string) (bool, []*syntax.Attribute, error) {
	found := false
	rest := make([]*syntax.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		if !attrIs(attr, name) {
			rest = append(rest, attr)
			continue
		}
		if len(attr.Tokens) != 0 {
			return false, nil, errorf(KindShapeMismatch, attr.Tokens[0].Pos, "`#[%s]` takes no arguments", name)
		}
		found = true
	}
	return found, rest, nil
}
