package rtsyntax

import (
	"strconv"

	"github.com/irqkit/rtsyntax/ast"
	"github.com/irqkit/rtsyntax/syntax"
)

// attrArgs returns a stream over the parenthesized arguments of attr. An
// attribute without arguments yields an empty stream.
func attrArgs(attr *syntax.Attribute) (*stream, error) {
	s := newStream(attr.Tokens, attr.EndPos)
	if s.empty() {
		return s, nil
	}
	_, content, err := s.group("(")
	if err != nil {
		return nil, err
	}
	if err := s.finish(); err != nil {
		return nil, err
	}
	return content, nil
}

// keyValues parses a comma separated `key = value` list, calling value for
// each key with the stream positioned on the value.
func keyValues(s *stream, value func(key *syntax.Ident) error) error {
	seen := map[string]bool{}
	for !s.empty() {
		key, err := s.ident()
		if err != nil {
			return err
		}
		if err := s.punct("="); err != nil {
			return err
		}
		if seen[key.Name] {
			return errorf(KindRedefinition, key.Pos, "argument appears more than once")
		}
		seen[key.Name] = true
		if err := value(key); err != nil {
			return err
		}
		if err := s.separator(); err != nil {
			return err
		}
	}
	return nil
}

func parseAppArgs(s *stream) (*ast.AppArgs, error) {
	args := &ast.AppArgs{}
	err := keyValues(s, func(key *syntax.Ident) error {
		value, err := parseCustomArg(s, key)
		if err != nil {
			return err
		}
		switch key.Name {
		case "device", "monotonic":
			path, ok := value.(ast.CustomPath)
			if !ok {
				return errorf(KindValue, key.Pos, "`%s` must be a path", key.Name)
			}
			if key.Name == "device" {
				args.Device = path.Path
			} else {
				args.Monotonic = path.Path
			}
		case "peripherals":
			b, ok := value.(ast.CustomBool)
			if !ok {
				return errorf(KindValue, key.Pos, "`peripherals` must be a boolean")
			}
			args.Peripherals = bool(b)
		}
		args.Custom.Insert(key.Name, value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return args, nil
}

// parseCustomArg parses a path, boolean or unsuffixed integer value.
func parseCustomArg(s *stream, key *syntax.Ident) (ast.CustomArg, error) {
	if s.peekIdent() || s.peekPunct("::") {
		path, err := s.path()
		if err != nil {
			return nil, err
		}
		return ast.CustomPath{Path: path}, nil
	}
	term := s.peek()
	if term == nil || term.Lit == nil {
		return nil, errorf(KindValue, key.Pos, "argument has unexpected value")
	}
	s.advance()
	lit := term.Lit
	switch {
	case lit.Bool != "":
		return ast.CustomBool(lit.Bool == "true"), nil
	case lit.Int != "":
		if syntax.IntSuffix(lit.Int) != "" {
			return nil, errorf(KindValue, key.Pos, "integer must be unsuffixed")
		}
		digits, ok := intDigits(lit.Int)
		if !ok {
			return nil, errorf(KindValue, lit.Pos, "invalid integer literal %q", lit.Int)
		}
		return ast.CustomUInt(digits), nil
	default:
		return nil, errorf(KindValue, key.Pos, "argument has unexpected value")
	}
}

func parseInitArgs(attr *syntax.Attribute) (ast.InitArgs, error) {
	var args ast.InitArgs
	s, err := attrArgs(attr)
	if err != nil {
		return args, err
	}
	err = keyValues(s, func(key *syntax.Ident) (err error) {
		switch key.Name {
		case "late":
			args.Late, err = parseIdents(s)
		case "resources":
			args.Resources, err = parseResources(s)
		default:
			err = errorf(KindShapeMismatch, key.Pos, "unexpected argument")
		}
		return err
	})
	return args, err
}

func parseIdleArgs(attr *syntax.Attribute) (ast.IdleArgs, error) {
	var args ast.IdleArgs
	s, err := attrArgs(attr)
	if err != nil {
		return args, err
	}
	err = keyValues(s, func(key *syntax.Ident) (err error) {
		switch key.Name {
		case "resources":
			args.Resources, err = parseResources(s)
		default:
			err = errorf(KindShapeMismatch, key.Pos, "unexpected argument")
		}
		return err
	})
	return args, err
}

// parseTaskArgs parses the arguments of a `#[task]` attribute. Exactly one of
// the returned argument records is non-nil: the hardware task arguments if
// `binds` is present, the software task arguments otherwise.
func parseTaskArgs(attr *syntax.Attribute) (*ast.HardwareTaskArgs, *ast.SoftwareTaskArgs, error) {
	s, err := attrArgs(attr)
	if err != nil {
		return nil, nil, err
	}
	var (
		binds       *syntax.Ident
		capacityKey *syntax.Ident
		resources   ast.Resources
		sw          = ast.DefaultSoftwareTaskArgs()
	)
	err = keyValues(s, func(key *syntax.Ident) (err error) {
		switch key.Name {
		case "binds":
			binds, err = s.ident()
		case "priority":
			sw.Priority, err = parseU8(s)
		case "capacity":
			capacityKey = key
			sw.Capacity, err = parseU8(s)
		case "resources":
			resources, err = parseResources(s)
		default:
			err = errorf(KindShapeMismatch, key.Pos, "unexpected argument")
		}
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	if binds != nil {
		if capacityKey != nil {
			return nil, nil, errorf(KindShapeMismatch, capacityKey.Pos, "hardware tasks can't use the `capacity` argument")
		}
		return &ast.HardwareTaskArgs{Binds: binds, Priority: sw.Priority, Resources: resources}, nil, nil
	}
	sw.Resources = resources
	return nil, &sw, nil
}

// parseU8 parses an unsuffixed integer in the range 1...255.
func parseU8(s *stream) (uint8, error) {
	term := s.peek()
	if term == nil || term.Lit == nil || term.Lit.Int == "" {
		return 0, s.unexpected("integer literal")
	}
	s.advance()
	lit := term.Lit
	if syntax.IntSuffix(lit.Int) != "" {
		return 0, errorf(KindValue, lit.Pos, "this integer must be unsuffixed")
	}
	digits, ok := intDigits(lit.Int)
	if !ok {
		return 0, errorf(KindValue, lit.Pos, "invalid integer literal %q", lit.Int)
	}
	n, err := strconv.ParseUint(digits, 10, 8)
	if err != nil || n == 0 {
		return 0, errorf(KindValue, lit.Pos, "this literal must be in the range 1...255")
	}
	return uint8(n), nil
}

// parseIdents parses a bracketed identifier set such as `[a, b]`.
func parseIdents(s *stream) (ast.Map[*syntax.Ident], error) {
	var idents ast.Map[*syntax.Ident]
	_, list, err := s.group("[")
	if err != nil {
		return idents, err
	}
	for !list.empty() {
		ident, err := list.ident()
		if err != nil {
			return idents, err
		}
		if !idents.Insert(ident.Name, ident) {
			return idents, errorf(KindRedefinition, ident.Pos, "identifier appears more than once in list")
		}
		if err := list.separator(); err != nil {
			return idents, err
		}
	}
	return idents, nil
}

// parseResources parses a bracketed resource list such as `[a, &b]`.
func parseResources(s *stream) (ast.Resources, error) {
	var resources ast.Resources
	_, list, err := s.group("[")
	if err != nil {
		return resources, err
	}
	for !list.empty() {
		pos := list.pos()
		access, ident, err := resourceAccess(list.until())
		if err != nil {
			return resources, err
		}
		if ident == nil {
			return resources, errorf(KindShapeMismatch, pos, "expected a resource identifier")
		}
		if !resources.Insert(ident.Name, access) {
			return resources, errorf(KindRedefinition, ident.Pos, "resource appears more than once in list")
		}
		if err := list.separator(); err != nil {
			return resources, err
		}
	}
	return resources, nil
}

// resourceAccess decodes one resource list element: `x` is exclusive and `&x`
// is shared. It returns a nil identifier for an empty element.
func resourceAccess(terms []*syntax.Term) (ast.Access, *syntax.Ident, error) {
	access := ast.Exclusive
	if len(terms) > 0 && terms[0].Punct == "&" {
		access = ast.Shared
		terms = terms[1:]
		if len(terms) > 0 && terms[0].Ident == "mut" {
			return access, nil, errorf(KindShapeMismatch, terms[0].Pos, "resource must be an identifier or a shared reference to one, not a mutable reference")
		}
	}
	switch {
	case len(terms) == 0:
		return access, nil, nil
	case len(terms) == 1 && terms[0].Ident != "":
		return access, &syntax.Ident{Pos: terms[0].Pos, Name: terms[0].Ident}, nil
	case isPath(terms):
		return access, nil, errorf(KindShapeMismatch, terms[0].Pos, "resource must be an identifier, not a path")
	default:
		return access, nil, errorf(KindShapeMismatch, terms[0].Pos, "resource must be an identifier or a shared reference to one")
	}
}

// isPath reports whether terms look like a path with more than one segment,
// a leading `::` or generic arguments.
func isPath(terms []*syntax.Term) bool {
	if terms[0].Ident == "" && terms[0].Punct != "::" {
		return false
	}
	for _, term := range terms {
		if term.Punct == "::" {
			return true
		}
	}
	return false
}
