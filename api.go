package rtsyntax

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/irqkit/rtsyntax/ast"
	"github.com/irqkit/rtsyntax/syntax"
)

// Parse parses the annotated module in src and validates it.
//
// The module must carry an `#[app(..)]` attribute, whose arguments become
// the App arguments.
func Parse(filename string, src []byte, options ...Option) (*ast.App, error) {
	p, err := newParser(options)
	if err != nil {
		return nil, err
	}
	var module *syntax.Module
	if p.trace != nil {
		module, err = syntax.ParseModuleTrace(filename, string(src), p.trace)
	} else {
		module, err = syntax.ParseModule(filename, string(src))
	}
	if err != nil {
		return nil, syntaxError(err)
	}
	var app *syntax.Attribute
	for _, attr := range module.Attrs {
		if !attrIs(attr, "app") {
			continue
		}
		if app != nil {
			return nil, errorf(KindRedefinition, attr.Pos, "`#[app]` appears more than once")
		}
		app = attr
	}
	if app == nil {
		return nil, errorf(KindMisplacedItem, module.Pos, "the module must be annotated with `#[app(..)]`")
	}
	args, err := attrArgs(app)
	if err != nil {
		return nil, err
	}
	return p.parse(args, module)
}

// ParseReader is like Parse but reads the source from r.
func ParseReader(filename string, r io.Reader, options ...Option) (*ast.App, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(filename, src, options...)
}

// ParseModule validates a module whose `#[app]` attribute arguments were
// already separated from it. args is the content of the attribute's
// parentheses.
func ParseModule(args []*syntax.TokenTree, module *syntax.Module, options ...Option) (*ast.App, error) {
	p, err := newParser(options)
	if err != nil {
		return nil, err
	}
	return p.parse(newStream(args, module.Pos), module)
}

func (p *parser) parse(s *stream, module *syntax.Module) (*ast.App, error) {
	args, err := parseAppArgs(s)
	if err != nil {
		return nil, err
	}
	return p.parseApp(args, module)
}

// ParseAppArgs parses `#[app]` arguments such as `device = stm32::pac`.
func ParseAppArgs(src string) (*ast.AppArgs, error) {
	trees, err := syntax.ParseTokens("", src)
	if err != nil {
		return nil, syntaxError(err)
	}
	return parseAppArgs(newStream(trees, endOf(trees)))
}

// ParseResources parses a resource list such as `[a, &b]`.
func ParseResources(src string) (ast.Resources, error) {
	trees, err := syntax.ParseTokens("", src)
	if err != nil {
		return ast.Resources{}, syntaxError(err)
	}
	s := newStream(trees, endOf(trees))
	resources, err := parseResources(s)
	if err != nil {
		return resources, err
	}
	return resources, s.finish()
}

func endOf(trees []*syntax.TokenTree) lexer.Position {
	if len(trees) == 0 {
		return lexer.Position{Line: 1, Column: 1}
	}
	return trees[len(trees)-1].Pos
}
