package rtsyntax

import (
	"github.com/irqkit/rtsyntax/ast"
	"github.com/irqkit/rtsyntax/syntax"
)

func (p *parser) parseInit(args ast.InitArgs, attrs []*syntax.Attribute, vis *syntax.Visibility, fn *syntax.Fn) (*ast.Init, error) {
	name := fn.Name.Name
	late, ok := typeIsLateResources(fn.Output, name)
	if ok && checkFnSignature(vis, fn) && fn.Abi == nil && fn.Body != nil && len(fn.Params) == 1 {
		if context, _, ok := parseInputs(fn.Params, name); ok {
			core, attrs, err := extractCore(attrs, p.settings.cores(), fn.Name.Pos)
			if err != nil {
				return nil, err
			}
			if err := checkShared(attrs, p.settings.cores()); err != nil {
				return nil, err
			}
			locals, stmts, err := extractLocals(fn.Body.Stmts)
			if err != nil {
				return nil, err
			}
			return &ast.Init{
				Args:                 args,
				Attrs:                attrs,
				Name:                 fn.Name,
				Core:                 core,
				Context:              context,
				ReturnsLateResources: late,
				Locals:               locals,
				Stmts:                stmts,
			}, nil
		}
	}
	return nil, errorf(KindShapeMismatch, fn.Name.Pos,
		"the `#[init]` function must have signature `fn(%s::Context) [-> %s::LateResources]`", name, name)
}

func (p *parser) parseIdle(args ast.IdleArgs, attrs []*syntax.Attribute, vis *syntax.Visibility, fn *syntax.Fn) (*ast.Idle, error) {
	name := fn.Name.Name
	if typeIsBottom(fn.Output) && checkFnSignature(vis, fn) && fn.Abi == nil && fn.Body != nil && len(fn.Params) == 1 {
		if context, _, ok := parseInputs(fn.Params, name); ok {
			core, attrs, err := extractCore(attrs, p.settings.cores(), fn.Name.Pos)
			if err != nil {
				return nil, err
			}
			if err := checkShared(attrs, p.settings.cores()); err != nil {
				return nil, err
			}
			locals, stmts, err := extractLocals(fn.Body.Stmts)
			if err != nil {
				return nil, err
			}
			return &ast.Idle{
				Args:    args,
				Attrs:   attrs,
				Name:    fn.Name,
				Core:    core,
				Context: context,
				Locals:  locals,
				Stmts:   stmts,
			}, nil
		}
	}
	return nil, errorf(KindShapeMismatch, fn.Name.Pos,
		"the `#[idle]` function must have signature `fn(%s::Context) -> !`", name)
}
