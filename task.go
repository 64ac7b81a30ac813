package rtsyntax

import (
	"fmt"

	"github.com/irqkit/rtsyntax/ast"
	"github.com/irqkit/rtsyntax/syntax"
)

// taskShape is what hardware and software tasks have in common.
type taskShape struct {
	cfgs        []*syntax.Attribute
	attrs       []*syntax.Attribute
	core        uint8
	context     *syntax.Pattern
	inputs      []*syntax.Param
	locals      ast.Map[*ast.Local]
	stmts       []*syntax.Stmt
	isExtern    bool
	isGenerator bool
}

// parseTaskShape validates a task function. signature describes the
// expected signature in error messages.
func (p *parser) parseTaskShape(attrs []*syntax.Attribute, vis *syntax.Visibility, fn *syntax.Fn, signature string) (*taskShape, error) {
	name := fn.Name.Name
	invalid := errorf(KindShapeMismatch, fn.Name.Pos, "this task handler must have type signature `%s`", signature)

	shape := &taskShape{}
	switch {
	case returnTypeIsUnit(fn.Output), typeIsBottom(fn.Output):
	case p.settings.ParseGenerators && typeIsImplGenerator(fn.Output):
		shape.isGenerator = true
	default:
		return nil, invalid
	}
	if !checkFnSignature(vis, fn) {
		return nil, invalid
	}
	context, inputs, ok := parseInputs(fn.Params, name)
	if !ok {
		return nil, invalid
	}
	shape.context, shape.inputs = context, inputs

	if fn.Abi != nil {
		if !abiIsC(fn.Abi) {
			return nil, errorf(KindShapeMismatch, fn.Abi.Pos, "extern tasks must use the \"C\" abi")
		}
		if fn.Body != nil {
			return nil, errorf(KindShapeMismatch, fn.Body.Pos, "extern tasks must not have a body")
		}
		shape.isExtern = true
	} else if fn.Body == nil {
		return nil, errorf(KindShapeMismatch, fn.Name.Pos, "this task handler must have a body")
	}

	cfgs, attrs := extractCfgs(attrs)
	core, attrs, err := extractCore(attrs, p.settings.cores(), fn.Name.Pos)
	if err != nil {
		return nil, err
	}
	if err := checkShared(attrs, p.settings.cores()); err != nil {
		return nil, err
	}
	shape.cfgs, shape.attrs, shape.core = cfgs, attrs, core

	if fn.Body != nil {
		shape.locals, shape.stmts, err = extractLocals(fn.Body.Stmts)
		if err != nil {
			return nil, err
		}
	}
	return shape, nil
}

func (p *parser) parseHardwareTask(args *ast.HardwareTaskArgs, attrs []*syntax.Attribute, vis *syntax.Visibility, fn *syntax.Fn) (*ast.HardwareTask, error) {
	signature := fmt.Sprintf("fn(%s::Context)", fn.Name.Name)
	shape, err := p.parseTaskShape(attrs, vis, fn, signature)
	if err != nil {
		return nil, err
	}
	if len(shape.inputs) != 0 {
		return nil, errorf(KindShapeMismatch, fn.Name.Pos, "this task handler must have type signature `%s`", signature)
	}
	return &ast.HardwareTask{
		Args:        *args,
		Cfgs:        shape.cfgs,
		Attrs:       shape.attrs,
		Name:        fn.Name,
		Core:        shape.core,
		Context:     shape.context,
		Locals:      shape.locals,
		Stmts:       shape.stmts,
		IsExtern:    shape.isExtern,
		IsGenerator: shape.isGenerator,
	}, nil
}

func (p *parser) parseSoftwareTask(args *ast.SoftwareTaskArgs, attrs []*syntax.Attribute, vis *syntax.Visibility, fn *syntax.Fn) (*ast.SoftwareTask, error) {
	shape, err := p.parseTaskShape(attrs, vis, fn, fmt.Sprintf("fn(%s::Context, ..)", fn.Name.Name))
	if err != nil {
		return nil, err
	}
	return &ast.SoftwareTask{
		Args:        *args,
		Cfgs:        shape.cfgs,
		Attrs:       shape.attrs,
		Name:        fn.Name,
		Core:        shape.core,
		Context:     shape.context,
		Inputs:      shape.inputs,
		Locals:      shape.locals,
		Stmts:       shape.stmts,
		IsExtern:    shape.isExtern,
		IsGenerator: shape.isGenerator,
	}, nil
}
