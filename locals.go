package rtsyntax

import (
	"github.com/irqkit/rtsyntax/ast"
	"github.com/irqkit/rtsyntax/syntax"
)

// extractLocals splits the leading run of `static mut` items off a function
// body. The first statement that is not a `static mut`, including an
// immutable `static`, ends the run.
func extractLocals(stmts []*syntax.Stmt) (ast.Map[*ast.Local], []*syntax.Stmt, error) {
	var locals ast.Map[*ast.Local]
	i := 0
	for ; i < len(stmts); i++ {
		stmt := stmts[i].Static
		if stmt == nil || !stmt.Static.Mut {
			break
		}
		local, err := parseLocal(stmt)
		if err != nil {
			return locals, nil, err
		}
		if !locals.Insert(local.Name.Name, local) {
			return locals, nil, errorf(KindRedefinition, local.Name.Pos, "this local `static` appears more than once")
		}
	}
	return locals, stmts[i:], nil
}

func parseLocal(stmt *syntax.StaticStmt) (*ast.Local, error) {
	static := stmt.Static
	if stmt.Vis != nil {
		return nil, errorf(KindShapeMismatch, stmt.Vis.Pos, "local `static`s must have inherited / private visibility")
	}
	if static.Expr == nil {
		return nil, errorf(KindShapeMismatch, static.Name.Pos, "local `static`s must have an initial value")
	}
	cfgs, attrs := extractCfgs(stmt.Attrs)
	return &ast.Local{
		Name:  static.Name,
		Attrs: attrs,
		Cfgs:  cfgs,
		Type:  static.Type,
		Expr:  static.Expr,
	}, nil
}
