package rtsyntax

import (
	"github.com/irqkit/rtsyntax/ast"
	"github.com/irqkit/rtsyntax/syntax"
)

// resourceStruct adds the fields of the `#[resources]` struct to the app.
// attrs are the struct attributes other than `#[resources]`.
func (c *classifier) resourceStruct(item *syntax.Item, attrs []*syntax.Attribute) error {
	st := item.Struct
	if c.resourcesName != nil {
		return errorf(KindRedefinition, st.Name.Pos, "`#[resources]` struct must appear at most once")
	}
	if item.Vis != nil {
		return errorf(KindShapeMismatch, item.Vis.Pos, "this item must have inherited / private visibility")
	}
	if st.Generics != nil {
		return errorf(KindShapeMismatch, st.Generics.Pos, "the `#[resources]` struct can't be generic")
	}
	if len(attrs) != 0 {
		return errorf(KindShapeMismatch, attrs[0].Pos, "the `#[resources]` struct can't have other attributes")
	}
	if st.Named == nil {
		return errorf(KindShapeMismatch, st.Name.Pos, "this `struct` must have named fields")
	}

	app := c.app
	for _, field := range st.Named.Fields {
		name := field.Name
		if app.LateResources.Has(name.Name) || app.Resources.Has(name.Name) {
			return errorf(KindRedefinition, name.Pos, "this resource is listed more than once")
		}
		if field.Vis != nil {
			return errorf(KindShapeMismatch, field.Vis.Pos, "resources must have inherited / private visibility")
		}
		init, attrs, err := takeInitAttr(field.Attrs)
		if err != nil {
			return err
		}
		late, err := c.parseLateResource(field, attrs)
		if err != nil {
			return err
		}
		if init == nil {
			app.LateResources.Insert(name.Name, late)
			c.log.Debug("late resource", "name", name.Name)
			continue
		}
		expr, err := parseInitExpr(init)
		if err != nil {
			return err
		}
		app.Resources.Insert(name.Name, &ast.Resource{LateResource: *late, Expr: expr})
		c.log.Debug("resource", "name", name.Name, "init", expr.String())
	}
	c.resourcesName = st.Name
	return nil
}

func (c *classifier) parseLateResource(field *syntax.Field, attrs []*syntax.Attribute) (*ast.LateResource, error) {
	cfgs, attrs := extractCfgs(attrs)
	shared, attrs, err := extractShared(attrs, c.settings.cores())
	if err != nil {
		return nil, err
	}
	taskLocal, attrs, err := extractFlag(attrs, "task_local")
	if err != nil {
		return nil, err
	}
	lockFree, attrs, err := extractFlag(attrs, "lock_free")
	if err != nil {
		return nil, err
	}
	return &ast.LateResource{
		Name:  field.Name,
		Cfgs:  cfgs,
		Attrs: attrs,
		Type:  field.Type,
		Properties: ast.ResourceProperties{
			TaskLocal: taskLocal,
			LockFree:  lockFree,
			Shared:    shared,
		},
	}, nil
}

// takeInitAttr removes the `#[init(expr)]` attribute of a resource field.
func takeInitAttr(attrs []*syntax.Attribute) (*syntax.Attribute, []*syntax.Attribute, error) {
	var init *syntax.Attribute
	rest := make([]*syntax.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		if !attrIs(attr, "init") {
			rest = append(rest, attr)
			continue
		}
		if init != nil {
			return nil, nil, errorf(KindRedefinition, attr.Pos, "`#[init]` appears more than once")
		}
		init = attr
	}
	return init, rest, nil
}

// parseInitExpr returns the parenthesized expression of `#[init(expr)]`.
func parseInitExpr(attr *syntax.Attribute) (*syntax.Expr, error) {
	s := newStream(attr.Tokens, attr.EndPos)
	group, content, err := s.group("(")
	if err == nil {
		err = s.finish()
	}
	if err != nil {
		return nil, err
	}
	if content.empty() {
		return nil, errorf(KindSyntax, group.Pos, "expected an initial value, eg. `#[init(0)]`")
	}
	expr := &syntax.Expr{Pos: content.pos()}
	for !content.empty() {
		term := content.peek()
		if term == nil || term.Punct == "," {
			return nil, errorf(KindShapeMismatch, content.pos(), "`#[init]` takes a single expression, eg. `#[init(0)]`")
		}
		expr.Terms = append(expr.Terms, term)
		content.advance()
	}
	return expr, nil
}
