package rtsyntax

import (
	"github.com/irqkit/rtsyntax/ast"
	"github.com/irqkit/rtsyntax/syntax"
)

// foreignMod adds the entries of an `extern "C" { .. }` block to the extern
// interrupt pool.
func (c *classifier) foreignMod(foreign *syntax.ForeignMod) error {
	if !abiIsC(foreign.Abi) {
		return errorf(KindShapeMismatch, foreign.Abi.Pos, "this `extern` block must use the \"C\" abi")
	}
	if !c.settings.ParseExternInterrupt && len(foreign.Items) == 0 {
		return errorf(KindMisplacedItem, foreign.Pos, "this item must live outside the `#[app]` module")
	}
	for _, item := range foreign.Items {
		if item.Fn == nil {
			return errorf(KindMisplacedItem, item.Pos, "this item must live outside the `#[app]` module")
		}
		name := item.Fn.Name
		if !c.settings.ParseExternInterrupt {
			return errorf(KindMisplacedItem, name.Pos, "this item must live outside the `#[app]` module")
		}
		if !checkForeignFnSignature(item.Vis, item.Fn) {
			return errorf(KindShapeMismatch, name.Pos, "extern interrupts must have type signature `fn()`")
		}
		interrupt := &ast.ExternInterrupt{Name: name, Attrs: item.Attrs}
		if !c.app.Args.ExternInterrupts.Insert(name.Name, interrupt) {
			return errorf(KindRedefinition, name.Pos, "this extern interrupt is listed more than once")
		}
		c.log.Debug("extern interrupt", "name", name.Name)
	}
	return nil
}
