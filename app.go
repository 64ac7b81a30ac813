package rtsyntax

import (
	"github.com/irqkit/rtsyntax/ast"
	"github.com/irqkit/rtsyntax/syntax"
)

// classifier walks the items of one module and assembles the App.
type classifier struct {
	*parser
	app *ast.App

	// idents are the names of init, idle and every task.
	idents map[string]bool
	// bindings are the interrupts bound to hardware tasks.
	bindings map[string]bool
	// resourcesName is the name of the `#[resources]` struct once seen.
	resourcesName *syntax.Ident
}

func (p *parser) parseApp(args *ast.AppArgs, module *syntax.Module) (*ast.App, error) {
	c := &classifier{
		parser:   p,
		app:      &ast.App{Args: *args, Name: module.Name},
		idents:   map[string]bool{},
		bindings: map[string]bool{},
	}
	p.log.Debug("parsing app", "name", module.Name.Name, "items", len(module.Items),
		"cores", p.settings.cores(), "extern_interrupts", p.settings.ParseExternInterrupt, "generators", p.settings.ParseGenerators)
	for _, item := range module.Items {
		if err := c.item(item); err != nil {
			return nil, err
		}
	}
	return c.app, nil
}

func (c *classifier) checkIdent(ident *syntax.Ident) error {
	if c.idents[ident.Name] {
		return errorf(KindRedefinition, ident.Pos, "this identifier has already been used")
	}
	c.idents[ident.Name] = true
	return nil
}

func (c *classifier) checkBinding(ident *syntax.Ident) error {
	if c.bindings[ident.Name] {
		return errorf(KindRedefinition, ident.Pos, "a task has already been bound to this interrupt")
	}
	c.bindings[ident.Name] = true
	return nil
}

func misplaced(kind appAttribute, attr *syntax.Attribute) error {
	return errorf(KindMisplacedItem, attr.Pos, "`%s` can't be used on this item", kind)
}

func (c *classifier) item(item *syntax.Item) error {
	kind, attr, attrs, err := takeAppAttr(item.Attrs)
	if err != nil {
		return err
	}
	switch {
	case item.Fn != nil:
		return c.fn(item, kind, attr, attrs)

	case item.Struct != nil:
		switch kind {
		case attrResources:
			return c.resourceStruct(item, attrs)
		case attrNone:
			c.app.UserCode = append(c.app.UserCode, item)
		case attrDispatch:
			passed := *item
			passed.Attrs = attrs
			c.app.UserCode = append(c.app.UserCode, &passed)
		default:
			return misplaced(kind, attr)
		}
		c.log.Debug("user struct", "name", item.Struct.Name.Name)

	case item.Foreign != nil:
		if kind != attrNone {
			return misplaced(kind, attr)
		}
		return c.foreignMod(item.Foreign)

	case item.Use != nil:
		if kind != attrNone {
			return misplaced(kind, attr)
		}
		c.app.UserImports = append(c.app.UserImports, item.Use)
		c.log.Debug("user import", "use", item.Use.String())

	default:
		if kind != attrNone {
			return misplaced(kind, attr)
		}
		c.app.UserCode = append(c.app.UserCode, item)
		c.log.Debug("user code", "pos", item.Pos.String())
	}
	return nil
}

func (c *classifier) fn(item *syntax.Item, kind appAttribute, attr *syntax.Attribute, attrs []*syntax.Attribute) error {
	fn := item.Fn
	name := fn.Name
	switch kind {
	case attrInit:
		if c.app.Init != nil {
			return errorf(KindRedefinition, name.Pos, "`#[init]` function must appear at most once")
		}
		if err := c.checkIdent(name); err != nil {
			return err
		}
		args, err := parseInitArgs(attr)
		if err != nil {
			return err
		}
		init, err := c.parseInit(args, attrs, item.Vis, fn)
		if err != nil {
			return err
		}
		c.app.Init = init
		c.log.Debug("init", "name", name.Name, "late_resources", init.ReturnsLateResources)

	case attrIdle:
		if c.app.Idle != nil {
			return errorf(KindRedefinition, name.Pos, "`#[idle]` function must appear at most once")
		}
		if err := c.checkIdent(name); err != nil {
			return err
		}
		args, err := parseIdleArgs(attr)
		if err != nil {
			return err
		}
		idle, err := c.parseIdle(args, attrs, item.Vis, fn)
		if err != nil {
			return err
		}
		c.app.Idle = idle
		c.log.Debug("idle", "name", name.Name)

	case attrTask:
		if name.Name == "init" || name.Name == "idle" {
			return errorf(KindReservedName, name.Pos, "tasks cannot be named `init` or `idle`")
		}
		if c.app.HardwareTasks.Has(name.Name) || c.app.SoftwareTasks.Has(name.Name) {
			return errorf(KindRedefinition, name.Pos, "this task is defined multiple times")
		}
		hw, sw, err := parseTaskArgs(attr)
		if err != nil {
			return err
		}
		if hw != nil {
			if err := c.checkBinding(hw.Binds); err != nil {
				return err
			}
			if err := c.checkIdent(name); err != nil {
				return err
			}
			task, err := c.parseHardwareTask(hw, attrs, item.Vis, fn)
			if err != nil {
				return err
			}
			c.app.HardwareTasks.Insert(name.Name, task)
			c.log.Debug("hardware task", "name", name.Name, "binds", hw.Binds.Name, "priority", hw.Priority)
			return nil
		}
		if err := c.checkIdent(name); err != nil {
			return err
		}
		task, err := c.parseSoftwareTask(sw, attrs, item.Vis, fn)
		if err != nil {
			return err
		}
		c.app.SoftwareTasks.Insert(name.Name, task)
		c.log.Debug("software task", "name", name.Name, "priority", sw.Priority, "capacity", sw.Capacity)

	case attrNone:
		return errorf(KindMisplacedItem, name.Pos, "this item must live outside the `#[app]` module")

	default:
		return misplaced(kind, attr)
	}
	return nil
}
