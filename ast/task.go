package ast

import "github.com/irqkit/rtsyntax/syntax"

// Init is the initialization function.
type Init struct {
	Args InitArgs

	// Attrs will be applied to the generated init function.
	Attrs []*syntax.Attribute

	Name *syntax.Ident

	// Core the function runs on; always 0 on single core targets.
	Core uint8

	// Context is the pattern binding the context parameter.
	Context *syntax.Pattern

	// ReturnsLateResources is true if the return type is `init::LateResources`.
	ReturnsLateResources bool

	// Locals are the `static mut` variables owned by this function.
	Locals Map[*Local]

	// Stmts is the body, after the locals.
	Stmts []*syntax.Stmt
}

// InitArgs are the arguments of the `#[init]` attribute.
type InitArgs struct {
	// Late lists the late resources this function initializes.
	//
	// Code generation should derive the set from analysis instead.
	Late Map[*syntax.Ident]

	// Resources accessible from init.
	Resources Resources
}

// Idle is the background function.
type Idle struct {
	Args IdleArgs

	// Attrs will be applied to the generated idle function.
	Attrs []*syntax.Attribute

	Name *syntax.Ident

	Core uint8

	Context *syntax.Pattern

	Locals Map[*Local]

	Stmts []*syntax.Stmt
}

// IdleArgs are the arguments of the `#[idle]` attribute.
type IdleArgs struct {
	Resources Resources
}

// HardwareTask is a task bound to an interrupt or exception.
type HardwareTask struct {
	Args HardwareTaskArgs

	// Cfgs are the `#[cfg(..)]` attributes of the task.
	Cfgs []*syntax.Attribute

	// Attrs will be applied to the generated interrupt handler.
	Attrs []*syntax.Attribute

	Name *syntax.Ident

	Core uint8

	Context *syntax.Pattern

	Locals Map[*Local]

	Stmts []*syntax.Stmt

	// IsExtern is true if the task is declared here but defined externally.
	IsExtern bool

	// IsGenerator is true if the task returns
	// `impl Generator<Yield = (), Return = !>`.
	IsGenerator bool
}

// HardwareTaskArgs are the arguments of a `#[task(binds = ..)]` attribute.
type HardwareTaskArgs struct {
	// Binds is the interrupt or exception the task is bound to.
	Binds *syntax.Ident

	Priority uint8

	Resources Resources
}

// SoftwareTask is a task spawned from software and dispatched through one of
// the extern interrupts.
type SoftwareTask struct {
	Args SoftwareTaskArgs

	Cfgs []*syntax.Attribute

	Attrs []*syntax.Attribute

	Name *syntax.Ident

	Core uint8

	Context *syntax.Pattern

	// Inputs are the parameters following the context; their values are
	// queued with each spawn.
	Inputs []*syntax.Param

	Locals Map[*Local]

	Stmts []*syntax.Stmt

	IsExtern bool

	IsGenerator bool
}

// SoftwareTaskArgs are the arguments of a `#[task]` attribute without `binds`.
type SoftwareTaskArgs struct {
	// Capacity is the maximum number of pending spawns.
	Capacity uint8

	Priority uint8

	Resources Resources
}

// DefaultSoftwareTaskArgs returns the arguments of a bare `#[task]`.
func DefaultSoftwareTaskArgs() SoftwareTaskArgs {
	return SoftwareTaskArgs{Capacity: 1, Priority: 1}
}

// Local is a `static mut` variable owned by one context.
type Local struct {
	Name *syntax.Ident

	// Attrs such as `#[link_section]`.
	Attrs []*syntax.Attribute

	Cfgs []*syntax.Attribute

	Type *syntax.Type

	// Expr is the initial value.
	Expr *syntax.Expr
}
