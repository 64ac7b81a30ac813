// Package ast is the validated program model produced by rtsyntax.
//
// An App is only ever constructed by the rtsyntax parser, which guarantees
// that it satisfies every structural invariant of the concurrency model:
//
//   - at most one init and at most one idle function;
//   - task, init and idle identifiers share one namespace and are distinct;
//   - no two hardware tasks are bound to the same interrupt;
//   - resource identifiers are distinct across early and late resources;
//   - extern interrupt identifiers are distinct;
//   - locals are distinct within a context, and resource lists and
//     identifier sets contain no repeats.
//
// Consumers such as priority ceiling analysis and code generation never need
// to re-validate an App.
package ast

import (
	"strconv"

	"github.com/irqkit/rtsyntax/syntax"
)

// App is an annotated module.
type App struct {
	// Args are the arguments of the `#[app]` attribute.
	Args AppArgs

	// Name of the annotated module.
	Name *syntax.Ident

	// Init is the `#[init]` function, if any.
	Init *Init

	// Idle is the `#[idle]` function, if any.
	Idle *Idle

	// LateResources are initialized at runtime by init.
	LateResources Map[*LateResource]

	// Resources are initialized at compile time.
	Resources Map[*Resource]

	// UserImports are the `use` declarations of the module.
	UserImports []*syntax.Use

	// UserCode holds the items that are not part of the model, for verbatim
	// re-emission.
	UserCode []*syntax.Item

	// HardwareTasks are `#[task(binds = ..)]` functions.
	HardwareTasks Map[*HardwareTask]

	// SoftwareTasks are `#[task]` functions without `binds`.
	SoftwareTasks Map[*SoftwareTask]
}

// AppArgs are the arguments of the `#[app]` attribute.
type AppArgs struct {
	// Device is the `device = path` argument.
	Device *syntax.Path

	// Monotonic is the `monotonic = path` argument.
	Monotonic *syntax.Path

	// Peripherals is the `peripherals = bool` argument.
	Peripherals bool

	// ExternInterrupts is the pool of interrupts available for dispatching
	// software tasks.
	ExternInterrupts ExternInterrupts

	// Custom holds every `key = value` argument in source order.
	Custom Map[CustomArg]
}

// ExternInterrupts is the pool of dispatch interrupts keyed by name.
type ExternInterrupts = Map[*ExternInterrupt]

// ExternInterrupt is an interrupt that may be used to dispatch software tasks.
type ExternInterrupt struct {
	Name *syntax.Ident

	// Attrs will be applied to the generated interrupt handler.
	Attrs []*syntax.Attribute
}

// CustomArg is the value of a `key = value` `#[app]` argument. It is one of
// CustomBool, CustomUInt or CustomPath.
type CustomArg interface {
	customArg()
	String() string
}

// CustomBool is a boolean literal argument.
type CustomBool bool

// CustomUInt is an unsuffixed integer argument, normalized to base 10 digits.
type CustomUInt string

// CustomPath is a path argument such as `stm32f4::pac`.
type CustomPath struct {
	*syntax.Path
}

func (CustomBool) customArg() {}
func (CustomUInt) customArg() {}
func (CustomPath) customArg() {}

func (b CustomBool) String() string { return strconv.FormatBool(bool(b)) }
func (u CustomUInt) String() string { return string(u) }

// Uint64 returns the value as an integer, or false if it doesn't fit.
func (u CustomUInt) Uint64() (uint64, bool) {
	n, err := strconv.ParseUint(string(u), 10, 64)
	return n, err == nil
}
