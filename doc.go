// Package rtsyntax parses and validates the declarations of an interrupt
// driven, priority based concurrency framework.
//
// Programmers annotate an ordinary module with attributes describing tasks,
// resources, priorities and interrupt bindings:
//
//	#[app(device = stm32::pac, peripherals = true)]
//	mod app {
//	    #[resources]
//	    struct Resources {
//	        #[init(0)]
//	        counter: u32,
//	        led: Led,
//	    }
//
//	    #[init(late = [led])]
//	    fn init(cx: init::Context) -> init::LateResources { .. }
//
//	    #[task(binds = EXTI0, priority = 2, resources = [counter])]
//	    fn button(cx: button::Context) { .. }
//	}
//
// Parse turns such a module into an *ast.App that satisfies every structural
// invariant of the model, or returns the first *Error encountered. There is
// no error recovery.
//
// The tokenizer and grammar live in the syntax package. This package decodes
// the recognized attributes, checks declaration shapes and assembles the
// model.
package rtsyntax
