package rtsyntax

import (
	"github.com/irqkit/rtsyntax/syntax"
)

// checkFnSignature checks that a function
//
//   - has inherited (private) visibility
//   - is not const, async or unsafe
//   - is not generic and has no where clause
//   - is not variadic
//
// The ABI is checked by the callers.
func checkFnSignature(vis *syntax.Visibility, fn *syntax.Fn) bool {
	return vis == nil &&
		!fn.Const &&
		!fn.Async &&
		!fn.Unsafe &&
		(fn.Generics == nil || len(fn.Generics.Params) == 0) &&
		fn.Where == nil &&
		!isVariadic(fn.Params)
}

// checkForeignFnSignature checks that a foreign block entry is `fn NAME();`.
func checkForeignFnSignature(vis *syntax.Visibility, fn *syntax.Fn) bool {
	return vis == nil &&
		fn.Abi == nil &&
		(fn.Generics == nil || len(fn.Generics.Params) == 0) &&
		fn.Where == nil &&
		len(fn.Params) == 0 &&
		returnTypeIsUnit(fn.Output) &&
		fn.NoBody
}

func isVariadic(params []*syntax.Param) bool {
	for _, param := range params {
		if param.Variadic {
			return true
		}
	}
	return false
}

// abiIsC reports whether abi is `extern` or `extern "C"`.
func abiIsC(abi *syntax.Abi) bool {
	return abi.Name == "" || abi.Name == `"C"`
}

// attrIs reports whether attr is the outer attribute `#[name ...]`.
func attrIs(attr *syntax.Attribute, name string) bool {
	if attr.Inner || attr.Path.Leading || len(attr.Path.Segments) != 1 {
		return false
	}
	segment := attr.Path.Segments[0]
	return segment.Args == nil && segment.Ident.Name == name
}

// typeIsPath reports whether ty is a path whose segment identifiers are
// exactly segments.
func typeIsPath(ty *syntax.Type, segments ...string) bool {
	if ty == nil || ty.Path == nil || ty.Path.Leading || len(ty.Path.Segments) != len(segments) {
		return false
	}
	for i, segment := range ty.Path.Segments {
		if segment.Ident.Name != segments[i] {
			return false
		}
	}
	return true
}

func typeIsUnit(ty *syntax.Type) bool {
	return ty != nil && ty.Tuple != nil && len(ty.Tuple.Elems) == 0
}

func typeIsBottom(ty *syntax.Type) bool {
	return ty != nil && ty.Never
}

// returnTypeIsUnit reports whether a function output is absent or `()`.
func returnTypeIsUnit(output *syntax.Type) bool {
	return output == nil || typeIsUnit(output)
}

// typeIsLateResources classifies the output of init: false for an absent or
// `()` output, true for `name::LateResources`. Any other output is not ok.
func typeIsLateResources(output *syntax.Type, name string) (late, ok bool) {
	switch {
	case returnTypeIsUnit(output):
		return false, true
	case typeIsPath(output, name, "LateResources"):
		return true, true
	default:
		return false, false
	}
}

// typeIsImplGenerator reports whether output is exactly
// `impl Generator<Yield = (), Return = !>`, with the bindings in any order.
func typeIsImplGenerator(output *syntax.Type) bool {
	if output == nil || output.Impl == nil || output.Impl.Keyword != "impl" || len(output.Impl.Bounds) != 1 {
		return false
	}
	bound := output.Impl.Bounds[0]
	if bound.Lifetime != "" || bound.Maybe || bound.Path == nil || bound.Fn != nil || bound.Path.Leading || len(bound.Path.Segments) != 1 {
		return false
	}
	segment := bound.Path.Segments[0]
	if segment.Ident.Name != "Generator" || segment.Args == nil || len(segment.Args.Args) != 2 {
		return false
	}
	yield, ret := false, false
	for _, arg := range segment.Args.Args {
		if arg.Binding == nil {
			return false
		}
		switch arg.Binding.Name.Name {
		case "Yield":
			yield = typeIsUnit(arg.Binding.Type)
		case "Return":
			ret = typeIsBottom(arg.Binding.Type)
		}
	}
	return yield && ret
}

// parseInputs checks that the first parameter is typed `name::Context` and
// returns its pattern together with the remaining parameters. It fails if
// any parameter is a receiver or variadic.
func parseInputs(params []*syntax.Param, name string) (*syntax.Pattern, []*syntax.Param, bool) {
	if len(params) == 0 || params[0].Pat == nil || !typeIsPath(params[0].Type, name, "Context") {
		return nil, nil, false
	}
	rest := params[1:]
	for _, param := range rest {
		if param.Pat == nil {
			return nil, nil, false
		}
	}
	return params[0].Pat, rest, true
}
