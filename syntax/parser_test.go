package syntax_test

import (
	"strings"
	"testing"

	require "github.com/alecthomas/assert/v2"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/repr"

	"github.com/irqkit/rtsyntax/syntax"
)

const exampleSrc = `
#[app(device = stm32::pac, peripherals = true)]
mod app {
    use core::fmt::Write;

    #[resources]
    struct Resources {
        #[init(0)]
        counter: u32,
        #[task_local]
        led: Led,
    }

    #[init(late = [led])]
    fn init(cx: init::Context) -> init::LateResources {
        init::LateResources { led: Led::new() }
    }

    #[idle(resources = [&counter])]
    fn idle(_: idle::Context) -> ! {
        loop {}
    }

    #[task(binds = EXTI0, priority = 2, resources = [counter])]
    fn button(cx: button::Context) {
        static mut N: u32 = 0;
        *N += 1;
    }

    extern "C" {
        fn UART0();
    }

    const LIMIT: u32 = 10;
}
`

func parseModule(t *testing.T, src string) *syntax.Module {
	t.Helper()
	module, err := syntax.ParseModule("test.rs", src)
	require.NoError(t, err)
	return module
}

// parseFn parses a module containing a single function.
func parseFn(t *testing.T, fn string) *syntax.Fn {
	t.Helper()
	module := parseModule(t, "mod m { "+fn+" }")
	require.Equal(t, 1, len(module.Items))
	require.NotZero(t, module.Items[0].Fn, repr.String(module.Items[0]))
	return module.Items[0].Fn
}

func TestParseModule(t *testing.T) {
	module := parseModule(t, exampleSrc)
	require.Equal(t, "app", module.Name.Name)
	require.Equal(t, 1, len(module.Attrs))
	require.Equal(t, "app", module.Attrs[0].Path.String())
	require.Equal(t, "(device = stm32::pac, peripherals = true)", syntax.TokensString(module.Attrs[0].Tokens))

	items := module.Items
	require.Equal(t, 7, len(items), repr.String(items))
	require.NotZero(t, items[0].Use)
	require.Equal(t, "use core::fmt::Write;", items[0].Use.String())

	require.NotZero(t, items[1].Struct)
	require.Equal(t, "Resources", items[1].Struct.Name.Name)
	require.Equal(t, 2, len(items[1].Struct.Named.Fields))

	for i, name := range []string{"init", "idle", "button"} {
		fn := items[2+i].Fn
		require.NotZero(t, fn)
		require.Equal(t, name, fn.Name.Name)
		require.Equal(t, 1, len(items[2+i].Attrs))
	}

	require.NotZero(t, items[5].Foreign)
	require.Equal(t, `"C"`, items[5].Foreign.Abi.Name)
	require.Equal(t, "UART0", items[5].Foreign.Items[0].Fn.Name.Name)

	require.NotZero(t, items[6].Verbatim)
	require.Equal(t, "const LIMIT: u32 = 10;", items[6].String())
}

func TestAttribute(t *testing.T) {
	fn := parseModule(t, exampleSrc).Items[4]
	require.Equal(t, "#[task(binds = EXTI0, priority = 2, resources = [counter])]", fn.Attrs[0].String())
	require.False(t, fn.Attrs[0].Inner)
	require.Equal(t, 1, len(fn.Attrs[0].Tokens))
	group := fn.Attrs[0].Tokens[0].Term.Group
	require.NotZero(t, group)
	require.Equal(t, "(", group.Open())
	require.Equal(t, 11, len(group.Trees()))
}

func TestTypes(t *testing.T) {
	tests := []string{
		"u32",
		"init::Context",
		"::core::option::Option<u8>",
		"()",
		"(u8,)",
		"(u8, u16)",
		"!",
		"&'static mut u8",
		"&str",
		"*const u8",
		"[u8; 4]",
		"[u8]",
		"Vec<Option<u8>>",
		"impl Generator<Yield = (), Return = !>",
		"fn(u8) -> u8",
		"Box<dyn Fn(u8)>",
		"impl Fn(u8) -> u8",
		"impl FnMut()",
		"&dyn Fn(&str, u8) + Send",
		"<T as Tr>::A",
		"<T>::A",
		"<Vec<u8> as IntoIterator>::Item",
	}
	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			fn := parseFn(t, "fn f(x: "+test+") {}")
			require.Equal(t, 1, len(fn.Params))
			require.Equal(t, test, fn.Params[0].Type.String())
		})
	}
}

func TestFnBound(t *testing.T) {
	fn := parseFn(t, "fn g<F: FnOnce()>(f: F) where F: Fn(u8, u16) -> u8 {}")
	traits := fn.Generics.Params[0].Traits
	require.Equal(t, "FnOnce", traits[0].Path.String())
	require.NotZero(t, traits[0].Fn)
	require.Equal(t, 0, len(traits[0].Fn.Inputs))
	bound := fn.Where.Predicates[0].Bounds[0]
	require.Equal(t, "Fn", bound.Path.String())
	require.NotZero(t, bound.Fn)
	require.Equal(t, 2, len(bound.Fn.Inputs))
	require.Equal(t, "u8", bound.Fn.Output.String())
}

func TestQSelfType(t *testing.T) {
	fn := parseFn(t, "fn f(x: <T as Iterator>::Item) {}")
	qself := fn.Params[0].Type.QSelf
	require.NotZero(t, qself)
	require.Equal(t, "T", qself.Self.String())
	require.Equal(t, "Iterator", qself.Trait.String())
	require.Equal(t, 1, len(qself.Segments))
	require.Equal(t, "Item", qself.Segments[0].Ident.Name)
}

func TestGeneratorType(t *testing.T) {
	fn := parseFn(t, "fn task(cx: task::Context) -> impl Generator<Yield = (), Return = !> { loop {} }")
	impl := fn.Output.Impl
	require.NotZero(t, impl)
	require.Equal(t, "impl", impl.Keyword)
	require.Equal(t, 1, len(impl.Bounds))
	args := impl.Bounds[0].Path.Segments[0].Args
	require.Equal(t, 2, len(args.Args))
	require.Equal(t, "Yield", args.Args[0].Binding.Name.Name)
	require.Equal(t, "()", args.Args[0].Binding.Type.String())
	require.Equal(t, "Return", args.Args[1].Binding.Name.Name)
	require.True(t, args.Args[1].Binding.Type.Never)
}

func TestFnSignature(t *testing.T) {
	module := parseModule(t, `mod m { pub const unsafe extern "C" fn f<T: Copy>(x: u8, ...) where T: Clone; }`)
	item := module.Items[0]
	require.NotZero(t, item.Vis)
	fn := item.Fn
	require.True(t, fn.Const)
	require.False(t, fn.Async)
	require.True(t, fn.Unsafe)
	require.Equal(t, `"C"`, fn.Abi.Name)
	require.Equal(t, 1, len(fn.Generics.Params))
	require.Equal(t, "T", fn.Generics.Params[0].Name.Name)
	require.Equal(t, 2, len(fn.Params))
	require.True(t, fn.Params[1].Variadic)
	require.Equal(t, 1, len(fn.Where.Predicates))
	require.True(t, fn.NoBody)
	require.Zero(t, fn.Body)
}

func TestParams(t *testing.T) {
	fn := parseFn(t, "fn f(&mut self, mut a: u8, (b, c): (u8, u8), #[cfg(x)] d: u8) {}")
	require.Equal(t, 4, len(fn.Params))
	require.NotZero(t, fn.Params[0].Self)
	require.True(t, fn.Params[0].Self.Ref)
	require.True(t, fn.Params[1].Pat.Mut)
	require.Equal(t, "a", fn.Params[1].Pat.Name.Name)
	require.Equal(t, "(b, c)", fn.Params[2].Pat.String())
	require.Equal(t, 1, len(fn.Params[3].Attrs))
	require.Equal(t, "#[cfg(x)] d: u8", fn.Params[3].String())
}

func TestStatements(t *testing.T) {
	fn := parseFn(t, `fn f() {
        static mut X: u32 = 0;
        let y = 1;
        static mut Z: u32 = 0;
        static W: u8 = 1;
        ;
        foo(y)
    }`)
	stmts := fn.Body.Stmts
	require.Equal(t, 6, len(stmts), repr.String(stmts))
	require.True(t, stmts[0].Static.Static.Mut)
	require.Equal(t, "X", stmts[0].Static.Static.Name.Name)
	require.Zero(t, stmts[1].Static)
	require.True(t, stmts[1].Semi)
	require.True(t, stmts[2].Static.Static.Mut)
	require.False(t, stmts[3].Static.Static.Mut)
	require.True(t, stmts[4].Empty)
	require.False(t, stmts[5].Semi)
	require.Equal(t, strings.Join([]string{
		"static mut X: u32 = 0;",
		"let y = 1;",
		"static mut Z: u32 = 0;",
		"static W: u8 = 1;",
		";",
		"foo(y)",
	}, "\n"), syntax.StmtsString(stmts))
}

func TestStaticAttributes(t *testing.T) {
	fn := parseFn(t, `fn f() { #[link_section = ".data"] #[cfg(debug)] static mut BUF: [u8; 4] = [0; 4]; }`)
	static := fn.Body.Stmts[0].Static
	require.NotZero(t, static)
	require.Equal(t, 2, len(static.Attrs))
	require.Equal(t, "[u8; 4]", static.Static.Type.String())
	require.Equal(t, "[0; 4]", static.Static.Expr.String())
}

func TestStruct(t *testing.T) {
	module := parseModule(t, `mod m {
        struct Named { #[init(0)] a: u32, pub b: Vec<u8>, }
        struct Tuple(u8, pub u16);
        struct Unit;
        struct Generic<T> { t: T }
    }`)
	named := module.Items[0].Struct
	require.Equal(t, 2, len(named.Named.Fields))
	require.Equal(t, "#[init(0)]", named.Named.Fields[0].Attrs[0].String())
	require.NotZero(t, named.Named.Fields[1].Vis)
	require.Equal(t, "Vec<u8>", named.Named.Fields[1].Type.String())

	tuple := module.Items[1].Struct
	require.Zero(t, tuple.Named)
	require.Equal(t, 2, len(tuple.Tuple.Fields))

	require.True(t, module.Items[2].Struct.Unit)
	require.Equal(t, 1, len(module.Items[3].Struct.Generics.Params))
}

func TestForeignMod(t *testing.T) {
	module := parseModule(t, `mod m {
        extern "C" {
            #[link_name = "uart0"]
            fn UART0();
            static COUNT: u32;
        }
        extern { fn SSI0(); }
    }`)
	foreign := module.Items[0].Foreign
	require.Equal(t, 2, len(foreign.Items))
	require.Equal(t, "UART0", foreign.Items[0].Fn.Name.Name)
	require.Equal(t, 1, len(foreign.Items[0].Attrs))
	require.Zero(t, foreign.Items[1].Fn)
	require.NotZero(t, foreign.Items[1].Other)

	require.Equal(t, "", module.Items[1].Foreign.Abi.Name)
}

func TestVerbatimItems(t *testing.T) {
	module := parseModule(t, `mod m {
        type T = u8;
        impl Foo { fn bar(&self) -> u8 { 1 } }
        enum E { A, B }
        macro_rules! m { () => {}; }
        static S: u8 = 1;
    }`)
	require.Equal(t, 5, len(module.Items), repr.String(module.Items))
	require.Equal(t, "type T = u8;", module.Items[0].String())
	for _, item := range module.Items[1:4] {
		require.NotZero(t, item.Verbatim)
		require.NotZero(t, item.Verbatim.Body)
	}
	require.NotZero(t, module.Items[4].Static)
}

func TestVerbatimFnTypes(t *testing.T) {
	module := parseModule(t, `mod m {
        type F = fn(u8);
        const X: fn() = f;
        extern crate alloc;
        unsafe impl Send for S {}
    }`)
	require.Equal(t, 4, len(module.Items))
	for _, item := range module.Items {
		require.NotZero(t, item.Verbatim, item.String())
	}
	require.Equal(t, "const X: fn() = f;", module.Items[1].String())
}

func TestFnNeverVerbatim(t *testing.T) {
	tests := []string{
		"fn f(x: u8 = 1) {}",
		"const fn f(x: u8 = 1) {}",
		"unsafe fn f(x: u8 = 1) {}",
		`extern "C" fn f(x: u8 = 1) {}`,
		"async unsafe fn f(x: u8 = 1);",
	}
	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			_, err := syntax.ParseModule("test.rs", "mod m {
  "+test+"
}
")
			require.Error(t, err)
			perr, ok := err.(participle.Error)
			require.True(t, ok)
			require.Equal(t, 2, perr.Position().Line)
		})
	}
}

func TestMismatchedDelimiters(t *testing.T) {
	for _, src := range []string{"(a]", "[a)", "{a)", "(a }"} {
		_, err := syntax.ParseTokens("", src)
		require.Error(t, err, src)
	}
	_, err := syntax.ParseModule("test.rs", "mod m {
  #[task(binds = EXTI0]]
  fn t() {}
}
")
	require.Error(t, err)
	_, err = syntax.ParseModule("test.rs", "mod m {
  struct S;
  const X: [u8; 2) = 0;
}
")
	require.Error(t, err)
}

func TestParseTokens(t *testing.T) {
	trees, err := syntax.ParseTokens("", "late = [a, b], resources = [&x]")
	require.NoError(t, err)
	require.Equal(t, 7, len(trees))
	require.Equal(t, "late", trees[0].Term.Ident)
	require.Equal(t, "=", trees[1].Term.Punct)
	group := trees[2].Term.Group
	require.Equal(t, "[", group.Open())
	require.Equal(t, 3, len(group.Trees()))
	require.Equal(t, "[&x]", trees[6].String())
}

func TestTokens(t *testing.T) {
	tokens, err := syntax.Tokens("", "x: u8 = 0x10u8; // comment")
	require.NoError(t, err)
	names := []string{}
	for _, token := range tokens {
		names = append(names, syntax.TokenName(token.Type)+" "+token.Value)
	}
	require.Equal(t, []string{"Ident x", "Punct :", "Ident u8", "Punct =", "Int 0x10u8", "Punct ;"}, names)
}

func TestIntSuffix(t *testing.T) {
	tests := map[string]string{
		"10":        "",
		"10u8":      "u8",
		"1_000i32":  "i32",
		"0xffusize": "usize",
		"0b1010":    "",
	}
	for lit, suffix := range tests {
		require.Equal(t, suffix, syntax.IntSuffix(lit), lit)
	}
}

func TestSyntaxError(t *testing.T) {
	_, err := syntax.ParseModule("bad.rs", "mod m {\n  fn f( }\n")
	require.Error(t, err)
	perr, ok := err.(participle.Error)
	require.True(t, ok)
	require.Equal(t, 2, perr.Position().Line)
	require.Equal(t, "bad.rs", perr.Position().Filename)
}

func TestParseModuleTrace(t *testing.T) {
	buf := &strings.Builder{}
	module, err := syntax.ParseModuleTrace("trace.rs", "mod m { fn f() {} }", buf)
	require.NoError(t, err)
	require.Equal(t, "m", module.Name.Name)
	require.NotZero(t, buf.Len())
}

func TestGrammar(t *testing.T) {
	grammar := syntax.Grammar()
	require.Contains(t, grammar, "Module")
	require.Contains(t, grammar, "TokenTree")
}
