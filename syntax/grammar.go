package syntax

import "github.com/alecthomas/participle/v2/lexer"

// Module is an annotated `mod NAME { ... }` declaration.
type Module struct {
	Pos lexer.Position

	Attrs []*Attribute `@@*`
	Vis   *Visibility  `@@?`
	Name  *Ident       `"mod" @@ "{"`
	Items []*Item      `@@* "}"`
}

// Ident is an identifier together with its position.
type Ident struct {
	Pos lexer.Position

	Name string `@Ident`
}

// Attribute is an outer `#[...]` or inner `#![...]` attribute.
//
// Everything following the attribute path is kept as token trees, eg. the
// parenthesized group of `#[task(binds = EXTI0)]` or the `=` and literal of
// `#[core = 1]`.
type Attribute struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Inner  bool         `"#" @"!"? "["`
	Path   *Path        `@@`
	Tokens []*TokenTree `@@* "]"`
}

// Visibility is a `pub` or `pub(restriction)` marker.
type Visibility struct {
	Pos lexer.Position

	Pub      bool         `@"pub"`
	Restrict []*TokenTree `( "(" @@* ")" )?`
}

// TokenTree is a single token or a delimited group of token trees.
type TokenTree struct {
	Pos lexer.Position

	Term *Term `  @@`
	Semi bool  `| @";"`
}

// Term is a token tree that is not a `;`.
type Term struct {
	Pos lexer.Position

	Group *Group `  @@`
	Lit   *Lit   `| @@`
	Ident string `| @Ident`
	Punct string `| @~( "(" | ")" | "[" | "]" | "{" | "}" | ";" )`
}

// Group is a `(...)`, `[...]` or `{...}` delimited sequence of token trees.
// Exactly one of Paren, Bracket and Brace is set.
type Group struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Paren   *Parens   `  @@`
	Bracket *Brackets `| @@`
	Brace   *Braces   `| @@`
}

// Parens is the content of a `(...)` group.
type Parens struct {
	Trees []*TokenTree `"(" @@* ")"`
}

// Brackets is the content of a `[...]` group.
type Brackets struct {
	Trees []*TokenTree `"[" @@* "]"`
}

// Braces is the content of a `{...}` group.
type Braces struct {
	Trees []*TokenTree `"{" @@* "}"`
}

// Open returns the opening delimiter of the group.
func (g *Group) Open() string {
	switch {
	case g.Paren != nil:
		return "("
	case g.Bracket != nil:
		return "["
	default:
		return "{"
	}
}

// Close returns the closing delimiter of the group.
func (g *Group) Close() string {
	switch {
	case g.Paren != nil:
		return ")"
	case g.Bracket != nil:
		return "]"
	default:
		return "}"
	}
}

// Trees returns the token trees between the delimiters.
func (g *Group) Trees() []*TokenTree {
	switch {
	case g.Paren != nil:
		return g.Paren.Trees
	case g.Bracket != nil:
		return g.Bracket.Trees
	case g.Brace != nil:
		return g.Brace.Trees
	}
	return nil
}

// Lit is a literal token.
type Lit struct {
	Pos lexer.Position

	Bool  string `  @( "true" | "false" )`
	Int   string `| @Int`
	Float string `| @Float`
	Str   string `| @String`
	Char  string `| @Char`
}

// Path is a `::` separated path, eg. `init::Context` or `Vec<u8>`.
type Path struct {
	Pos lexer.Position

	Leading  bool           `@"::"?`
	Segments []*PathSegment `@@ ( "::" @@ )*`
}

// PathSegment is one identifier of a path with optional generic arguments.
type PathSegment struct {
	Pos lexer.Position

	Ident *Ident       `@@`
	Args  *GenericArgs `( "::"? @@ )?`
}

// GenericArgs is an angle bracketed generic argument list.
type GenericArgs struct {
	Pos lexer.Position

	Args []*GenericArg `"<" ( @@ ( "," @@ )* ","? )? ">"`
}

// GenericArg is a lifetime, an associated type binding, a type or a literal.
type GenericArg struct {
	Pos lexer.Position

	Lifetime string   `  @Lifetime`
	Binding  *Binding `| @@`
	Type     *Type    `| @@`
	Const    *Lit     `| @@`
}

// Binding is an associated type binding such as `Yield = ()`.
type Binding struct {
	Pos lexer.Position

	Name *Ident `@@ "="`
	Type *Type  `@@`
}

// Type is a type expression.
type Type struct {
	Pos lexer.Position

	Never  bool        `  @"!"`
	Tuple  *TupleType  `| @@`
	Ref    *RefType    `| @@`
	Ptr    *PtrType    `| @@`
	Array  *ArrayType  `| @@`
	Impl   *ImplType   `| @@`
	BareFn *BareFnType `| @@`
	QSelf  *QSelfType  `| @@`
	Path   *Path       `| @@`
}

// QSelfType is a qualified path such as `<T as Trait>::Assoc` or `<T>::Assoc`.
type QSelfType struct {
	Pos lexer.Position

	Self     *Type          `"<" @@`
	Trait    *Path          `( "as" @@ )? ">"`
	Segments []*PathSegment `( "::" @@ )+`
}

// TupleType is `(A, B)`; the unit type `()` has no elements.
type TupleType struct {
	Pos lexer.Position

	Elems []*Type `"(" ( @@ ( "," @@ )* )?`
	Comma bool    `@","? ")"`
}

// RefType is `&'a mut T`.
type RefType struct {
	Pos lexer.Position

	Lifetime string `( "&" | "&&" ) @Lifetime?`
	Mut      bool   `@"mut"?`
	Elem     *Type  `@@`
}

// PtrType is `*const T` or `*mut T`.
type PtrType struct {
	Pos lexer.Position

	Kind string `"*" @( "const" | "mut" )`
	Elem *Type  `@@`
}

// ArrayType is `[T]` or `[T; N]`.
type ArrayType struct {
	Pos lexer.Position

	Elem *Type   `"[" @@`
	Len  []*Term `( ";" @@+ )? "]"`
}

// ImplType is `impl Bound + ...` or `dyn Bound + ...`.
type ImplType struct {
	Pos lexer.Position

	Keyword string   `@( "impl" | "dyn" )`
	Bounds  []*Bound `@@ ( "+" @@ )*`
}

// Bound is a trait or lifetime bound. Fn is set for the parenthesized
// arguments of `Fn(A) -> B` style bounds.
type Bound struct {
	Pos lexer.Position

	Lifetime string   `  @Lifetime`
	Maybe    bool     `| @"?"?`
	Path     *Path    `  @@`
	Fn       *FnSugar `  @@?`
}

// FnSugar is the `(A, B) -> C` argument list of a `Fn`, `FnMut` or `FnOnce`
// bound.
type FnSugar struct {
	Pos lexer.Position

	Inputs []*Type `"(" ( @@ ( "," @@ )* ","? )? ")"`
	Output *Type   `( "->" @@ )?`
}

// BareFnType is a function pointer type such as `extern "C" fn(u8) -> u8`.
type BareFnType struct {
	Pos lexer.Position

	Unsafe bool    `@"unsafe"?`
	Abi    *Abi    `@@?`
	Params []*Type `"fn" "(" ( @@ ( "," @@ )* ","? )? ")"`
	Output *Type   `( "->" @@ )?`
}

// Abi is an `extern` marker with an optional ABI string.
type Abi struct {
	Pos lexer.Position

	Extern bool   `@"extern"`
	Name   string `@String?`
}

// Item is a declaration inside the annotated module.
type Item struct {
	Pos lexer.Position

	Attrs    []*Attribute `@@*`
	Vis      *Visibility  `@@?`
	Use      *Use         `(  @@`
	Struct   *Struct      ` | @@`
	Foreign  *ForeignMod  ` | @@`
	Fn       *Fn          ` | @@`
	Static   *Static      ` | @@`
	Verbatim *Verbatim    ` | @@ )`
}

// Use is a `use` declaration.
type Use struct {
	Pos lexer.Position

	Tree []*Term `"use" @@+ ";"`
}

// Struct is a `struct` declaration.
type Struct struct {
	Pos lexer.Position

	Name     *Ident       `"struct" @@`
	Generics *Generics    `@@?`
	Named    *NamedFields `(  @@`
	Tuple    *TupleFields ` | @@ ";"`
	Unit     bool         ` | @";" )`
}

// NamedFields is the `{ a: A, b: B }` body of a struct.
type NamedFields struct {
	Pos lexer.Position

	Fields []*Field `"{" ( @@ ( "," @@ )* ","? )? "}"`
}

// Field is a named struct field.
type Field struct {
	Pos lexer.Position

	Attrs []*Attribute `@@*`
	Vis   *Visibility  `@@?`
	Name  *Ident       `@@ ":"`
	Type  *Type        `@@`
}

// TupleFields is the `(A, B)` body of a tuple struct.
type TupleFields struct {
	Pos lexer.Position

	Fields []*TupleField `"(" ( @@ ( "," @@ )* ","? )? ")"`
}

// TupleField is an unnamed struct field.
type TupleField struct {
	Pos lexer.Position

	Attrs []*Attribute `@@*`
	Vis   *Visibility  `@@?`
	Type  *Type        `@@`
}

// ForeignMod is an `extern "abi" { ... }` block.
type ForeignMod struct {
	Pos lexer.Position

	Abi   *Abi           `@@ "{"`
	Items []*ForeignItem `@@* "}"`
}

// ForeignItem is a declaration inside a foreign block.
type ForeignItem struct {
	Pos lexer.Position

	Attrs []*Attribute `@@*`
	Vis   *Visibility  `@@?`
	Fn    *Fn          `(  @@`
	Other *Verbatim    ` | @@ )`
}

// Fn is a function declaration, with or without a body.
type Fn struct {
	Pos lexer.Position

	Const    bool      `@"const"?`
	Async    bool      `@"async"?`
	Unsafe   bool      `@"unsafe"?`
	Abi      *Abi      `@@?`
	Name     *Ident    `"fn" @@`
	Generics *Generics `@@?`
	Params   []*Param  `"(" ( @@ ( "," @@ )* ","? )? ")"`
	Output   *Type     `( "->" @@ )?`
	Where    *Where    `@@?`
	Body     *Block    `(  @@`
	NoBody   bool      ` | @";" )`
}

// Generics is a generic parameter list such as `<'a, T: Copy, const N: usize>`.
type Generics struct {
	Pos lexer.Position

	Params []*GenericParam `"<" ( @@ ( "," @@ )* ","? )? ">"`
}

// GenericParam is a single generic parameter.
type GenericParam struct {
	Pos lexer.Position

	Lifetime string   `(  @Lifetime`
	Bounds   []string `   ( ":" @Lifetime ( "+" @Lifetime )* )?`
	Const    *Ident   ` | "const" @@ ":"`
	ConstTy  *Type    `   @@`
	Name     *Ident   ` | @@`
	Traits   []*Bound `   ( ":" @@ ( "+" @@ )* )?`
	Default  *Type    `   ( "=" @@ )? )`
}

// Where is a `where` clause.
type Where struct {
	Pos lexer.Position

	Predicates []*WherePredicate `"where" @@ ( "," @@ )* ","?`
}

// WherePredicate is `T: Bound + ...` or `'a: 'b`.
type WherePredicate struct {
	Pos lexer.Position

	Lifetime string   `(  @Lifetime`
	Type     *Type    ` | @@ ) ":"`
	Bounds   []*Bound `@@ ( "+" @@ )*`
}

// Param is a function parameter.
type Param struct {
	Pos lexer.Position

	Attrs    []*Attribute `@@*`
	Variadic bool         `(  @"..."`
	Self     *SelfParam   ` | @@`
	Pat      *Pattern     ` | @@ ":"`
	Type     *Type        `   @@ )`
}

// SelfParam is a `self`, `&self` or `&mut self` receiver.
type SelfParam struct {
	Pos lexer.Position

	Ref  bool `@"&"?`
	Mut  bool `@"mut"?`
	Self bool `@"self"`
}

// Pattern is a binding pattern in parameter position.
type Pattern struct {
	Pos lexer.Position

	Ref   bool      `@"ref"?`
	Mut   bool      `@"mut"?`
	Name  *Ident    `(  @@`
	Tuple *TuplePat ` | @@ )`
}

// TuplePat is a `(a, b)` destructuring pattern.
type TuplePat struct {
	Pos lexer.Position

	Elems []*Pattern `"(" ( @@ ( "," @@ )* ","? )? ")"`
}

// Block is a `{ ... }` statement list.
type Block struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Stmts []*Stmt `"{" @@* "}"`
}

// Stmt is a statement of a function body.
//
// Only `static` items are given structure; every other statement is kept as
// the run of token trees up to its terminating `;` (or the end of the block).
type Stmt struct {
	Pos lexer.Position

	Static *StaticStmt `  @@`
	Terms  []*Term     `| @@+`
	Semi   bool        `  @";"?`
	Empty  bool        `| @";"`
}

// StaticStmt is a `static` item in statement position.
type StaticStmt struct {
	Pos lexer.Position

	Attrs  []*Attribute `@@*`
	Vis    *Visibility  `@@?`
	Static *Static      `@@`
}

// Static is `static [mut] NAME: TYPE = EXPR;`.
type Static struct {
	Pos lexer.Position

	Mut  bool   `"static" @"mut"?`
	Name *Ident `@@ ":"`
	Type *Type  `@@`
	Expr *Expr  `( "=" @@ )? ";"`
}

// Expr is an expression kept as a run of token trees.
type Expr struct {
	Pos lexer.Position

	Terms []*Term `@@+`
}

// Verbatim is any other item, kept as tokens up to a terminating `;` or
// brace delimited body. Functions are never verbatim: a function that does not
// match Fn is a syntax error.
type Verbatim struct {
	Pos lexer.Position

	Head []*HeadTerm `(?! ( "const" | "async" | "unsafe" | "extern" | String )* "fn" ) @@*`
	Body *Group      `(  @@`
	Semi bool        `   @";"?`
	End  bool        ` | @";" )`
}

// HeadTerm is a term that can't start the body of a verbatim item.
type HeadTerm struct {
	Pos lexer.Position

	Group *HeadGroup `  @@`
	Lit   *Lit       `| @@`
	Ident string     `| @Ident`
	Punct string     `| @~( "(" | ")" | "[" | "]" | "{" | "}" | ";" )`
}

// HeadGroup is a parenthesized or bracketed group inside a verbatim item head.
type HeadGroup struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Paren   *Parens   `  @@`
	Bracket *Brackets `| @@`
}

// Group returns g as a general token tree group.
func (g *HeadGroup) Group() *Group {
	return &Group{Pos: g.Pos, EndPos: g.EndPos, Paren: g.Paren, Bracket: g.Bracket}
}
