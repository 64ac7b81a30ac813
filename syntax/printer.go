package syntax

import (
	"strings"
)

// tokenWriter joins tokens with single spaces, except where Rust source
// conventionally has none.
type tokenWriter struct {
	strings.Builder
	prev string
}

var (
	noSpaceBefore = map[string]bool{",": true, ";": true, ".": true, ")": true, "]": true, "::": true, "?": true, ":": true, ">": true}
	noSpaceAfter  = map[string]bool{"(": true, "[": true, ".": true, "::": true, "#": true, "&": true, "!": true, "<": true, "": true}
)

func (w *tokenWriter) token(tok string) {
	if w.Len() > 0 && w.space(tok) {
		w.WriteByte(' ')
	}
	w.WriteString(tok)
	w.prev = tok
}

func (w *tokenWriter) space(tok string) bool {
	switch {
	case noSpaceBefore[tok], noSpaceAfter[w.prev]:
		return false
	case tok == "(" || tok == "[" || tok == "<" || tok == "!":
		return !isWordish(w.prev)
	}
	return true
}

func isWordish(tok string) bool {
	if tok == ")" || tok == "]" || tok == ">" || tok == "!" {
		return true
	}
	if tok == "" {
		return false
	}
	c := tok[0]
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

type writable interface {
	write(w *tokenWriter)
}

func render(n writable) string {
	w := &tokenWriter{}
	n.write(w)
	return w.String()
}

func (i *Ident) String() string { return i.Name }

func (i *Ident) write(w *tokenWriter) { w.token(i.Name) }

func (p *Path) String() string { return render(p) }

func (p *Path) write(w *tokenWriter) {
	if p.Leading {
		w.token("::")
	}
	for i, segment := range p.Segments {
		if i > 0 {
			w.token("::")
		}
		segment.write(w)
	}
}

func (s *PathSegment) write(w *tokenWriter) {
	s.Ident.write(w)
	if s.Args != nil {
		s.Args.write(w)
	}
}

func (g *GenericArgs) write(w *tokenWriter) {
	w.token("<")
	for i, arg := range g.Args {
		if i > 0 {
			w.token(",")
		}
		switch {
		case arg.Lifetime != "":
			w.token(arg.Lifetime)
		case arg.Binding != nil:
			arg.Binding.Name.write(w)
			w.token("=")
			arg.Binding.Type.write(w)
		case arg.Type != nil:
			arg.Type.write(w)
		case arg.Const != nil:
			w.token(arg.Const.String())
		}
	}
	w.token(">")
}

func (t *Type) String() string { return render(t) }

func (t *Type) write(w *tokenWriter) {
	switch {
	case t.Never:
		w.token("!")
	case t.Tuple != nil:
		w.token("(")
		for i, elem := range t.Tuple.Elems {
			if i > 0 {
				w.token(",")
			}
			elem.write(w)
		}
		if t.Tuple.Comma {
			w.token(",")
		}
		w.token(")")
	case t.Ref != nil:
		w.token("&")
		if t.Ref.Lifetime != "" {
			w.token(t.Ref.Lifetime)
		}
		if t.Ref.Mut {
			w.token("mut")
		}
		t.Ref.Elem.write(w)
	case t.Ptr != nil:
		w.token("*" + t.Ptr.Kind)
		t.Ptr.Elem.write(w)
	case t.Array != nil:
		w.token("[")
		t.Array.Elem.write(w)
		if len(t.Array.Len) > 0 {
			w.token(";")
			writeTerms(w, t.Array.Len)
		}
		w.token("]")
	case t.Impl != nil:
		w.token(t.Impl.Keyword)
		writeBounds(w, t.Impl.Bounds)
	case t.BareFn != nil:
		if t.BareFn.Unsafe {
			w.token("unsafe")
		}
		if t.BareFn.Abi != nil {
			t.BareFn.Abi.write(w)
		}
		w.token("fn")
		w.token("(")
		for i, param := range t.BareFn.Params {
			if i > 0 {
				w.token(",")
			}
			param.write(w)
		}
		w.token(")")
		if t.BareFn.Output != nil {
			w.token("->")
			t.BareFn.Output.write(w)
		}
	case t.QSelf != nil:
		w.token("<")
		t.QSelf.Self.write(w)
		if t.QSelf.Trait != nil {
			w.token("as")
			t.QSelf.Trait.write(w)
		}
		w.token(">")
		for _, segment := range t.QSelf.Segments {
			w.token("::")
			segment.write(w)
		}
	case t.Path != nil:
		t.Path.write(w)
	}
}

func writeBounds(w *tokenWriter, bounds []*Bound) {
	for i, bound := range bounds {
		if i > 0 {
			w.token("+")
		}
		switch {
		case bound.Lifetime != "":
			w.token(bound.Lifetime)
		default:
			if bound.Maybe {
				w.token("?")
			}
			bound.Path.write(w)
			if bound.Fn != nil {
				bound.Fn.write(w)
			}
		}
	}
}

func (f *FnSugar) write(w *tokenWriter) {
	w.token("(")
	for i, input := range f.Inputs {
		if i > 0 {
			w.token(",")
		}
		input.write(w)
	}
	w.token(")")
	if f.Output != nil {
		w.token("->")
		f.Output.write(w)
	}
}

func (a *Abi) write(w *tokenWriter) {
	w.token("extern")
	if a.Name != "" {
		w.token(a.Name)
	}
}

func (l *Lit) String() string {
	switch {
	case l.Bool != "":
		return l.Bool
	case l.Int != "":
		return l.Int
	case l.Float != "":
		return l.Float
	case l.Str != "":
		return l.Str
	default:
		return l.Char
	}
}

func (t *TokenTree) String() string { return render(t) }

func (t *TokenTree) write(w *tokenWriter) {
	if t.Semi {
		w.token(";")
		return
	}
	t.Term.write(w)
}

func (t *Term) String() string { return render(t) }

func (t *Term) write(w *tokenWriter) {
	switch {
	case t.Group != nil:
		t.Group.write(w)
	case t.Lit != nil:
		w.token(t.Lit.String())
	case t.Ident != "":
		w.token(t.Ident)
	default:
		w.token(t.Punct)
	}
}

func (g *Group) String() string { return render(g) }

func (g *Group) write(w *tokenWriter) {
	w.token(g.Open())
	writeTrees(w, g.Trees())
	w.token(g.Close())
}

func writeTrees(w *tokenWriter, trees []*TokenTree) {
	for _, tree := range trees {
		tree.write(w)
	}
}

func writeTerms(w *tokenWriter, terms []*Term) {
	for _, term := range terms {
		term.write(w)
	}
}

// TokensString renders a sequence of token trees.
func TokensString(trees []*TokenTree) string {
	w := &tokenWriter{}
	writeTrees(w, trees)
	return w.String()
}

func (a *Attribute) String() string { return render(a) }

func (a *Attribute) write(w *tokenWriter) {
	w.token("#")
	if a.Inner {
		w.token("!")
	}
	w.token("[")
	a.Path.write(w)
	writeTrees(w, a.Tokens)
	w.token("]")
}

func writeAttrs(w *tokenWriter, attrs []*Attribute) {
	for _, attr := range attrs {
		attr.write(w)
	}
}

func (v *Visibility) write(w *tokenWriter) {
	w.token("pub")
	if v.Restrict != nil {
		w.token("(")
		writeTrees(w, v.Restrict)
		w.token(")")
	}
}

func (e *Expr) String() string { return render(e) }

func (e *Expr) write(w *tokenWriter) { writeTerms(w, e.Terms) }

func (p *Pattern) String() string { return render(p) }

func (p *Pattern) write(w *tokenWriter) {
	if p.Ref {
		w.token("ref")
	}
	if p.Mut {
		w.token("mut")
	}
	if p.Name != nil {
		p.Name.write(w)
		return
	}
	w.token("(")
	for i, elem := range p.Tuple.Elems {
		if i > 0 {
			w.token(",")
		}
		elem.write(w)
	}
	w.token(")")
}

func (p *Param) String() string { return render(p) }

func (p *Param) write(w *tokenWriter) {
	writeAttrs(w, p.Attrs)
	switch {
	case p.Variadic:
		w.token("...")
	case p.Self != nil:
		if p.Self.Ref {
			w.token("&")
		}
		if p.Self.Mut {
			w.token("mut")
		}
		w.token("self")
	default:
		p.Pat.write(w)
		w.token(":")
		p.Type.write(w)
	}
}

func (s *Static) String() string { return render(s) }

func (s *Static) write(w *tokenWriter) {
	w.token("static")
	if s.Mut {
		w.token("mut")
	}
	s.Name.write(w)
	w.token(":")
	s.Type.write(w)
	if s.Expr != nil {
		w.token("=")
		s.Expr.write(w)
	}
	w.token(";")
}

func (s *Stmt) String() string { return render(s) }

func (s *Stmt) write(w *tokenWriter) {
	switch {
	case s.Static != nil:
		writeAttrs(w, s.Static.Attrs)
		if s.Static.Vis != nil {
			s.Static.Vis.write(w)
		}
		s.Static.Static.write(w)
	case s.Empty:
		w.token(";")
	default:
		writeTerms(w, s.Terms)
		if s.Semi {
			w.token(";")
		}
	}
}

func (b *Block) String() string { return render(b) }

func (b *Block) write(w *tokenWriter) {
	w.token("{")
	for _, stmt := range b.Stmts {
		stmt.write(w)
	}
	w.token("}")
}

// StmtsString renders a statement list, one statement per line.
func StmtsString(stmts []*Stmt) string {
	lines := make([]string, len(stmts))
	for i, stmt := range stmts {
		lines[i] = stmt.String()
	}
	return strings.Join(lines, "\n")
}

func (u *Use) String() string { return render(u) }

func (u *Use) write(w *tokenWriter) {
	w.token("use")
	writeTerms(w, u.Tree)
	w.token(";")
}

func (f *Fn) String() string { return render(f) }

func (f *Fn) write(w *tokenWriter) {
	if f.Const {
		w.token("const")
	}
	if f.Async {
		w.token("async")
	}
	if f.Unsafe {
		w.token("unsafe")
	}
	if f.Abi != nil {
		f.Abi.write(w)
	}
	w.token("fn")
	f.Name.write(w)
	if f.Generics != nil {
		f.Generics.write(w)
	}
	w.token("(")
	for i, param := range f.Params {
		if i > 0 {
			w.token(",")
		}
		param.write(w)
	}
	w.token(")")
	if f.Output != nil {
		w.token("->")
		f.Output.write(w)
	}
	if f.Where != nil {
		w.token("where")
		for i, pred := range f.Where.Predicates {
			if i > 0 {
				w.token(",")
			}
			if pred.Lifetime != "" {
				w.token(pred.Lifetime)
			} else {
				pred.Type.write(w)
			}
			w.token(":")
			writeBounds(w, pred.Bounds)
		}
	}
	if f.Body != nil {
		f.Body.write(w)
	} else {
		w.token(";")
	}
}

func (g *Generics) write(w *tokenWriter) {
	w.token("<")
	for i, param := range g.Params {
		if i > 0 {
			w.token(",")
		}
		switch {
		case param.Lifetime != "":
			w.token(param.Lifetime)
			for j, bound := range param.Bounds {
				if j == 0 {
					w.token(":")
				} else {
					w.token("+")
				}
				w.token(bound)
			}
		case param.Const != nil:
			w.token("const")
			param.Const.write(w)
			w.token(":")
			param.ConstTy.write(w)
		default:
			param.Name.write(w)
			if len(param.Traits) > 0 {
				w.token(":")
				writeBounds(w, param.Traits)
			}
			if param.Default != nil {
				w.token("=")
				param.Default.write(w)
			}
		}
	}
	w.token(">")
}

func (s *Struct) write(w *tokenWriter) {
	w.token("struct")
	s.Name.write(w)
	if s.Generics != nil {
		s.Generics.write(w)
	}
	switch {
	case s.Named != nil:
		w.token("{")
		for i, field := range s.Named.Fields {
			if i > 0 {
				w.token(",")
			}
			writeAttrs(w, field.Attrs)
			if field.Vis != nil {
				field.Vis.write(w)
			}
			field.Name.write(w)
			w.token(":")
			field.Type.write(w)
		}
		w.token("}")
	case s.Tuple != nil:
		w.token("(")
		for i, field := range s.Tuple.Fields {
			if i > 0 {
				w.token(",")
			}
			writeAttrs(w, field.Attrs)
			if field.Vis != nil {
				field.Vis.write(w)
			}
			field.Type.write(w)
		}
		w.token(")")
		w.token(";")
	default:
		w.token(";")
	}
}

func (v *Verbatim) write(w *tokenWriter) {
	for _, term := range v.Head {
		switch {
		case term.Group != nil:
			term.Group.Group().write(w)
		case term.Lit != nil:
			w.token(term.Lit.String())
		case term.Ident != "":
			w.token(term.Ident)
		default:
			w.token(term.Punct)
		}
	}
	if v.Body != nil {
		v.Body.write(w)
	}
	if v.Semi || v.End {
		w.token(";")
	}
}

func (f *ForeignMod) write(w *tokenWriter) {
	f.Abi.write(w)
	w.token("{")
	for _, item := range f.Items {
		writeAttrs(w, item.Attrs)
		if item.Vis != nil {
			item.Vis.write(w)
		}
		if item.Fn != nil {
			item.Fn.write(w)
		} else {
			item.Other.write(w)
		}
	}
	w.token("}")
}

// String renders the item, including its attributes, as source text.
func (i *Item) String() string { return render(i) }

func (i *Item) write(w *tokenWriter) {
	writeAttrs(w, i.Attrs)
	if i.Vis != nil {
		i.Vis.write(w)
	}
	switch {
	case i.Use != nil:
		i.Use.write(w)
	case i.Struct != nil:
		i.Struct.write(w)
	case i.Foreign != nil:
		i.Foreign.write(w)
	case i.Fn != nil:
		i.Fn.write(w)
	case i.Static != nil:
		i.Static.write(w)
	case i.Verbatim != nil:
		i.Verbatim.write(w)
	}
}
