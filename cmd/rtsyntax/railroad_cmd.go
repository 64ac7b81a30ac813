package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2/ebnf"

	"github.com/irqkit/rtsyntax/syntax"
)

type railroadCmd struct {
	Out string `short:"o" help:"Write the HTML page to this file instead of stdout." type:"path"`
}

func (c *railroadCmd) Run() error {
	w := stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return railroad(w, syntax.Grammar())
}

// railroad renders grammar as an HTML page of railroad diagrams using the
// tabatkins/railroad-diagrams script. Productions referenced only once are
// inlined into their single use.
func railroad(w io.Writer, grammar string) error {
	root, err := ebnf.ParseString(grammar)
	if err != nil {
		return err
	}
	d := &diagram{productions: map[string]*production{}}
	for _, p := range root.Productions {
		d.productions[p.Production] = &production{Production: p}
	}
	for _, p := range root.Productions {
		d.count(p.Expression)
	}

	d.WriteString(railroadHeader)
	for i, p := range root.Productions {
		// The first production is the entry point and is always drawn.
		if i > 0 && d.productions[p.Production].inline() {
			continue
		}
		fmt.Fprintf(d, "<h1 id=%q>%s</h1>\n<script>\nDiagram(", p.Production, p.Production)
		if err := d.expression(p.Expression); err != nil {
			return err
		}
		d.WriteString(").addTo();\n</script>\n")
	}
	d.WriteString("</body>\n")
	_, err = io.WriteString(w, d.String())
	return err
}

const railroadHeader = `<!DOCTYPE html>
<style>
body { background-color: hsl(30, 20%, 95%); }
h1 { font-family: sans-serif; font-size: 1em; }
</style>
<link rel='stylesheet' href='railroad-diagrams.css'>
<script src='railroad-diagrams.js'></script>
<body>
`

type production struct {
	*ebnf.Production
	refs int
	// inlining marks a production being inlined, which stops recursion.
	inlining bool
}

func (p *production) inline() bool { return p.refs == 1 }

type diagram struct {
	strings.Builder
	productions map[string]*production
}

// count records references to other productions from expr.
func (d *diagram) count(expr *ebnf.Expression) {
	for _, seq := range expr.Alternatives {
		for _, term := range seq.Terms {
			switch {
			case term.Name != "":
				if p, ok := d.productions[term.Name]; ok {
					p.refs++
				}
			case term.Group != nil:
				d.count(term.Group.Expr)
			}
		}
	}
}

func (d *diagram) expression(expr *ebnf.Expression) error {
	d.WriteString("Choice(0, ")
	for i, seq := range expr.Alternatives {
		if i > 0 {
			d.WriteString(", ")
		}
		d.WriteString("Sequence(")
		for j, term := range seq.Terms {
			if j > 0 {
				d.WriteString(", ")
			}
			if err := d.term(term); err != nil {
				return err
			}
		}
		d.WriteString(")")
	}
	d.WriteString(")")
	return nil
}

func (d *diagram) term(term *ebnf.Term) error {
	if term.Negation {
		d.WriteString("Group(")
	}
	switch term.Repetition {
	case "*":
		d.WriteString("ZeroOrMore(")
	case "+":
		d.WriteString("OneOrMore(")
	case "?":
		d.WriteString("Optional(")
	}
	switch {
	case term.Name != "":
		p, ok := d.productions[term.Name]
		if !ok {
			return fmt.Errorf("undefined production %q", term.Name)
		}
		if p.inline() && !p.inlining {
			p.inlining = true
			err := d.expression(p.Expression)
			p.inlining = false
			if err != nil {
				return err
			}
		} else {
			fmt.Fprintf(d, "NonTerminal(%q, {href: \"#%s\"})", term.Name, term.Name)
		}
	case term.Group != nil:
		lookahead := term.Group.Lookahead != ebnf.LookaheadAssertionNone
		if lookahead {
			d.WriteString("Group(")
		}
		if err := d.expression(term.Group.Expr); err != nil {
			return err
		}
		if lookahead {
			fmt.Fprintf(d, `, "?%c")`, term.Group.Lookahead)
		}
	case term.Literal != "":
		fmt.Fprintf(d, "Terminal(%s)", term.Literal)
	case term.Token != "":
		fmt.Fprintf(d, "NonTerminal(%q)", term.Token)
	default:
		return fmt.Errorf("unsupported grammar term %s", term)
	}
	if term.Repetition != "" {
		d.WriteString(")")
	}
	if term.Negation {
		d.WriteString(`, "~")`)
	}
	return nil
}
