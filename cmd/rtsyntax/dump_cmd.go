package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/repr"

	"github.com/irqkit/rtsyntax"
	"github.com/irqkit/rtsyntax/syntax"
)

type dumpCmd struct {
	SettingsFlags `embed:""`

	Model bool   `help:"Dump the validated model instead of the syntax tree."`
	File  string `arg:"" type:"existingfile" help:"Annotated module source file."`
}

func (c *dumpCmd) Run(log *slog.Logger) error {
	src, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	printer := repr.New(stdout, repr.Indent("  "), repr.OmitEmpty(true))
	if !c.Model {
		module, err := syntax.ParseModule(c.File, string(src))
		if err != nil {
			return err
		}
		printer.Println(module)
		return nil
	}
	options, err := c.options(log)
	if err != nil {
		return err
	}
	app, err := rtsyntax.Parse(c.File, src, options...)
	if err != nil {
		return err
	}
	printer.Println(app)
	return nil
}

type tokensCmd struct {
	File string `arg:"" type:"existingfile" help:"Source file."`
}

func (c *tokensCmd) Run() error {
	src, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	tokens, err := syntax.Tokens(c.File, string(src))
	if err != nil {
		return err
	}
	for _, token := range tokens {
		fmt.Fprintf(stdout, "%d:%d\t%s\t%s\n", token.Pos.Line, token.Pos.Column, syntax.TokenName(token.Type), token.Value)
	}
	return nil
}

type ebnfCmd struct{}

func (c *ebnfCmd) Run() error {
	fmt.Fprintln(stdout, syntax.Grammar())
	return nil
}
