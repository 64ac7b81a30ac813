// Command rtsyntax parses and validates annotated application modules.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

var (
	version = "dev"

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	cli struct {
		Version   kong.VersionFlag
		LogLevel  string `help:"Log level (${enum})." enum:"debug,info,warn,error" default:"warn"`
		LogFormat string `help:"Log format (${enum})." enum:"text,json" default:"text"`

		Check    checkCmd    `cmd:"" help:"Parse and validate application modules."`
		Dump     dumpCmd     `cmd:"" help:"Print the syntax tree or the validated model of a module."`
		Tokens   tokensCmd   `cmd:"" help:"Print the lexer tokens of a source file."`
		EBNF     ebnfCmd     `cmd:"" name:"ebnf" help:"Print the grammar of annotated modules."`
		Railroad railroadCmd `cmd:"" help:"Write railroad diagrams of the grammar as an HTML page."`
		Watch    watchCmd    `cmd:"" help:"Re-run check whenever a file changes."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`A front end for interrupt driven concurrency applications.`),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	kctx.Bind(newLogger(cli.LogLevel, cli.LogFormat, stderr))
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
