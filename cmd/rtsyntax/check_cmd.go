package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/irqkit/rtsyntax"
	"github.com/irqkit/rtsyntax/ast"
	"github.com/irqkit/rtsyntax/config"
)

type SettingsFlags struct {
	Cores            uint8  `help:"Number of processing cores of the target (default 1)."`
	ExternInterrupts bool   `help:"Accept extern interrupt blocks."`
	Generators       bool   `help:"Accept generator tasks."`
	Config           string `help:"Settings file (.hcl or .toml); flags override its values." type:"existingfile"`
}

func (f *SettingsFlags) options(log *slog.Logger) ([]rtsyntax.Option, error) {
	settings := rtsyntax.Settings{}
	if f.Config != "" {
		file, err := config.Load(f.Config)
		if err != nil {
			return nil, err
		}
		settings = file.Settings()
		log.Debug("loaded settings", "file", f.Config, "settings", fmt.Sprintf("%+v", settings))
	}
	if f.Cores != 0 {
		settings.Cores = f.Cores
	}
	if f.ExternInterrupts {
		settings.ParseExternInterrupt = true
	}
	if f.Generators {
		settings.ParseGenerators = true
	}
	return []rtsyntax.Option{rtsyntax.WithSettings(settings), rtsyntax.Logger(log)}, nil
}

type checkCmd struct {
	SettingsFlags `embed:""`

	Format string   `help:"Output format (${enum})." enum:"text,json" default:"text"`
	Trace  bool     `help:"Trace the grammar productions tried to stderr."`
	Files  []string `arg:"" type:"existingfile" help:"Annotated module source files."`
}

func (c *checkCmd) Run(log *slog.Logger) error {
	options, err := c.options(log)
	if err != nil {
		return err
	}
	if c.Trace {
		options = append(options, rtsyntax.Trace(stderr))
	}
	for _, file := range c.Files {
		if err := check(stdout, file, c.Format, options); err != nil {
			return err
		}
	}
	return nil
}

func check(w io.Writer, filename, format string, options []rtsyntax.Option) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	app, err := rtsyntax.Parse(filename, src, options...)
	if err != nil {
		return err
	}
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(app)
	}
	summarize(w, filename, app)
	return nil
}

// summarize writes a one line per entity overview of app.
func summarize(w io.Writer, filename string, app *ast.App) {
	fmt.Fprintf(w, "%s: app %s\n", filename, app.Name)
	for name, value := range app.Args.Custom.All() {
		fmt.Fprintf(w, "  arg %s = %s\n", name, value)
	}
	if app.Init != nil {
		fmt.Fprintf(w, "  init %s%s%s\n", app.Init.Name, core(app.Init.Core), locals(app.Init.Locals))
	}
	if app.Idle != nil {
		fmt.Fprintf(w, "  idle %s resources %s%s%s\n", app.Idle.Name, &app.Idle.Args.Resources, core(app.Idle.Core), locals(app.Idle.Locals))
	}
	for name, res := range app.Resources.All() {
		fmt.Fprintf(w, "  resource %s: %s = %s%s\n", name, res.Type, res.Expr, properties(res.Properties))
	}
	for name, res := range app.LateResources.All() {
		fmt.Fprintf(w, "  late resource %s: %s%s\n", name, res.Type, properties(res.Properties))
	}
	for name, task := range app.HardwareTasks.All() {
		fmt.Fprintf(w, "  hardware task %s binds %s priority %d resources %s%s%s\n",
			name, task.Args.Binds, task.Args.Priority, &task.Args.Resources, core(task.Core), locals(task.Locals))
	}
	for name, task := range app.SoftwareTasks.All() {
		fmt.Fprintf(w, "  software task %s priority %d capacity %d resources %s%s%s\n",
			name, task.Args.Priority, task.Args.Capacity, &task.Args.Resources, core(task.Core), locals(task.Locals))
	}
	for name := range app.Args.ExternInterrupts.All() {
		fmt.Fprintf(w, "  extern interrupt %s\n", name)
	}
	fmt.Fprintf(w, "  %d imports, %d user items\n", len(app.UserImports), len(app.UserCode))
}

func core(n uint8) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf(" core %d", n)
}

func locals(m ast.Map[*ast.Local]) string {
	if m.Len() == 0 {
		return ""
	}
	return " locals " + strings.Join(m.Keys(), ", ")
}

func properties(props ast.ResourceProperties) string {
	out := ""
	if props.TaskLocal {
		out += " task_local"
	}
	if props.LockFree {
		out += " lock_free"
	}
	if props.Shared {
		out += " shared"
	}
	return out
}
