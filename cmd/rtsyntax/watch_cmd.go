package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/irqkit/rtsyntax"
)

type watchCmd struct {
	SettingsFlags `embed:""`

	Files []string `arg:"" type:"existingfile" help:"Annotated module source files."`
}

func (c *watchCmd) Run(log *slog.Logger) error {
	options, err := c.options(log)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Directories are watched rather than files, as editors often replace a
	// file on save.
	watched := map[string]bool{}
	for _, file := range c.Files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		watched[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
		report(abs, options)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[event.Name] || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debug("file changed", "file", event.Name, "op", event.Op.String())
			report(event.Name, options)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch failed", "error", err)
		}
	}
}

// report runs check on file, printing any error instead of returning it.
func report(file string, options []rtsyntax.Option) {
	if err := check(stdout, file, "text", options); err != nil {
		fmt.Fprintln(stderr, err)
	}
}
