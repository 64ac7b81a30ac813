package rtsyntax

import (
	"errors"
	"io"
	"log/slog"
)

// Settings select the optional parts of the model.
type Settings struct {
	// Cores is the number of processing cores of the target. Zero means 1.
	//
	// With more than one core every init, idle and task function needs a
	// `#[core = N]` attribute, and resources may be marked `#[shared]`.
	Cores uint8

	// ParseExternInterrupt enables `extern "C" { fn NAME(); }` blocks that
	// declare the interrupts available for dispatching software tasks.
	ParseExternInterrupt bool

	// ParseGenerators allows tasks to return
	// `impl Generator<Yield = (), Return = !>`.
	ParseGenerators bool
}

func (s Settings) cores() uint8 {
	if s.Cores == 0 {
		return 1
	}
	return s.Cores
}

// An Option to modify the behaviour of Parse.
type Option func(p *parser) error

// WithSettings replaces all settings.
func WithSettings(settings Settings) Option {
	return func(p *parser) error {
		p.settings = settings
		return nil
	}
}

// Cores sets the number of processing cores of the target.
func Cores(n uint8) Option {
	return func(p *parser) error {
		if n == 0 {
			return errors.New("the number of cores must be at least 1")
		}
		p.settings.Cores = n
		return nil
	}
}

// ExternInterrupts enables extern interrupt blocks.
func ExternInterrupts() Option {
	return func(p *parser) error {
		p.settings.ParseExternInterrupt = true
		return nil
	}
}

// Generators enables generator tasks.
func Generators() Option {
	return func(p *parser) error {
		p.settings.ParseGenerators = true
		return nil
	}
}

// Logger sets the logger used for debug records about item classification.
//
// Nothing is logged by default.
func Logger(log *slog.Logger) Option {
	return func(p *parser) error {
		p.log = log
		return nil
	}
}

// Trace writes a trace of the grammar productions tried while parsing the
// module source to w.
func Trace(w io.Writer) Option {
	return func(p *parser) error {
		p.trace = w
		return nil
	}
}

type parser struct {
	settings Settings
	log      *slog.Logger
	trace    io.Writer
}

func newParser(options []Option) (*parser, error) {
	p := &parser{log: slog.New(slog.DiscardHandler)}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	if p.log == nil {
		p.log = slog.New(slog.DiscardHandler)
	}
	return p, nil
}
