// Package config loads parser settings from HCL or TOML files.
//
// Both formats use the same keys:
//
//	cores             = 2
//	extern_interrupts = true
//	generators        = false
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/pelletier/go-toml"

	"github.com/irqkit/rtsyntax"
)

// File is the content of a settings file.
type File struct {
	Cores            int  `hcl:"cores,optional" toml:"cores"`
	ExternInterrupts bool `hcl:"extern_interrupts,optional" toml:"extern_interrupts"`
	Generators       bool `hcl:"generators,optional" toml:"generators"`
}

// Load reads a settings file. The format is selected by the file extension,
// ".hcl" or ".toml".
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(path, src)
}

// Decode decodes settings from src. filename selects the format and is used
// in error messages.
func Decode(filename string, src []byte) (*File, error) {
	file := &File{}
	switch ext := filepath.Ext(filename); ext {
	case ".hcl":
		if err := hclsimple.Decode(filename, src, nil, file); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(src, file); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported settings format %q, expected .hcl or .toml", filename, ext)
	}
	if err := file.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return file, nil
}

func (f *File) validate() error {
	if f.Cores < 0 || f.Cores > 255 {
		return fmt.Errorf("cores must be in the range 1...255, not %d", f.Cores)
	}
	return nil
}

// Settings converts the file to parser settings. An absent or zero core
// count means a single core.
func (f *File) Settings() rtsyntax.Settings {
	return rtsyntax.Settings{
		Cores:                uint8(f.Cores),
		ParseExternInterrupt: f.ExternInterrupts,
		ParseGenerators:      f.Generators,
	}
}
