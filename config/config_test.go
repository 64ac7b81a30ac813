package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irqkit/rtsyntax"
	"github.com/irqkit/rtsyntax/config"
)

func TestDecodeHCL(t *testing.T) {
	file, err := config.Decode("settings.hcl", []byte(`
cores             = 2
extern_interrupts = true
`))
	require.NoError(t, err)
	require.Equal(t, &config.File{Cores: 2, ExternInterrupts: true}, file)
	require.Equal(t, rtsyntax.Settings{Cores: 2, ParseExternInterrupt: true}, file.Settings())
}

func TestDecodeTOML(t *testing.T) {
	file, err := config.Decode("settings.toml", []byte(`
cores = 4
generators = true
`))
	require.NoError(t, err)
	require.Equal(t, rtsyntax.Settings{Cores: 4, ParseGenerators: true}, file.Settings())
}

func TestDecodeDefaults(t *testing.T) {
	file, err := config.Decode("empty.toml", []byte("# defaults\n"))
	require.NoError(t, err)
	require.Equal(t, rtsyntax.Settings{}, file.Settings())
}

func TestDecodeErrors(t *testing.T) {
	_, err := config.Decode("settings.yaml", []byte("cores: 1"))
	require.ErrorContains(t, err, "unsupported settings format")

	_, err = config.Decode("settings.toml", []byte("cores = 300"))
	require.ErrorContains(t, err, "cores must be in the range")

	_, err = config.Decode("settings.hcl", []byte("unknown = 1"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.hcl")
	require.NoError(t, os.WriteFile(path, []byte("generators = true\n"), 0o600))
	file, err := config.Load(path)
	require.NoError(t, err)
	require.True(t, file.Generators)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
