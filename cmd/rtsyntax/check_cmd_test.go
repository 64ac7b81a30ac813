package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const appSrc = `
#[app(device = pac)]
mod app {
    #[resources]
    struct Resources {
        #[init(0)]
        counter: u32,
        #[lock_free]
        led: Led,
    }

    #[init]
    fn init(_: init::Context) {}

    #[task(binds = EXTI0, priority = 2, resources = [counter, &led])]
    fn button(_: button::Context) {
        static mut N: u32 = 0;
    }

    #[task(capacity = 4)]
    fn log(_: log::Context, x: u32) {}

    extern "C" {
        fn UART0();
    }
}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCheckText(t *testing.T) {
	file := writeFile(t, "app.rs", appSrc)
	flags := SettingsFlags{ExternInterrupts: true}
	options, err := flags.options(slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, check(buf, file, "text", options))
	require.Equal(t, file+": app app\n"+
		"  arg device = pac\n"+
		"  init init\n"+
		"  resource counter: u32 = 0\n"+
		"  late resource led: Led lock_free\n"+
		"  hardware task button binds EXTI0 priority 2 resources [counter, &led] locals N\n"+
		"  software task log priority 1 capacity 4 resources []\n"+
		"  extern interrupt UART0\n"+
		"  0 imports, 0 user items\n", buf.String())
}

func TestCheckJSON(t *testing.T) {
	file := writeFile(t, "app.rs", appSrc)
	flags := SettingsFlags{ExternInterrupts: true}
	options, err := flags.options(slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, check(buf, file, "json", options))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Contains(t, decoded, "HardwareTasks")
	require.Contains(t, decoded, "SoftwareTasks")
}

func TestCheckErrors(t *testing.T) {
	file := writeFile(t, "app.rs", appSrc)
	flags := SettingsFlags{}
	options, err := flags.options(slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	err = check(&bytes.Buffer{}, file, "text", options)
	require.EqualError(t, err, file+":24:12: this item must live outside the `#[app]` module")

	err = check(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.rs"), "text", options)
	require.Error(t, err)
}

func TestSettingsFlagsConfig(t *testing.T) {
	config := writeFile(t, "rtsyntax.toml", "cores = 2\nextern_interrupts = true\n")
	flags := SettingsFlags{Config: config}
	options, err := flags.options(slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	file := writeFile(t, "app.rs", appSrc)
	err = check(&bytes.Buffer{}, file, "text", options)
	require.EqualError(t, err, file+":13:8: core needs to be specified using the `#[core = 0]` attribute")

	flags = SettingsFlags{Config: config, Cores: 1}
	options, err = flags.options(slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.NoError(t, check(&bytes.Buffer{}, file, "text", options))
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log := newLogger("info", "json", buf)
	log.Debug("hidden")
	log.Info("shown", "key", "value")
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "shown", record["msg"])
	require.Equal(t, "value", record["key"])
}
