package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeney/oled-thermometer/internal/gpio"
	"github.com/sweeney/oled-thermometer/internal/logic"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thermometer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func load(t *testing.T, cfgFile string, args ...string) (Config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))

	v, err := NewViper(cfgFile, fs)
	require.NoError(t, err)
	return Load(v)
}

func TestDefaults(t *testing.T) {
	// GIVEN
	path := writeConfig(t, "")

	// WHEN
	cfg, err := load(t, path)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, logic.DefaultRange, cfg.Range())
	assert.Equal(t, logic.Reading(logic.DefaultStart), cfg.StartReading())
	assert.Equal(t, gpio.DefaultPins(), cfg.Pins())
	assert.Equal(t, uint16(0x3C), cfg.I2CAddr)
	assert.Equal(t, 128, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
	assert.Equal(t, 10, cfg.AnchorY)
}

func TestConfigFile(t *testing.T) {
	// GIVEN
	path := writeConfig(t, `
pin-up: 20
pin-down: 21
pin-ground: 9
poll: 2ms
debounce: 25ms
display: console
i2c-addr: 0x3d
min: 35
max: 38.5
start: 36.6
`)

	// WHEN
	cfg, err := load(t, path)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.PinUp)
	assert.Equal(t, 21, cfg.PinDown)
	assert.Equal(t, 9, cfg.PinGround)
	assert.Equal(t, 2*time.Millisecond, cfg.Poll)
	assert.Equal(t, 25*time.Millisecond, cfg.Debounce)
	assert.Equal(t, DisplayConsole, cfg.Display)
	assert.Equal(t, uint16(0x3D), cfg.I2CAddr)
	assert.Equal(t, logic.Range{Min: 350, Max: 385, Step: 1}, cfg.Range())
	assert.Equal(t, logic.Reading(366), cfg.StartReading())
}

func TestFlagsOverrideFile(t *testing.T) {
	// GIVEN
	path := writeConfig(t, "display: console\npin-up: 20\n")

	// WHEN
	cfg, err := load(t, path, "--pin-up=22", "--start=31.5")

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 22, cfg.PinUp)
	assert.Equal(t, DisplayConsole, cfg.Display)
	assert.Equal(t, logic.Reading(315), cfg.StartReading())
}

func TestEnvOverridesFile(t *testing.T) {
	// GIVEN
	path := writeConfig(t, "pin-down: 21\n")
	t.Setenv("THERMOMETER_PIN_DOWN", "23")
	t.Setenv("THERMOMETER_SIMULATE", "uud")

	// WHEN
	cfg, err := load(t, path)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 23, cfg.PinDown)
	assert.Equal(t, "uud", cfg.Simulate)
}

func TestSimulateDefaultsToConsole(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := load(t, path, "--simulate=uu")
	require.NoError(t, err)
	assert.Equal(t, DisplayConsole, cfg.Display)

	cfg, err = load(t, path, "--simulate=uu", "--display=oled")
	require.NoError(t, err)
	assert.Equal(t, DisplayOLED, cfg.Display)
}

func TestMissingNamedFile(t *testing.T) {
	_, err := load(t, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"min above max", func(c *Config) { c.Min, c.Max = 40, 30 }},
		{"zero step", func(c *Config) { c.Step = 0 }},
		{"start below min", func(c *Config) { c.Start = 29.9 }},
		{"start above max", func(c *Config) { c.Start = 40.1 }},
		{"zero poll", func(c *Config) { c.Poll = 0 }},
		{"negative debounce", func(c *Config) { c.Debounce = -time.Millisecond }},
		{"shared pins", func(c *Config) { c.PinDown = c.PinUp }},
		{"ground on button", func(c *Config) { c.PinGround = c.PinUp }},
		{"unknown display", func(c *Config) { c.Display = "lcd" }},
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"zero font", func(c *Config) { c.FontSize = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateSharedPinsAllowedWhenSimulating(t *testing.T) {
	cfg := Defaults()
	cfg.PinDown = cfg.PinUp
	cfg.Simulate = "u"
	assert.NoError(t, cfg.Validate())
}
