// Package config loads the thermometer settings from flags, environment
// and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sweeney/oled-thermometer/internal/gpio"
	"github.com/sweeney/oled-thermometer/internal/logic"
)

// EnvPrefix prefixes environment overrides, e.g. THERMOMETER_PIN_UP.
const EnvPrefix = "THERMOMETER"

// Display kinds.
const (
	DisplayOLED    = "oled"
	DisplayConsole = "console"
)

// Config holds every runtime setting.
type Config struct {
	Chip      string `mapstructure:"chip"`
	PinUp     int    `mapstructure:"pin-up"`
	PinDown   int    `mapstructure:"pin-down"`
	PinGround int    `mapstructure:"pin-ground"`

	Poll         time.Duration `mapstructure:"poll"`
	Debounce     time.Duration `mapstructure:"debounce"`
	StartupDelay time.Duration `mapstructure:"startup-delay"`
	Heartbeat    time.Duration `mapstructure:"heartbeat"`

	Display  string  `mapstructure:"display"`
	I2CBus   string  `mapstructure:"i2c-bus"`
	I2CAddr  uint16  `mapstructure:"i2c-addr"`
	Width    int     `mapstructure:"width"`
	Height   int     `mapstructure:"height"`
	FontSize float64 `mapstructure:"font-size"`
	AnchorX  int     `mapstructure:"anchor-x"`
	AnchorY  int     `mapstructure:"anchor-y"`
	Frame    bool    `mapstructure:"frame"`

	Min   float64 `mapstructure:"min"`
	Max   float64 `mapstructure:"max"`
	Step  float64 `mapstructure:"step"`
	Start float64 `mapstructure:"start"`

	// Simulate, when set, replaces the GPIO buttons with this press script.
	Simulate string `mapstructure:"simulate"`
}

// Defaults returns the settings of the reference board: a 128x32 SSD1306 on
// the first I²C bus and two buttons with pull-ups.
func Defaults() Config {
	return Config{
		Chip:      gpio.DefaultChip,
		PinUp:     gpio.DefaultPinUp,
		PinDown:   gpio.DefaultPinDown,
		PinGround: gpio.NoPin,

		Poll:         5 * time.Millisecond,
		Debounce:     logic.DefaultDebounce,
		StartupDelay: time.Second,
		Heartbeat:    15 * time.Minute,

		Display:  DisplayOLED,
		I2CAddr:  0x3C,
		Width:    128,
		Height:   32,
		FontSize: 14,
		AnchorX:  0,
		AnchorY:  10,

		Min:   logic.Reading(logic.DefaultMin).Celsius(),
		Max:   logic.Reading(logic.DefaultMax).Celsius(),
		Step:  logic.Reading(logic.DefaultStep).Celsius(),
		Start: logic.Reading(logic.DefaultStart).Celsius(),
	}
}

// RegisterFlags adds one flag per setting to fs, defaulting to Defaults().
func RegisterFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.String("chip", d.Chip, "GPIO chip device name")
	fs.Int("pin-up", d.PinUp, "GPIO line of the up button")
	fs.Int("pin-down", d.PinDown, "GPIO line of the down button")
	fs.Int("pin-ground", d.PinGround, "GPIO line driven low as button ground (-1 to disable)")

	fs.Duration("poll", d.Poll, "Button polling interval")
	fs.Duration("debounce", d.Debounce, "Debounce duration")
	fs.Duration("startup-delay", d.StartupDelay, "Delay after opening the display bus")
	fs.Duration("heartbeat", d.Heartbeat, "Heartbeat log interval (0 to disable)")

	fs.String("display", d.Display, `Display kind ("oled" or "console")`)
	fs.String("i2c-bus", d.I2CBus, "I²C bus name (empty for the first available)")
	fs.Uint16("i2c-addr", d.I2CAddr, "I²C address of the display")
	fs.Int("width", d.Width, "Display width in pixels")
	fs.Int("height", d.Height, "Display height in pixels")
	fs.Float64("font-size", d.FontSize, "Label font size in points")
	fs.Int("anchor-x", d.AnchorX, "Label left edge in pixels")
	fs.Int("anchor-y", d.AnchorY, "Label top edge in pixels")
	fs.Bool("frame", d.Frame, "Console display draws the rendered frame instead of the text")

	fs.Float64("min", d.Min, "Lowest temperature")
	fs.Float64("max", d.Max, "Highest temperature")
	fs.Float64("step", d.Step, "Temperature change per press")
	fs.Float64("start", d.Start, "Temperature at startup")

	fs.String("simulate", d.Simulate, `Button script instead of GPIO ("u" up, "d" down, "b" both, "." pause)`)
}

// NewViper prepares a viper instance reading cfgFile (or thermometer.yaml in
// the usual places when empty), THERMOMETER_* environment variables and the
// flags in fs, in increasing order of precedence.
func NewViper(cfgFile string, fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("thermometer")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath("/etc/thermometer/")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}
	return v, nil
}

// Load reads the config file, if any, and decodes the merged settings.
// A missing config file is only an error when one was named explicitly.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Simulate != "" && !v.IsSet("display") {
		// no panel to drive when the buttons are simulated
		cfg.Display = DisplayConsole
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings for values the loop cannot run with.
func (c Config) Validate() error {
	if err := c.Range().Validate(); err != nil {
		return fmt.Errorf("temperature range: %w", err)
	}
	start := logic.Tenths(c.Start)
	if r := c.Range(); start < r.Min || start > r.Max {
		return fmt.Errorf("start %.1f outside [%.1f, %.1f]", c.Start, c.Min, c.Max)
	}
	if c.Poll <= 0 {
		return fmt.Errorf("poll interval %v must be positive", c.Poll)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("debounce %v must not be negative", c.Debounce)
	}
	if c.Simulate == "" && c.PinUp == c.PinDown {
		return fmt.Errorf("up and down share pin %d", c.PinUp)
	}
	if c.PinGround != gpio.NoPin && (c.PinGround == c.PinUp || c.PinGround == c.PinDown) {
		return fmt.Errorf("ground pin %d is also a button pin", c.PinGround)
	}
	switch c.Display {
	case DisplayOLED, DisplayConsole:
	default:
		return fmt.Errorf("unknown display %q", c.Display)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("display size %dx%d must be positive", c.Width, c.Height)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font size %v must be positive", c.FontSize)
	}
	return nil
}

// Range returns the temperature rule in tenths of a degree.
func (c Config) Range() logic.Range {
	return logic.Range{
		Min:  logic.Tenths(c.Min),
		Max:  logic.Tenths(c.Max),
		Step: logic.Tenths(c.Step),
	}
}

// StartReading returns the start temperature in tenths of a degree.
func (c Config) StartReading() logic.Reading {
	return logic.Tenths(c.Start)
}

// Pins returns the GPIO wiring.
func (c Config) Pins() gpio.Pins {
	return gpio.Pins{Up: c.PinUp, Down: c.PinDown, Ground: c.PinGround}
}
