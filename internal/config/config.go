package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Mode selects the host runner.
type Mode string

const (
	ModeWindow   Mode = "window"
	ModeHeadless Mode = "headless"
	ModeTerminal Mode = "terminal"
)

// EnvPrefix prefixes every environment override, e.g. RAVODASH_HZ.
const EnvPrefix = "RAVODASH"

// ConfigEnv names an explicit config file path.
const ConfigEnv = EnvPrefix + "_CONFIG"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Mode          Mode          `mapstructure:"mode"`
	Demo          bool          `mapstructure:"demo"`
	Hz            int           `mapstructure:"hz"`
	Ticks         uint64        `mapstructure:"ticks"`
	Width         int           `mapstructure:"width"`
	Height        int           `mapstructure:"height"`
	Scale         int           `mapstructure:"scale"`
	BlinkPeriod   time.Duration `mapstructure:"blink_period"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	Snapshot      string        `mapstructure:"snapshot"`
	Debug         bool          `mapstructure:"debug"`
	Verbose       bool          `mapstructure:"verbose"`
	LogFile       string        `mapstructure:"log_file"`
}

// Defaults.
const (
	DefaultMode          = ModeWindow
	DefaultHz            = 60
	DefaultWidth         = 320
	DefaultHeight        = 240
	DefaultScale         = 2
	DefaultBlinkPeriod   = 300 * time.Millisecond
	DefaultSweepInterval = time.Second
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("ravodash", pflag.ContinueOnError)
	fs.String("mode", string(DefaultMode), "Runner: window, headless or terminal")
	fs.Bool("demo", false, "Start with the synthetic sweep instead of live telemetry")
	fs.Int("hz", DefaultHz, "Frame rate")
	fs.Uint64("ticks", 0, "Stop after N frames in headless or terminal mode (0 = run forever)")
	fs.Int("width", DefaultWidth, "Cluster width in pixels")
	fs.Int("height", DefaultHeight, "Cluster height in pixels")
	fs.Int("scale", DefaultScale, "Integer scale of the host framebuffer")
	fs.Duration("blink_period", DefaultBlinkPeriod, "On and off time of critical gauges")
	fs.Duration("sweep_interval", DefaultSweepInterval, "Step interval of the demo sweep")
	fs.String("snapshot", "", "Write the last frame of a headless run to this PNG file")
	fs.Bool("debug", false, "Enable debugging mode")
	fs.Bool("verbose", false, "Enable verbose logging")
	fs.String("log_file", "", "Write JSON logs to this rotating file instead of the console")
	return fs
}

// Load reads ravodash.toml (from $RAVODASH_CONFIG, ./ or /etc), then
// RAVODASH_* environment variables, then the command line args. Later
// sources win.
func Load(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(ConfigEnv); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
	} else {
		v.SetConfigName("ravodash")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// unchanged flags only supply defaults
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Mode = Mode(strings.ToLower(string(cfg.Mode)))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown modes and non-positive sizes, rates and periods.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeWindow, ModeHeadless, ModeTerminal:
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalid, c.Mode)
	}
	for _, f := range []struct {
		name string
		v    int64
	}{
		{"hz", int64(c.Hz)},
		{"width", int64(c.Width)},
		{"height", int64(c.Height)},
		{"scale", int64(c.Scale)},
		{"blink_period", int64(c.BlinkPeriod)},
		{"sweep_interval", int64(c.SweepInterval)},
	} {
		if f.v <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalid, f.name)
		}
	}
	return nil
}
