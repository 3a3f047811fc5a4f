// Package configuration builds mikrolog loggers from files and the environment.
//
// Values are read, lowest precedence first, from defaults, config files
// (YAML, JSON or TOML), .env files and MIKROLOG_* environment variables:
//
//	MIKROLOG_LEVEL=warn
//	MIKROLOG_FILE=app.log
//	MIKROLOG_FILELEVEL=info
//	MIKROLOG_SERIAL_PORT=/dev/ttyUSB0
package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/willibrandon/mikrolog/core"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MIKROLOG"

// Default targets.
const (
	TargetConsole = "console"
	TargetSerial  = "serial"
	TargetNone    = "none"
)

// Gate kinds.
const (
	GateNone      = "none"
	GateMutex     = "mutex"
	GateSemaphore = "semaphore"
)

// DotEnvPaths are tried by Load in addition to the paths it is given.
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
}

// Config describes a logger.
type Config struct {
	Level       string        `mapstructure:"level"`
	Quiet       bool          `mapstructure:"quiet"`
	Target      string        `mapstructure:"target"`
	File        string        `mapstructure:"file"`
	FileLevel   string        `mapstructure:"fileLevel"`
	Serial      SerialConfig  `mapstructure:"serial"`
	Gate        string        `mapstructure:"gate"`
	GateTimeout time.Duration `mapstructure:"gateTimeout"`
	Capacity    int           `mapstructure:"capacity"`
}

// SerialConfig selects the UART used by the serial target.
type SerialConfig struct {
	Port string `mapstructure:"port"`
	Baud int    `mapstructure:"baud"`
}

// Load reads the configuration. Paths ending in .env are loaded into the
// process environment; other paths are merged as config files in order.
// Missing .env files are ignored; missing config files are an error.
func Load(paths ...string) (*Config, error) {
	loadDotEnv(DotEnvPaths)

	v := viper.New()
	setDefaults(v)

	for _, path := range paths {
		if isDotEnv(path) {
			if err := godotenv.Load(path); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", path, err)
			}
			continue
		}
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("level", "trace")
	v.SetDefault("quiet", false)
	v.SetDefault("target", TargetConsole)
	v.SetDefault("file", "")
	v.SetDefault("fileLevel", "trace")
	v.SetDefault("serial.port", "")
	v.SetDefault("serial.baud", 115200)
	v.SetDefault("gate", GateNone)
	v.SetDefault("gateTimeout", "0s")
	v.SetDefault("capacity", 32)
}

// loadDotEnv loads every existing file in paths. Variables already set in
// the environment win.
func loadDotEnv(paths []string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}
}

func isDotEnv(path string) bool {
	base := filepath.Base(path)
	return base == ".env" || filepath.Ext(base) == ".env"
}

// Validate checks the enumerated fields and the levels.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if _, err := ParseLevel(c.FileLevel); err != nil {
		return fmt.Errorf("fileLevel: %w", err)
	}

	switch strings.ToLower(c.Target) {
	case "", TargetConsole, TargetNone:
	case TargetSerial:
		if c.Serial.Port == "" {
			return fmt.Errorf("target %q requires serial.port", TargetSerial)
		}
	default:
		return fmt.Errorf("unknown target %q", c.Target)
	}

	switch strings.ToLower(c.Gate) {
	case "", GateNone, GateMutex, GateSemaphore:
	default:
		return fmt.Errorf("unknown gate %q", c.Gate)
	}

	if c.GateTimeout < 0 {
		return fmt.Errorf("gateTimeout must not be negative, got %s", c.GateTimeout)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", c.Capacity)
	}
	return nil
}

// ParseLevel parses a level name; an empty string is TRACE.
func ParseLevel(levelStr string) (core.Level, error) {
	if levelStr == "" {
		return core.TraceLevel, nil
	}
	return core.ParseLevel(levelStr)
}
