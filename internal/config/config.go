package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/timestables/internal/problemgen"
	"github.com/abhisek/timestables/internal/session"
)

// EnvPrefix is the prefix for environment overrides, e.g. TIMESTABLES_MAX_FACTOR.
const EnvPrefix = "TIMESTABLES"

// ErrInvalidMaxFactor is returned when the configured table size is outside [2, 12].
var ErrInvalidMaxFactor = errors.New("invalid max factor")

// Config holds startup settings. It is read once and never written back.
type Config struct {
	MaxFactor int    `mapstructure:"max_factor"`
	Questions int    `mapstructure:"questions"`
	Seed      uint64 `mapstructure:"seed"`
	LogFile   string `mapstructure:"log_file"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// flagKeys maps config keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"max_factor": "max-factor",
	"questions":  "questions",
	"seed":       "seed",
	"log_file":   "log-file",
	"log_level":  "log-level",
	"log_format": "log-format",
}

// Load resolves configuration with precedence flags > env > config file > defaults.
// configPath names an explicit TOML file; when empty the default location is
// tried and silently skipped if absent. flags may be nil.
func Load(flags *pflag.FlagSet, configPath string) (Config, error) {
	v := viper.New()

	def := session.DefaultConfiguration()
	v.SetDefault("max_factor", def.MaxFactor)
	v.SetDefault("questions", int(def.QuestionCount))
	v.SetDefault("seed", 0)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetConfigType("toml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else if dir, err := defaultConfigDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Session validates the quiz settings and converts them for the session.
func (c Config) Session() (session.Configuration, error) {
	if c.MaxFactor < problemgen.MinFactor || c.MaxFactor > problemgen.MaxTable {
		return session.Configuration{}, fmt.Errorf("%w: %d (choose %d to %d)",
			ErrInvalidMaxFactor, c.MaxFactor, problemgen.MinFactor, problemgen.MaxTable)
	}
	qc, err := session.ParseQuestionCount(c.Questions)
	if err != nil {
		return session.Configuration{}, err
	}
	return session.Configuration{MaxFactor: c.MaxFactor, QuestionCount: qc}, nil
}

// Generator returns a seeded generator when a seed is configured, otherwise
// a randomly seeded one.
func (c Config) Generator() problemgen.Generator {
	if c.Seed != 0 {
		return problemgen.NewSeeded(c.Seed)
	}
	return problemgen.NewRandom()
}

// defaultConfigDir resolves the config directory in priority order:
// 1. $XDG_CONFIG_HOME/timestables
// 2. ~/.config/timestables
func defaultConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "timestables"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "timestables"), nil
}
