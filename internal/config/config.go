// Package config loads paperqa settings from defaults, config.yaml, the
// environment and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/thywilljoshua/paperqa/internal/ai"
	"github.com/thywilljoshua/paperqa/internal/logging"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	AI struct {
		Provider           string  `mapstructure:"provider" yaml:"provider"`
		Model              string  `mapstructure:"model" yaml:"model"`
		BaseURL            string  `mapstructure:"base_url" yaml:"base_url"`
		APIKey             string  `mapstructure:"api_key" yaml:"-"`
		OpenAIKey          string  `mapstructure:"openai_api_key" yaml:"-"`
		GeminiKey          string  `mapstructure:"gemini_api_key" yaml:"-"`
		SummaryTemperature float32 `mapstructure:"summary_temperature" yaml:"summary_temperature"`
		AnswerTemperature  float32 `mapstructure:"answer_temperature" yaml:"answer_temperature"`
	} `mapstructure:"ai" yaml:"ai"`

	Summary struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Focus   string `mapstructure:"focus" yaml:"focus"`
	} `mapstructure:"summary" yaml:"summary"`

	PDF struct {
		Preflight bool `mapstructure:"preflight" yaml:"preflight"`
	} `mapstructure:"pdf" yaml:"pdf"`
}

// Flag names bound onto config keys when present on the flag set.
var flagKeys = map[string]string{
	"provider":   "ai.provider",
	"model":      "ai.model",
	"base-url":   "ai.base_url",
	"focus":      "summary.focus",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Load builds the configuration. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.paperqa")
	v.AddConfigPath(".paperqa")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PAPERQA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// Provider credentials keep their conventional unprefixed names.
	if err := v.BindEnv("ai.openai_api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind OPENAI_API_KEY: %w", err)
	}
	if err := v.BindEnv("ai.gemini_api_key", "GEMINI_API_KEY", "GOOGLE_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind GEMINI_API_KEY: %w", err)
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.resolve()

	if err := cfg.Validate(false); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ai.provider", ai.ProviderOpenAI)
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.base_url", "")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.summary_temperature", ai.DefaultSummaryTemperature)
	v.SetDefault("ai.answer_temperature", ai.DefaultAnswerTemperature)

	v.SetDefault("summary.enabled", true)
	v.SetDefault("summary.focus", ai.DefaultFocus)

	v.SetDefault("pdf.preflight", true)
}

// resolve fills the model and API key the selected provider needs.
func (c *Config) resolve() {
	c.AI.Provider = strings.ToLower(strings.TrimSpace(c.AI.Provider))
	if c.AI.Model == "" {
		c.AI.Model = ai.DefaultModel(c.AI.Provider)
	}
	if c.AI.APIKey == "" {
		switch c.AI.Provider {
		case ai.ProviderGemini:
			c.AI.APIKey = c.AI.GeminiKey
		default:
			c.AI.APIKey = c.AI.OpenAIKey
		}
	}
}

// Validate checks the configuration. requireBackend also demands an API key.
func (c *Config) Validate(requireBackend bool) error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", c.Log.Format)
	}

	if c.AI.Provider != ai.ProviderOpenAI && c.AI.Provider != ai.ProviderGemini {
		return fmt.Errorf("invalid ai.provider: %s (must be 'openai' or 'gemini')", c.AI.Provider)
	}

	// go-openai drops a zero temperature from the request, so the provider
	// default would apply instead.
	for name, t := range map[string]float32{
		"ai.summary_temperature": c.AI.SummaryTemperature,
		"ai.answer_temperature":  c.AI.AnswerTemperature,
	} {
		if t <= 0 || t > 2 {
			return fmt.Errorf("%s must be greater than 0 and at most 2, got: %g", name, t)
		}
	}

	if requireBackend && c.AI.APIKey == "" {
		return fmt.Errorf("%s required for the %s provider", keyEnv(c.AI.Provider), c.AI.Provider)
	}
	return nil
}

func keyEnv(provider string) string {
	if provider == ai.ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "OPENAI_API_KEY"
}

// Backend returns the settings for building the configured ai.Backend.
func (c *Config) Backend() ai.Settings {
	return ai.Settings{
		Provider: c.AI.Provider,
		Model:    c.AI.Model,
		APIKey:   c.AI.APIKey,
		BaseURL:  c.AI.BaseURL,
	}
}

// NewLogger builds the logger described by the log section.
func (c *Config) NewLogger() logging.Logger {
	return logging.NewLogrusAdapter(c.Log.Level, c.Log.Format)
}

// LoadEnv loads variables from .env in the working directory, if there is
// one. Variables already set win.
func LoadEnv() error {
	return LoadEnvFile(".env")
}

func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
