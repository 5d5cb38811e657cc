package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the application configuration root.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Stream    StreamConfig    `mapstructure:"stream"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// ProvidersConfig holds one binding per upstream completion provider.
type ProvidersConfig struct {
	DeepSeek ProviderConfig `mapstructure:"deepseek"`
	Groq     ProviderConfig `mapstructure:"groq"`
}

// ProviderConfig describes a single chat-completion provider binding.
// Provider selects the ChatModel implementation ("openai" for any
// OpenAI-compatible endpoint, "ark" for Volcengine Ark).
type ProviderConfig struct {
	Provider    string  `mapstructure:"provider"`
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// StreamConfig tunes the outgoing relay.
// Delay is an artificial pause between forwarded fragments to smooth
// perceived output rate; zero disables it.
type StreamConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

// CORSConfig holds the single origin allowed to call the API from a browser.
type CORSConfig struct {
	AllowOrigin string `mapstructure:"allow_origin"`
}

// LogConfig configures zerolog.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	TimeFormat string `mapstructure:"time_format"`
}

// Validate checks the configuration. A missing provider credential is a
// startup error: the process must not come up half-configured.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("invalid server port")
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[c.Server.Mode] {
		return errors.New("invalid server mode, must be debug/release/test")
	}

	if c.Providers.DeepSeek.APIKey == "" {
		return fmt.Errorf("DeepSeek API key not configured (set DEEPSEEK_API_KEY)")
	}
	if c.Providers.Groq.APIKey == "" {
		return fmt.Errorf("Groq API key not configured (set GROQ_API_KEY)")
	}

	return nil
}
