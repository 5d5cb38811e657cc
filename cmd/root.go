package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeweaver/internal/config"
	"codeweaver/internal/pkg/logger"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "codeweaver",
	Short: "CodeWeaver - AI code and documentation generation API",
	Long: `CodeWeaver is a streaming relay in front of two chat-completion providers.
It generates source code via DeepSeek and Markdown documentation via Groq,
streaming the model output back to the caller as it arrives.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./configs/config.yaml)")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.codeweaver")
	}

	viper.SetEnvPrefix("CODEWEAVER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The deployment historically configured credentials through bare env
	// names, keep honoring them next to the prefixed forms.
	_ = viper.BindEnv("providers.deepseek.api_key",
		"CODEWEAVER_PROVIDERS_DEEPSEEK_API_KEY", "DEEPSEEK_API_KEY")
	_ = viper.BindEnv("providers.groq.api_key",
		"CODEWEAVER_PROVIDERS_GROQ_API_KEY", "GROQ_API_KEY")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			fmt.Fprintln(os.Stderr, "No config file found, using defaults and environment variables")
		} else {
			fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg = &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to unmarshal config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	log.Debug().Str("config_file", viper.ConfigFileUsed()).Msg("configuration loaded")
}

func setDefaults() {
	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("server.read_timeout", "30s")
	// No write timeout: it would cut long generations off mid-stream.
	viper.SetDefault("server.write_timeout", "0s")

	// Provider bindings
	viper.SetDefault("providers.deepseek.provider", "openai")
	viper.SetDefault("providers.deepseek.base_url", "https://api.deepseek.com")
	viper.SetDefault("providers.deepseek.model", "deepseek-chat")
	viper.SetDefault("providers.deepseek.temperature", 0.7)
	viper.SetDefault("providers.deepseek.max_tokens", 4000)

	viper.SetDefault("providers.groq.provider", "openai")
	viper.SetDefault("providers.groq.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("providers.groq.model", "llama-3.3-70b-versatile")
	viper.SetDefault("providers.groq.temperature", 0.7)
	viper.SetDefault("providers.groq.max_tokens", 8000)

	// Stream relay
	viper.SetDefault("stream.delay", "10ms")

	// CORS
	viper.SetDefault("cors.allow_origin", "https://ai-code-doc-helper.netlify.app")

	// Log
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.time_format", "RFC3339")
}

// GetConfig returns the global configuration
func GetConfig() *config.Config {
	return cfg
}
