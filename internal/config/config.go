// Package config loads application configuration from file, environment,
// and an optional .env file.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Placeholder credential kept when no real key is configured; requests
// made with it fail at the provider, not inside this process.
const PlaceholderAPIKey = "YOUR_GEMINI_API_KEY"

// Config is the resolved application configuration. The LLM credential is
// an explicit value handed to the client constructor, never read from the
// environment at call time.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Budget  BudgetConfig  `mapstructure:"budget"`
	Deck    DeckConfig    `mapstructure:"deck"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type LLMConfig struct {
	Provider string `mapstructure:"provider"` // gemini | openai
	Model    string `mapstructure:"model"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
}

type BudgetConfig struct {
	// MaxTokens is the ceiling across all combined source text.
	MaxTokens int `mapstructure:"max_tokens"`
	// Encoding names the tokenizer encoding used for estimates.
	Encoding string `mapstructure:"encoding"`
}

type DeckConfig struct {
	// TemplatePath points at the bundled default template. When the file
	// is absent an empty default is generated in memory.
	TemplatePath string `mapstructure:"template_path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration with viper: defaults, then an optional config
// file, then environment overrides (PRESENTATIONGEN_SERVER_ADDR and so
// on). A .env file in the working directory is loaded first, best-effort.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.model", "gemini-2.5-flash")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("budget.max_tokens", 6000)
	v.SetDefault("budget.encoding", "cl100k_base")
	v.SetDefault("deck.template_path", "template.pptx")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetEnvPrefix("presentationgen")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Provider keys follow their conventional variable names.
	_ = v.BindEnv("llm.api_key", "GEMINI_API_KEY", "OPENAI_API_KEY")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = PlaceholderAPIKey
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.LLM.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("llm provider %q not supported", cfg.LLM.Provider)
	}
	if cfg.Budget.MaxTokens <= 0 {
		return fmt.Errorf("budget.max_tokens must be positive, got %d", cfg.Budget.MaxTokens)
	}
	return nil
}
