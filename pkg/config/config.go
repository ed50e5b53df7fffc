package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:cheerbot.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		Concurrency   int           `yaml:"concurrency" json:"concurrency" jsonschema:"default=8,description=Maximum tenants processed in parallel per tick"`
		SlotCooldown  time.Duration `yaml:"slot_cooldown" json:"slot_cooldown" jsonschema:"default=90s,description=Cooldown after a scheduled slot delivery"`
		NowCooldown   time.Duration `yaml:"now_cooldown" json:"now_cooldown" jsonschema:"default=30s,description=Cooldown after an on-demand delivery"`
		RetentionDays int           `yaml:"retention_days" json:"retention_days" jsonschema:"default=90,description=Sent-history retention in days"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for remote content generation"`

	Feed FeedConfig `yaml:"feed" json:"feed" jsonschema:"description=RSS feed content source configuration"`

	Content ContentConfig `yaml:"content" json:"content" jsonschema:"description=Content selection and safety configuration"`

	Telegram struct {
		Token   string        `yaml:"token" json:"token" jsonschema:"required,description=Telegram bot token (can use environment variable)"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Bot API client timeout"`
	} `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram delivery configuration"`
}

// LLMConfig holds LLM configuration for remote content generation. The
// remote source is disabled when the endpoint is empty.
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint, empty disables the remote source"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.8,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=200,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout per attempt"`
	Retries     int           `yaml:"retries" json:"retries" jsonschema:"default=3,description=Attempts before falling through to the next source"`
}

// FeedConfig holds RSS content source settings. The feed source is disabled
// when the URL is empty.
type FeedConfig struct {
	URL       string        `yaml:"url" json:"url" jsonschema:"description=RSS feed URL, empty disables the feed source"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Feed fetch timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Cheerbot/1.0,description=User agent for feed requests"`
}

// ContentConfig holds content pack and safety filter settings
type ContentConfig struct {
	PackPath         string `yaml:"pack_path" json:"pack_path" jsonschema:"description=Path to the local content pack YAML, empty uses the embedded pack"`
	MaxLength        int    `yaml:"max_length" json:"max_length" jsonschema:"default=600,description=Maximum message length in characters"`
	MaxEmoji         int    `yaml:"max_emoji" json:"max_emoji" jsonschema:"default=2,description=Maximum emoji count per message"`
	RepeatWindowDays int    `yaml:"repeat_window_days" json:"repeat_window_days" jsonschema:"default=30,description=Anti-repetition lookback window in days"`
	Draws            int    `yaml:"draws" json:"draws" jsonschema:"default=10,description=Random draw attempts before accepting a repeat"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:cheerbot.db?cache=shared&mode=rwc"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if cfg.Schedule.Concurrency == 0 {
		cfg.Schedule.Concurrency = 8
	}
	if cfg.Schedule.SlotCooldown == 0 {
		cfg.Schedule.SlotCooldown = 90 * time.Second
	}
	if cfg.Schedule.NowCooldown == 0 {
		cfg.Schedule.NowCooldown = 30 * time.Second
	}
	if cfg.Schedule.RetentionDays == 0 {
		cfg.Schedule.RetentionDays = 90
	}

	// set defaults for LLM
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "gpt-4o-mini"
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.8
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 200
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 10 * time.Second
	}
	if cfg.LLM.Retries == 0 {
		cfg.LLM.Retries = 3
	}

	// set defaults for feed
	if cfg.Feed.Timeout == 0 {
		cfg.Feed.Timeout = 15 * time.Second
	}
	if cfg.Feed.UserAgent == "" {
		cfg.Feed.UserAgent = "Cheerbot/1.0"
	}

	// set defaults for content
	if cfg.Content.MaxLength == 0 {
		cfg.Content.MaxLength = 600
	}
	if cfg.Content.MaxEmoji == 0 {
		cfg.Content.MaxEmoji = 2
	}
	if cfg.Content.RepeatWindowDays == 0 {
		cfg.Content.RepeatWindowDays = 30
	}
	if cfg.Content.Draws == 0 {
		cfg.Content.Draws = 10
	}

	// set defaults for telegram
	if cfg.Telegram.Timeout == 0 {
		cfg.Telegram.Timeout = 10 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}

	if cfg.LLM.Endpoint != "" {
		if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
			return fmt.Errorf("llm.temperature must be between 0 and 2")
		}
		if cfg.LLM.Retries < 1 {
			return fmt.Errorf("llm.retries must be at least 1")
		}
	}

	if cfg.Content.MaxLength < 1 {
		return fmt.Errorf("content.max_length must be positive")
	}
	if cfg.Content.MaxEmoji < 0 {
		return fmt.Errorf("content.max_emoji must be non-negative")
	}

	if cfg.Schedule.SlotCooldown <= time.Minute {
		return fmt.Errorf("schedule.slot_cooldown must exceed the one-minute tick interval")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetFeedConfig returns feed source configuration
func (c *Config) GetFeedConfig() FeedConfig {
	return c.Feed
}

// GetContentConfig returns content selection configuration
func (c *Config) GetContentConfig() ContentConfig {
	return c.Content
}
