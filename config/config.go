package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"family-task-parser/pkg/datemath"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Parsing
	Parser     ParserConfig
	Roster     RosterConfig
	Transcript TranscriptConfig

	// AI enhancement
	Enhancer  EnhancerConfig
	RateLimit RateLimitConfig
	LLM       LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ParserConfig controls the rule engine and its memo cache.
type ParserConfig struct {
	Timezone  string
	CacheSize int
	CacheTTL  time.Duration
}

// Location resolves Timezone. An empty zone is the process local zone.
func (c ParserConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	dates, err := datemath.NewParser(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("parser.timezone: %w", err)
	}
	return dates.Location(), nil
}

type RosterConfig struct {
	Path string
}

// TranscriptConfig extends the built-in speech-to-text corrections.
type TranscriptConfig struct {
	Corrections map[string]string
}

type EnhancerConfig struct {
	Enabled   bool
	Timeout   time.Duration
	MaxRecent int
}

type RateLimitConfig struct {
	PerMin int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // bounds the whole fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper()
}

func fromViper() (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Parsing
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.CacheSize = viper.GetInt("parser.cache_size")
	cfg.Parser.CacheTTL = viper.GetDuration("parser.cache_ttl")
	if _, err := cfg.Parser.Location(); err != nil {
		return nil, err
	}
	cfg.Roster.Path = viper.GetString("roster.path")
	cfg.Transcript.Corrections = viper.GetStringMapString("transcript.corrections")

	// AI enhancement
	cfg.Enhancer.Enabled = viper.GetBool("enhancer.enabled")
	cfg.Enhancer.Timeout = viper.GetDuration("enhancer.timeout")
	cfg.Enhancer.MaxRecent = viper.GetInt("enhancer.max_recent")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		if providersList, ok := viper.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Providers are only required once enhancement is switched on.
	if cfg.Enhancer.Enabled {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, fmt.Errorf("enhancer enabled: %w", err)
		}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("parser.timezone", "")
	viper.SetDefault("parser.cache_size", 1024)
	viper.SetDefault("parser.cache_ttl", "10m")
	viper.SetDefault("roster.path", "")

	viper.SetDefault("enhancer.enabled", false)
	viper.SetDefault("enhancer.timeout", "8s")
	viper.SetDefault("enhancer.max_recent", 10)
	viper.SetDefault("rate_limit.per_min", 30)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "20s")
}

// Durations parses the retry and total timeout strings.
func (c LLMConfig) Durations() (retryDelay, maxTotal time.Duration, err error) {
	if c.RetryDelay != "" {
		if retryDelay, err = time.ParseDuration(c.RetryDelay); err != nil {
			return 0, 0, fmt.Errorf("llm.retry_delay: %w", err)
		}
	}
	if c.MaxTotalTimeout != "" {
		if maxTotal, err = time.ParseDuration(c.MaxTotalTimeout); err != nil {
			return 0, 0, fmt.Errorf("llm.max_total_timeout: %w", err)
		}
	}
	return retryDelay, maxTotal, nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	if _, _, err := cfg.Durations(); err != nil {
		return err
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// JSON-decoded numbers arrive as float64
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
