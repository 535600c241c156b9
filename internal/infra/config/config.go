package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP HTTPConfig `yaml:"http"`
	LLM  LLMConfig  `yaml:"llm"`
	QA   QAConfig   `yaml:"qa"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

// LLMConfig contains OpenAI-compatible API settings.
type LLMConfig struct {
	APIKey         string  `yaml:"apiKey"`
	BaseURL        string  `yaml:"baseUrl"`
	Model          string  `yaml:"model"`
	EmbeddingModel string  `yaml:"embeddingModel"`
	Temperature    float32 `yaml:"temperature"`
}

// QAConfig controls the retrieval-and-fallback engine.
type QAConfig struct {
	SimilarityThreshold float64        `yaml:"similarityThreshold"`
	CacheTTL            time.Duration  `yaml:"cacheTtl"`
	SeedPath            string         `yaml:"seedPath"`
	Valkey              ValkeyConfig   `yaml:"valkey"`
	Postgres            PostgresConfig `yaml:"postgres"`
}

// ValkeyConfig contains connection information for the answer cache.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// PostgresConfig contains DSN and pooling settings for the embedding store.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_EMBEDDING_MODEL"); v != "" {
		cfg.LLM.EmbeddingModel = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("QA_SIMILARITY_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.QA.SimilarityThreshold = parsed
		}
	}
	if v := os.Getenv("QA_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.QA.CacheTTL = parsed
		}
	}
	if v := os.Getenv("QA_SEED_PATH"); v != "" {
		cfg.QA.SeedPath = v
	}
	if v := os.Getenv("QA_VALKEY_ENABLED"); v != "" {
		cfg.QA.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("QA_VALKEY_ADDR"); v != "" {
		cfg.QA.Valkey.Addr = v
	}
	if v := os.Getenv("QA_POSTGRES_DSN"); v != "" {
		cfg.QA.Postgres.DSN = v
	}
	if v := os.Getenv("QA_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.QA.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("QA_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.QA.Postgres.MinConns = int32(parsed)
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		LLM: LLMConfig{
			Model:          "gpt-4-turbo-preview",
			EmbeddingModel: "text-embedding-3-small",
			Temperature:    0,
		},
		QA: QAConfig{
			SimilarityThreshold: 0.8,
			CacheTTL:            6 * time.Hour,
			Valkey: ValkeyConfig{
				Enabled: false,
				Addr:    "",
			},
			Postgres: PostgresConfig{
				DSN:      "",
				MaxConns: 4,
				MinConns: 0,
			},
		},
	}
}

// Validate ensures the configuration is safe to use. Run before any network
// call is attempted.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if strings.TrimSpace(c.LLM.EmbeddingModel) == "" {
		return errors.New("llm.embeddingModel cannot be empty")
	}
	if c.QA.SimilarityThreshold < 0 || c.QA.SimilarityThreshold > 1 {
		return errors.New("qa.similarityThreshold must be in [0,1]")
	}
	if c.QA.CacheTTL < 0 {
		return errors.New("qa.cacheTtl cannot be negative")
	}
	if c.QA.Valkey.Enabled && strings.TrimSpace(c.QA.Valkey.Addr) == "" {
		return errors.New("qa.valkey.addr cannot be empty when the answer cache is enabled")
	}
	return nil
}
