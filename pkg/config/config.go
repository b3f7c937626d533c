package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Scan struct {
		ProbeTimeout time.Duration `yaml:"probe_timeout"` // per upstream call
		ReportTTL    time.Duration `yaml:"report_ttl"`    // cached scan reports
		PriceTTL     time.Duration `yaml:"price_ttl"`     // native price cache
		SourceTTL    time.Duration `yaml:"source_ttl"`    // explorer source cache
	} `yaml:"scan"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Kafka struct {
		Enabled      bool     `yaml:"enabled"`
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		MaxAttempts  int      `yaml:"max_attempts"`
		Async        bool     `yaml:"async"`
	} `yaml:"kafka"`
	Queue struct {
		Workers    int           `yaml:"workers"`
		RetryLimit int           `yaml:"retry_limit"`
		RetryDelay time.Duration `yaml:"retry_delay"`
	} `yaml:"queue"`
	Providers struct {
		Etherscan struct {
			// Explorer API keys keyed by chain id (eth, bsc, ...).
			APIKeys map[string]string `yaml:"api_keys"`
		} `yaml:"etherscan"`
		GoPlus struct {
			BaseURL string `yaml:"base_url"`
		} `yaml:"goplus"`
		Moralis struct {
			BaseURL string `yaml:"base_url"`
			APIKey  string `yaml:"api_key"`
		} `yaml:"moralis"`
		DexScreener struct {
			BaseURL string `yaml:"base_url"`
		} `yaml:"dexscreener"`
		CoinGecko struct {
			BaseURL string `yaml:"base_url"`
		} `yaml:"coingecko"`
	} `yaml:"providers"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML, reads a .env file if present, and
// overrides sensitive values with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	_ = godotenv.Load() // a missing .env is fine

	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ETHERSCAN_API_KEY"); v != "" {
		if c.Providers.Etherscan.APIKeys == nil {
			c.Providers.Etherscan.APIKeys = make(map[string]string)
		}
		// Etherscan V2 keys work across the supported chains.
		for _, chain := range []string{"eth", "bsc", "polygon", "base"} {
			if c.Providers.Etherscan.APIKeys[chain] == "" {
				c.Providers.Etherscan.APIKeys[chain] = v
			}
		}
	}
	if v := os.Getenv("MORALIS_API_KEY"); v != "" {
		c.Providers.Moralis.APIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
		c.Redis.Enabled = true
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Scan.ProbeTimeout == 0 {
		c.Scan.ProbeTimeout = 15 * time.Second
	}
	if c.Scan.ReportTTL == 0 {
		c.Scan.ReportTTL = 10 * time.Minute
	}
	if c.Scan.PriceTTL == 0 {
		c.Scan.PriceTTL = 60 * time.Second
	}
	if c.Scan.SourceTTL == 0 {
		c.Scan.SourceTTL = 5 * time.Minute
	}
	if c.Queue.Workers == 0 {
		c.Queue.Workers = 2
	}
	if c.Queue.RetryLimit == 0 {
		c.Queue.RetryLimit = 2
	}
	if c.Queue.RetryDelay == 0 {
		c.Queue.RetryDelay = 15 * time.Second
	}
	if c.Kafka.Compression == "" {
		c.Kafka.Compression = "gzip"
	}
	if c.Kafka.MaxAttempts == 0 {
		c.Kafka.MaxAttempts = 3
	}
	if c.Providers.GoPlus.BaseURL == "" {
		c.Providers.GoPlus.BaseURL = "https://api.gopluslabs.io/api/v1"
	}
	if c.Providers.Moralis.BaseURL == "" {
		c.Providers.Moralis.BaseURL = "https://deep-index.moralis.io/api/v2.2"
	}
	if c.Providers.DexScreener.BaseURL == "" {
		c.Providers.DexScreener.BaseURL = "https://api.dexscreener.com"
	}
	if c.Providers.CoinGecko.BaseURL == "" {
		c.Providers.CoinGecko.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when redis is enabled")
	}
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
		}
		if c.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka is enabled")
		}
	}
	return nil
}

// ExplorerKey returns the explorer API key for a chain, if configured.
func (c *Config) ExplorerKey(chain string) string {
	return c.Providers.Etherscan.APIKeys[chain]
}
