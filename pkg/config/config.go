package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"InsightFlow/pkg/util"
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
	Upstream struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"upstream"`
	Refresh struct {
		Interval time.Duration `yaml:"interval"`
		OnStart  bool          `yaml:"on_start"`
		Workers  int           `yaml:"workers"`
	} `yaml:"refresh"`
	Board struct {
		AgentInterval time.Duration `yaml:"agent_interval"`
		Language      string        `yaml:"language"`
		RateLimit     struct {
			Capacity  float64 `yaml:"capacity"`
			RefillSec float64 `yaml:"refill_per_sec"`
		} `yaml:"rate_limit"`
	} `yaml:"board"`
	Country struct {
		Default string `yaml:"default"`
	} `yaml:"country"`
	Cache struct {
		RadarTTL time.Duration `yaml:"radar_ttl"`
		Redis    struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Kafka struct {
		Enabled      bool     `yaml:"enabled"`
		Brokers      []string `yaml:"brokers"`
		TopicPrefix  string   `yaml:"topic_prefix"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
	ClickHouse struct {
		Enabled          bool          `yaml:"enabled"`
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		AsyncInsert      bool          `yaml:"async_insert"`
		WaitForAsync     bool          `yaml:"wait_for_async_insert"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	Whale struct {
		Symbols []string `yaml:"symbols"`
	} `yaml:"whale"`
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

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("UPSTREAM_URL"); v != "" {
		c.Upstream.BaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
		c.Cache.Redis.Enabled = true
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
		c.Kafka.Enabled = true
	}
	if v := os.Getenv("KAFKA_TOPIC_PREFIX"); v != "" {
		c.Kafka.TopicPrefix = v
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Host = v
		c.ClickHouse.Enabled = true
	}
	if v := os.Getenv("WHALE_SYMBOLS"); v != "" {
		c.Whale.Symbols = strings.Split(v, ",")
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = "http://localhost:8000"
	}
	if c.Upstream.Timeout <= 0 {
		c.Upstream.Timeout = 15 * time.Second
	}
	if c.Refresh.Interval <= 0 {
		c.Refresh.Interval = 5 * time.Minute
	}
	if c.Refresh.Workers <= 0 {
		c.Refresh.Workers = 2
	}
	if c.Board.AgentInterval <= 0 {
		c.Board.AgentInterval = 2 * time.Second
	}
	if c.Board.Language == "" {
		c.Board.Language = "ko"
	}
	if c.Board.RateLimit.Capacity <= 0 {
		c.Board.RateLimit.Capacity = 5
	}
	if c.Board.RateLimit.RefillSec <= 0 {
		c.Board.RateLimit.RefillSec = 0.5
	}
	if c.Country.Default == "" {
		c.Country.Default = "US"
	}
	if c.Cache.RadarTTL <= 0 {
		c.Cache.RadarTTL = 5 * time.Minute
	}
	if len(c.Whale.Symbols) == 0 {
		c.Whale.Symbols = []string{"NVDA", "TSLA", "AAPL", "MSFT", "PLTR"}
	}
	if c.Kafka.TopicPrefix == "" {
		c.Kafka.TopicPrefix = "insightflow.store"
	}
}

// RefreshesTopic is the Kafka topic carrying store refresh events.
func (c *Config) RefreshesTopic() string { return c.Kafka.TopicPrefix + ".refreshes" }

// AnalysesTopic is the Kafka topic carrying analysis outcome events.
func (c *Config) AnalysesTopic() string { return c.Kafka.TopicPrefix + ".analyses" }

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	if !strings.HasPrefix(c.Upstream.BaseURL, "http://") && !strings.HasPrefix(c.Upstream.BaseURL, "https://") {
		return fmt.Errorf("upstream.base_url must be an http(s) URL, got '%s'", c.Upstream.BaseURL)
	}
	if c.Board.Language != "ko" && c.Board.Language != "en" {
		return fmt.Errorf("board.language must be 'ko' or 'en', got '%s'", c.Board.Language)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
	}
	if c.ClickHouse.Enabled && c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required when clickhouse is enabled")
	}
	return nil
}
