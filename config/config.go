package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig     `json:"server"`
	Calculator CalculatorConfig `json:"calculator"`
	Monitor    MonitorConfig    `json:"monitor"`
	Cache      CacheConfig      `json:"cache"`
	Redis      RedisConfig      `json:"redis"`
	Client     ClientConfig     `json:"client"`
	Charts     ChartsConfig     `json:"charts"`
}

type ServerConfig struct {
	Port           int      `json:"port"`
	Host           string   `json:"host"`
	AllowedOrigins []string `json:"allowed_origins"`
}

// CalculatorConfig carries the fixed research constants the formulas
// substitute into. They are inputs to the engine, never derived.
type CalculatorConfig struct {
	EthereumBaseTPS   float64 `json:"ethereum_base_tps"`
	BitcoinTPS        float64 `json:"bitcoin_tps"`
	VisaTPS           float64 `json:"visa_tps"`
	Layer2AvgTPS      float64 `json:"layer2_avg_tps"`
	OptimisticCostDiv float64 `json:"optimistic_cost_divisor"`
	ZKCostDiv         float64 `json:"zk_cost_divisor"`
	BaseShardTPS      float64 `json:"base_shard_tps"`
	CrossShardRatio   float64 `json:"cross_shard_ratio"`
	CrossShardLatency float64 `json:"cross_shard_latency_multiplier"`
	GasPerTransfer    float64 `json:"gas_per_transfer"`
}

type MonitorConfig struct {
	Interval    int `json:"interval_ms"`  // sample period, milliseconds
	HistorySize int `json:"history_size"` // ring buffer length
}

type CacheConfig struct {
	TTL int `json:"ttl_seconds"`
}

type RedisConfig struct {
	Address  string `json:"address"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	Enabled  bool   `json:"enabled"`
	UseTLS   bool   `json:"use_tls"`
}

// ClientConfig tunes the dashboard client package defaults.
type ClientConfig struct {
	BaseURL        string `json:"base_url"`
	DebounceMs     int    `json:"debounce_ms"`
	PollIntervalMs int    `json:"poll_interval_ms"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

type ChartsConfig struct {
	Palette map[string]string `json:"palette"`
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	// Default configuration
	cfg := &Config{
		Server: ServerConfig{
			Port:           8080,
			Host:           "0.0.0.0",
			AllowedOrigins: []string{"*"},
		},
		Calculator: CalculatorConfig{
			EthereumBaseTPS:   15,
			BitcoinTPS:        7,
			VisaTPS:           24000,
			Layer2AvgTPS:      3000,
			OptimisticCostDiv: 55,
			ZKCostDiv:         60,
			BaseShardTPS:      100,
			CrossShardRatio:   0.20,
			CrossShardLatency: 1.5,
			GasPerTransfer:    21000,
		},
		Monitor: MonitorConfig{
			Interval:    2000,
			HistorySize: 30,
		},
		Cache: CacheConfig{
			TTL: 30,
		},
		Redis: RedisConfig{
			Address:  "localhost:6379",
			Password: "",
			DB:       0,
			Enabled:  false,
			UseTLS:   false,
		},
		Client: ClientConfig{
			BaseURL:        "http://localhost:8080",
			DebounceMs:     500,
			PollIntervalMs: 2000,
			TimeoutSeconds: 10,
		},
		Charts: ChartsConfig{
			Palette: map[string]string{
				"layer1":     "#3b82f6",
				"layer2":     "#8b5cf6",
				"sharding":   "#10b981",
				"hybrid":     "#f59e0b",
				"comparison": "#ef4444",
			},
		},
	}

	// Load from config file if exists
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config/config.json"
	}

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.Open(configPath)
		if err == nil {
			defer file.Close()
			decoder := json.NewDecoder(file)
			if err := decoder.Decode(cfg); err != nil {
				fmt.Printf("Warning: Failed to decode config file: %v\n", err)
			}
		}
	}

	// Load from environment variables (overrides config file)
	loadEnv(cfg)

	// Load from command-line flags (overrides everything)
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	var serverPort int
	var serverHost string

	fs.IntVar(&serverPort, "port", 0, "Server port")
	fs.StringVar(&serverHost, "host", "", "Server host")

	_ = fs.Parse(os.Args[1:])

	if isFlagPassed(fs, "port") {
		cfg.Server.Port = serverPort
	}
	if isFlagPassed(fs, "host") {
		cfg.Server.Host = serverHost
	}

	return cfg, nil
}

func isFlagPassed(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func loadEnv(cfg *Config) {
	// Server configuration
	if val := os.Getenv("SERVER_PORT"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Server.Port = p
		}
	}
	if val := os.Getenv("SERVER_HOST"); val != "" {
		cfg.Server.Host = val
	}
	if val := os.Getenv("ALLOWED_ORIGINS"); val != "" {
		cfg.Server.AllowedOrigins = strings.Split(val, ",")
	}

	// Monitor configuration
	if val := os.Getenv("MONITOR_INTERVAL_MS"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Monitor.Interval = p
		}
	}
	if val := os.Getenv("MONITOR_HISTORY_SIZE"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Monitor.HistorySize = p
		}
	}

	// Cache configuration
	if val := os.Getenv("CACHE_TTL"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Cache.TTL = p
		}
	}

	// Redis configuration
	if val := os.Getenv("REDIS_ADDRESS"); val != "" {
		cfg.Redis.Address = val
	}
	if val := os.Getenv("REDIS_PASSWORD"); val != "" {
		cfg.Redis.Password = val
	}
	if val := os.Getenv("REDIS_DB"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Redis.DB = p
		}
	}
	if val := os.Getenv("REDIS_ENABLED"); val != "" {
		cfg.Redis.Enabled = val == "true" || val == "1"
	}
	if val := os.Getenv("REDIS_USE_TLS"); val != "" {
		cfg.Redis.UseTLS = val == "true" || val == "1"
	}

	// Client configuration
	if val := os.Getenv("CLIENT_BASE_URL"); val != "" {
		cfg.Client.BaseURL = val
	}
	if val := os.Getenv("CLIENT_DEBOUNCE_MS"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Client.DebounceMs = p
		}
	}
	if val := os.Getenv("CLIENT_POLL_INTERVAL_MS"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Client.PollIntervalMs = p
		}
	}
}

// Helper methods for duration conversion
func (c *Config) MonitorIntervalDuration() time.Duration {
	return time.Duration(c.Monitor.Interval) * time.Millisecond
}

func (c *Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.Cache.TTL) * time.Second
}

func (c *Config) DebounceDuration() time.Duration {
	return time.Duration(c.Client.DebounceMs) * time.Millisecond
}

func (c *Config) PollIntervalDuration() time.Duration {
	return time.Duration(c.Client.PollIntervalMs) * time.Millisecond
}

func (c *Config) ClientTimeoutDuration() time.Duration {
	return time.Duration(c.Client.TimeoutSeconds) * time.Second
}
