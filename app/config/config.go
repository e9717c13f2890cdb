package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config cấu hình runtime của service
type Config struct {
	App          AppConfig
	GoldenSource GoldenSourceConfig
	Matching     MatchingConfig
	Cache        CacheConfig
}

// AppConfig cấu hình HTTP server
type AppConfig struct {
	Port string
	Env  string
}

// GoldenSourceConfig nơi đọc golden source dataset
type GoldenSourceConfig struct {
	Path         string
	Sheet        string
	DefaultState string
}

// MatchingConfig tham số của resolver
type MatchingConfig struct {
	FuzzyThreshold int
	TopK           int
}

// CacheConfig cấu hình result cache (L1 in-memory + L2 Redis)
type CacheConfig struct {
	Enabled  bool
	L1Size   int
	RedisURL string
	TTL      time.Duration
}

// Load đọc cấu hình từ config/app.yaml (nếu có) và environment variables.
//
// Environment names for the matching knobs are fixed contract:
// GOLDEN_SOURCE_PATH, FUZZY_MATCH_THRESHOLD, DEFAULT_STATE.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("golden_source.path", "PinellasCount_Extract.xlsx")
	v.SetDefault("golden_source.sheet", "")
	v.SetDefault("golden_source.default_state", "FL")
	v.SetDefault("matching.fuzzy_threshold", 92)
	v.SetDefault("matching.top_k", 5)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.l1_size", 10000)
	v.SetDefault("cache.redis_url", "redis://localhost:6379")
	v.SetDefault("cache.ttl", "24h")

	v.AutomaticEnv()
	bindings := map[string]string{
		"golden_source.path":          "GOLDEN_SOURCE_PATH",
		"golden_source.sheet":         "GOLDEN_SOURCE_SHEET",
		"golden_source.default_state": "DEFAULT_STATE",
		"matching.fuzzy_threshold":    "FUZZY_MATCH_THRESHOLD",
		"matching.top_k":              "MATCH_TOP_K",
		"app.port":                    "APP_PORT",
		"app.env":                     "APP_ENV",
		"cache.enabled":               "CACHE_ENABLED",
		"cache.l1_size":               "L1_CACHE_SIZE",
		"cache.redis_url":             "REDIS_URL",
		"cache.ttl":                   "CACHE_TTL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; anything other than "not found" is a
		// real problem.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Port: v.GetString("app.port"),
			Env:  v.GetString("app.env"),
		},
		GoldenSource: GoldenSourceConfig{
			Path:         v.GetString("golden_source.path"),
			Sheet:        v.GetString("golden_source.sheet"),
			DefaultState: v.GetString("golden_source.default_state"),
		},
		Matching: MatchingConfig{
			FuzzyThreshold: v.GetInt("matching.fuzzy_threshold"),
			TopK:           v.GetInt("matching.top_k"),
		},
		Cache: CacheConfig{
			Enabled:  v.GetBool("cache.enabled"),
			L1Size:   v.GetInt("cache.l1_size"),
			RedisURL: v.GetString("cache.redis_url"),
			TTL:      v.GetDuration("cache.ttl"),
		},
	}

	if cfg.Matching.FuzzyThreshold < 0 || cfg.Matching.FuzzyThreshold > 100 {
		return nil, fmt.Errorf("fuzzy threshold %d out of range [0,100]", cfg.Matching.FuzzyThreshold)
	}
	return cfg, nil
}
