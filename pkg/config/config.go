package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Dataset DatasetConfig
	Cache   CacheConfig
	Ranking RankingConfig
	Search  SearchConfig
	LLM     LLMConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  int
	WriteTimeout int
	BodyLimit    int
}

type DatasetConfig struct {
	KanoonFile string
	SQLitePath string
}

type CacheConfig struct {
	TTLSeconds int
}

// RankingConfig holds the scoring tunables. CurrentYear = 0 means
// "use the clock year".
type RankingConfig struct {
	CurrentYear      int
	RecencyMaxBoost  float64
	RecencyDecayRate float64
}

// SearchConfig exposes the pipeline thresholds the defaults of which must
// stay stable for ranking parity.
type SearchConfig struct {
	RelevanceThreshold   float64
	RerankRelevanceMin   float64
	AuthorityMinHighTier int
	MaxPrecedents        int
}

type LLMConfig struct {
	Enabled    bool
	BaseURL    string
	APIKey     string
	Model      string
	TimeoutSec int
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/vidhimur")

	viper.SetEnvPrefix("VIDHIMUR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.readTimeout", 30)
	viper.SetDefault("server.writeTimeout", 30)
	viper.SetDefault("server.bodyLimit", 1048576)

	viper.SetDefault("dataset.kanoonFile", "./data/kanoon_cases.json")
	viper.SetDefault("dataset.sqlitePath", "./data/vidhimur.db")

	viper.SetDefault("cache.ttlSeconds", 3600)

	viper.SetDefault("ranking.currentYear", 0)
	viper.SetDefault("ranking.recencyMaxBoost", 5.0)
	viper.SetDefault("ranking.recencyDecayRate", 0.25)

	viper.SetDefault("search.relevanceThreshold", 2.0)
	viper.SetDefault("search.rerankRelevanceMin", 5.0)
	viper.SetDefault("search.authorityMinHighTier", 5)
	viper.SetDefault("search.maxPrecedents", 5)

	viper.SetDefault("llm.enabled", false)
	viper.SetDefault("llm.baseURL", "https://api.groq.com/openai/v1")
	viper.SetDefault("llm.model", "llama-3.1-8b-instant")
	viper.SetDefault("llm.timeoutSec", 8)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.outputPath", "stdout")
}
