package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/katalon/insights/internal/shared/config"
	"github.com/katalon/insights/internal/shared/utils"
)

type Config struct {
	Server      sharedConfig.ServerConfig      `mapstructure:"server"`
	Logger      sharedConfig.LoggerConfig      `mapstructure:"logger"`
	DynamoDB    sharedConfig.DynamoDBConfig    `mapstructure:"dynamodb"`
	TicketStore sharedConfig.TicketStoreConfig `mapstructure:"ticket_store"`
	Database    sharedConfig.DatabaseConfig    `mapstructure:"database"`
	Redis       sharedConfig.RedisConfig       `mapstructure:"redis"`
	Dashboard   sharedConfig.DashboardConfig   `mapstructure:"dashboard"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from an optional .env file, the config file and
// environment variables. A missing config file is not an error; defaults and
// INSIGHTS_* variables are enough to run locally.
func Load(env string, configPath string) (*Config, error) {
	// .env is optional; real environment variables always win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("INSIGHTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := utils.ValidateStruct(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.timezone", "UTC")
	v.SetDefault("server.write_rate_limit", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// DynamoDB defaults match the local development container
	v.SetDefault("dynamodb.region", "local")
	v.SetDefault("dynamodb.endpoint", "http://localhost:8003")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.conversation_table", "conversations")
	v.SetDefault("dynamodb.message_table", "messages")
	v.SetDefault("dynamodb.feedback_table", "feedbacks")
	v.SetDefault("dynamodb.conversation_index", "")
	v.SetDefault("dynamodb.timeout_seconds", 10)

	// Ticket store defaults
	v.SetDefault("ticket_store.driver", sharedConfig.TicketDriverMemory)
	v.SetDefault("ticket_store.id_strategy", sharedConfig.TicketIDStrategyLength)
	v.SetDefault("ticket_store.seed", true)

	// Database defaults (only used by the sqlite/mysql ticket drivers)
	v.SetDefault("database.sqlite_path", "insights.db")
	v.SetDefault("database.migration", "auto")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "insights_dev")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Dashboard defaults
	v.SetDefault("dashboard.default_time_range", "week")
	v.SetDefault("dashboard.stats_cache_ttl_seconds", 60)
}
