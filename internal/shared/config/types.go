package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host" validate:"required"`
	Port           int      `mapstructure:"port" validate:"gt=0,max=65535"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Timezone       string   `mapstructure:"timezone"`
	// WriteRateLimit caps ticket writes per client IP per minute when Redis
	// is enabled. Zero disables the limit.
	WriteRateLimit int `mapstructure:"write_rate_limit" validate:"min=0"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=console json"`
	OutputPath string `mapstructure:"output_path"`
}

// DynamoDBConfig points at the collection source holding conversations,
// messages and feedback.
type DynamoDBConfig struct {
	Region            string `mapstructure:"region" validate:"required"`
	Endpoint          string `mapstructure:"endpoint" validate:"omitempty,url"`
	AccessKeyID       string `mapstructure:"access_key_id"`
	SecretAccessKey   string `mapstructure:"secret_access_key"`
	ConversationTable string `mapstructure:"conversation_table" validate:"required"`
	MessageTable      string `mapstructure:"message_table" validate:"required"`
	FeedbackTable     string `mapstructure:"feedback_table" validate:"required"`
	// ConversationIndex names a GSI keyed on conversationId. Empty queries
	// the message table's own key.
	ConversationIndex string `mapstructure:"conversation_index"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds" validate:"gt=0"`
}

const (
	TicketDriverMemory = "memory"
	TicketDriverSQLite = "sqlite"
	TicketDriverMySQL  = "mysql"

	TicketIDStrategyLength   = "length"
	TicketIDStrategySequence = "sequence"
)

type TicketStoreConfig struct {
	Driver     string `mapstructure:"driver" validate:"oneof=memory sqlite mysql"`
	IDStrategy string `mapstructure:"id_strategy" validate:"oneof=length sequence"`
	Seed       bool   `mapstructure:"seed"`
}

type DatabaseConfig struct {
	SQLitePath      string `mapstructure:"sqlite_path"`
	Migration       string `mapstructure:"migration" validate:"omitempty,oneof=auto goose"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type DashboardConfig struct {
	DefaultTimeRange string `mapstructure:"default_time_range" validate:"oneof=all today week month year"`
	StatsCacheTTL    int    `mapstructure:"stats_cache_ttl_seconds" validate:"min=0"`
}
