// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Agent         AgentConfig        `mapstructure:"agent"`
	FeatureLog    FeatureLogConfig   `mapstructure:"feature_log"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host         string     `mapstructure:"host"`
	Port         int        `mapstructure:"port"`
	ReadTimeout  int        `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout int        `mapstructure:"write_timeout"` // milliseconds
	CORS         CORSConfig `mapstructure:"cors"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowAll       bool     `mapstructure:"allow_all"`
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// --- Specific Configuration Sections ---

// AgentConfig holds settings for the classification pipeline.
type AgentConfig struct {
	// Classification is a pure function of the query text, so caching it
	// is safe. Disabled unless Redis is configured.
	CacheEnabled bool `mapstructure:"cache_enabled"`
	CacheTTL     int  `mapstructure:"cache_ttl"` // milliseconds

	Sales SalesConfig `mapstructure:"sales"`
}

// SalesConfig holds the plan tier thresholds for the sales lead handler.
// All thresholds are strict (>) comparisons.
type SalesConfig struct {
	EnterpriseTeamSize   int `mapstructure:"enterprise_team_size"`
	ProfessionalTeamSize int `mapstructure:"professional_team_size"`
	EscalationTeamSize   int `mapstructure:"escalation_team_size"`
}

// FeatureLogConfig holds settings for the append-only feature request store.
type FeatureLogConfig struct {
	Backend         string `mapstructure:"backend"` // "file" or "postgres"
	Path            string `mapstructure:"path"`
	Table           string `mapstructure:"table"`
	IndexingEnabled bool   `mapstructure:"indexing_enabled"`
	Index           string `mapstructure:"index"`
}

// NotificationConfig holds settings for escalation notifications.
type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
		ToEmail   string `mapstructure:"to_email"`
	} `mapstructure:"email"`
	SMS struct {
		Enabled bool   `mapstructure:"enabled"`
		ToPhone string `mapstructure:"to_phone"`
	} `mapstructure:"sms"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
