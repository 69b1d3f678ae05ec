package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/iryswiki/iryswiki/internal/domain"
	"github.com/iryswiki/iryswiki/internal/payment"
	"github.com/iryswiki/iryswiki/internal/store"
)

// SERVICE_NAME is used for the per-service env file and config lookup path
const SERVICE_NAME = "iryswiki"

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	Environment string `mapstructure:"environment"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
}

// ChainConfig holds the chain connection and session wallet
type ChainConfig struct {
	ChainID     int64  `mapstructure:"chain_id"`
	RPCURL      string `mapstructure:"rpc_url"`
	ExplorerURL string `mapstructure:"explorer_url"`
	PrivateKey  string `mapstructure:"private_key"` // hex, empty for read-only use
}

// FeesConfig holds the fee table and the payment wallet
type FeesConfig struct {
	Thread        string `mapstructure:"thread"`
	Reply         string `mapstructure:"reply"`
	Profile       string `mapstructure:"profile"`
	PaymentWallet string `mapstructure:"payment_wallet"`
}

// SettleConfig holds how long to wait for a payment before verifying it
type SettleConfig struct {
	Policy      string        `mapstructure:"policy"` // fixed or backoff
	Delay       time.Duration `mapstructure:"delay"`
	MaxInterval time.Duration `mapstructure:"max_interval"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
}

// StorageKeysConfig holds the logical keys of the three collections
type StorageKeysConfig struct {
	Threads  string `mapstructure:"threads"`
	Profiles string `mapstructure:"profiles"`
	Ledger   string `mapstructure:"ledger"`
}

// StorageConfig holds the persistence backend configuration
type StorageConfig struct {
	Backend    string            `mapstructure:"backend"`
	PebblePath string            `mapstructure:"pebble_path"`
	Keys       StorageKeysConfig `mapstructure:"keys"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// NATSConfig holds NATS JetStream configuration. Events are disabled when URL is empty.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // in seconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // in seconds
	IdleTimeout     int    `mapstructure:"idle_timeout"`     // in seconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// RateLimitConfig holds the mutation rate limit
type RateLimitConfig struct {
	Enabled                 bool    `mapstructure:"enabled"`
	RequestsPerMinute       int     `mapstructure:"requests_per_minute"`
	Burst                   int     `mapstructure:"burst"`
	RedisKeyPrefix          string  `mapstructure:"redis_key_prefix"`
	EnableLocalFallback     bool    `mapstructure:"enable_local_fallback"`
	LocalFallbackMultiplier float64 `mapstructure:"local_fallback_multiplier"`
}

// MediaConfig holds the avatar limits
type MediaConfig struct {
	MaxAvatarSize    int      `mapstructure:"max_avatar_size"`
	AllowedMimeTypes []string `mapstructure:"allowed_mime_types"`
}

// AuditConfig holds the ledger audit settings
type AuditConfig struct {
	WorkerPoolSize int `mapstructure:"pool_size"`
}

// Config holds the configuration of the iryswiki service and CLI
type Config struct {
	BaseConfig `mapstructure:",squash"`
	Chain      ChainConfig     `mapstructure:"chain"`
	Fees       FeesConfig      `mapstructure:"fees"`
	Settle     SettleConfig    `mapstructure:"settle"`
	Storage    StorageConfig   `mapstructure:"storage"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Redis      RedisConfig     `mapstructure:"redis"`
	NATS       NATSConfig      `mapstructure:"nats"`
	Server     ServerConfig    `mapstructure:"server"`
	Auth       AuthConfig      `mapstructure:"auth"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
	Media      MediaConfig     `mapstructure:"media"`
	Audit      AuditConfig     `mapstructure:"audit"`
}

// LoadConfig loads the iryswiki configuration
func LoadConfig(configFile string, envPath string) (*Config, error) {
	v := configureViper(SERVICE_NAME, configFile, envPath)

	// Set defaults
	v.SetDefault("environment", "development")
	v.SetDefault("chain.chain_id", domain.DEFAULT_CHAIN_ID)
	v.SetDefault("chain.rpc_url", domain.DEFAULT_RPC_URL)
	v.SetDefault("chain.explorer_url", domain.DEFAULT_EXPLORER_URL)
	v.SetDefault("fees.thread", domain.DEFAULT_THREAD_FEE)
	v.SetDefault("fees.reply", domain.DEFAULT_REPLY_FEE)
	v.SetDefault("fees.profile", domain.DEFAULT_PROFILE_FEE)
	v.SetDefault("fees.payment_wallet", domain.DEFAULT_PAYMENT_WALLET)
	v.SetDefault("settle.policy", payment.PolicyFixed)
	v.SetDefault("settle.delay", "2s")
	v.SetDefault("settle.max_interval", "5s")
	v.SetDefault("settle.max_wait", "30s")
	v.SetDefault("storage.backend", string(store.BackendPebble))
	v.SetDefault("storage.pebble_path", "data/iryswiki")
	v.SetDefault("storage.keys.threads", domain.DEFAULT_THREADS_KEY)
	v.SetDefault("storage.keys.profiles", domain.DEFAULT_PROFILES_KEY)
	v.SetDefault("storage.keys.ledger", domain.DEFAULT_LEDGER_KEY)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "5m")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("nats.subject_prefix", "iryswiki")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", SERVICE_NAME)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("server.shutdown_timeout", 30)
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests_per_minute", 10)
	v.SetDefault("rate_limit.burst", 3)
	v.SetDefault("rate_limit.redis_key_prefix", "iryswiki:limiter:")
	v.SetDefault("rate_limit.enable_local_fallback", true)
	v.SetDefault("rate_limit.local_fallback_multiplier", 1.0)
	v.SetDefault("media.max_avatar_size", domain.DEFAULT_MAX_AVATAR_SIZE)
	v.SetDefault("media.allowed_mime_types", domain.DefaultAvatarMimeTypes)
	v.SetDefault("audit.pool_size", 4)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults and environment variables
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings that cannot be defaulted
func (c *Config) Validate() error {
	if err := c.FeePolicy().Validate(); err != nil {
		return fmt.Errorf("invalid fees: %w", err)
	}

	backend, err := store.ParseBackend(c.Storage.Backend)
	if err != nil {
		return err
	}
	switch backend {
	case store.BackendPebble:
		if c.Storage.PebblePath == "" {
			return errors.New("storage.pebble_path is required for the pebble backend")
		}
	case store.BackendPostgres:
		if c.Database.Host == "" {
			return errors.New("database.host is required for the postgres backend")
		}
		if c.Database.DBName == "" {
			return errors.New("database.dbname is required for the postgres backend")
		}
	case store.BackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis backend")
		}
	}

	switch c.Settle.Policy {
	case payment.PolicyFixed, payment.PolicyBackoff:
	default:
		return fmt.Errorf("unknown settle policy: %s", c.Settle.Policy)
	}

	if c.Chain.ChainID <= 0 {
		return errors.New("chain.chain_id must be positive")
	}

	return nil
}

// FeePolicy returns the fee table
func (c *Config) FeePolicy() domain.FeePolicy {
	return domain.FeePolicy{
		Thread:    c.Fees.Thread,
		Reply:     c.Fees.Reply,
		Profile:   c.Fees.Profile,
		Recipient: c.Fees.PaymentWallet,
	}
}

// SettlePolicyConfig returns the settle policy settings
func (c *Config) SettlePolicyConfig() payment.SettleConfig {
	return payment.SettleConfig{
		Policy:      c.Settle.Policy,
		Delay:       c.Settle.Delay,
		MaxInterval: c.Settle.MaxInterval,
		MaxWait:     c.Settle.MaxWait,
	}
}

// StorageKeys returns the collection keys
func (c *Config) StorageKeys() store.Keys {
	return store.Keys{
		Threads:  c.Storage.Keys.Threads,
		Profiles: c.Storage.Keys.Profiles,
		Ledger:   c.Storage.Keys.Ledger,
	}
}

// ChainIDBig returns the configured chain id
func (c *Config) ChainIDBig() *big.Int {
	return big.NewInt(c.Chain.ChainID)
}

// ExplorerTxURL returns the block explorer link of a transaction
func (c *Config) ExplorerTxURL(hash string) string {
	return fmt.Sprintf("%s/tx/%s", strings.TrimRight(c.Chain.ExplorerURL, "/"), hash)
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("IRYSWIKI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"environment",
		"sentry_dsn",
		// Chain
		"chain.chain_id",
		"chain.rpc_url",
		"chain.explorer_url",
		"chain.private_key",
		// Fees
		"fees.thread",
		"fees.reply",
		"fees.profile",
		"fees.payment_wallet",
		// Settle
		"settle.policy",
		"settle.delay",
		"settle.max_interval",
		"settle.max_wait",
		// Storage
		"storage.backend",
		"storage.pebble_path",
		"storage.keys.threads",
		"storage.keys.profiles",
		"storage.keys.ledger",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		// NATS
		"nats.url",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.shutdown_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Rate limit
		"rate_limit.enabled",
		"rate_limit.requests_per_minute",
		"rate_limit.burst",
		"rate_limit.redis_key_prefix",
		"rate_limit.enable_local_fallback",
		"rate_limit.local_fallback_multiplier",
		// Media
		"media.max_avatar_size",
		"media.allowed_mime_types",
		// Audit
		"audit.pool_size",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
