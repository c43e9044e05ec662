package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB/Redis connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, cache TTLs, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cache   CacheConfig
	Seckill SeckillConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" required:"true"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"50"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CacheConfig struct {
	TTL                time.Duration `envconfig:"CACHE_TTL" default:"30m"`
	NullTTL            time.Duration `envconfig:"CACHE_NULL_TTL" default:"2m"`
	TTLJitter          time.Duration `envconfig:"CACHE_TTL_JITTER" default:"5m"`
	LogicalTTL         time.Duration `envconfig:"CACHE_LOGICAL_TTL" default:"30m"`
	RebuildLockTTL     time.Duration `envconfig:"CACHE_REBUILD_LOCK_TTL" default:"10s"`
	RebuildTimeout     time.Duration `envconfig:"CACHE_REBUILD_TIMEOUT" default:"5s"`
	MutexRetryInterval time.Duration `envconfig:"CACHE_MUTEX_RETRY_INTERVAL" default:"50ms"`
	// passthrough | logical | mutex
	ShopStrategy string `envconfig:"CACHE_SHOP_STRATEGY" default:"passthrough"`
}

type SeckillConfig struct {
	QueueCapacity int `envconfig:"SECKILL_QUEUE_CAPACITY" default:"1048576"`
	// block | reject
	QueueOverflow     string        `envconfig:"SECKILL_QUEUE_OVERFLOW" default:"reject"`
	OrderIDPrefix     string        `envconfig:"SECKILL_ORDER_ID_PREFIX" default:"order"`
	PersistTimeout    time.Duration `envconfig:"SECKILL_PERSIST_TIMEOUT" default:"10s"`
	ReconcileInterval time.Duration `envconfig:"SECKILL_RECONCILE_INTERVAL" default:"30s"`
	ReconcileGrace    time.Duration `envconfig:"SECKILL_RECONCILE_GRACE" default:"1m"`
	ReconcileBatch    int64         `envconfig:"SECKILL_RECONCILE_BATCH" default:"100"`
	ReconcileLockTTL  time.Duration `envconfig:"SECKILL_RECONCILE_LOCK_TTL" default:"20s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Addr:     "localhost:16379",
			PoolSize: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cache: CacheConfig{
			TTL:                30 * time.Minute,
			NullTTL:            2 * time.Minute,
			TTLJitter:          time.Minute,
			LogicalTTL:         30 * time.Minute,
			RebuildLockTTL:     10 * time.Second,
			RebuildTimeout:     5 * time.Second,
			MutexRetryInterval: 10 * time.Millisecond,
			ShopStrategy:       "passthrough",
		},
		Seckill: SeckillConfig{
			QueueCapacity:     1024,
			QueueOverflow:     "reject",
			OrderIDPrefix:     "order",
			PersistTimeout:    5 * time.Second,
			ReconcileInterval: time.Hour, // effectively disabled; tests call RunOnce
			ReconcileGrace:    time.Minute,
			ReconcileBatch:    100,
			ReconcileLockTTL:  10 * time.Second,
		},
	}
}
