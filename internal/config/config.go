package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	// DriverMemory keeps data in process memory only
	DriverMemory = "memory"
	// DriverSQLite keeps data in local sqlite file
	DriverSQLite = "sqlite"
	// DriverRedis keeps data in redis
	DriverRedis = "redis"
	// DriverPostgres keeps data in postgres table
	DriverPostgres = "postgres"
	// DriverMongo keeps data in mongo collection
	DriverMongo = "mongo"
)

type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type StorageCfg struct {
	Driver         string        `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	Codec          string        `env:"STORAGE_CODEC" envDefault:"json"`
	Namespace      string        `env:"STORAGE_NAMESPACE" envDefault:"crm"`
	ConnectTimeout time.Duration `env:"STORAGE_CONNECT_TIMEOUT" envDefault:"5s"`
}

type SQLiteCfg struct {
	Path string `env:"SQLITE_PATH" envDefault:"crm.db"`
}

type RedisCfg struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type PostgresCfg struct {
	User        string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Host        string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	Database    string `env:"POSTGRES_DB" envDefault:"crm"`
	SslMode     string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"10"`
}

type MongoCfg struct {
	User        string `env:"MONGO_USER"`
	Password    string `env:"MONGO_PASSWORD"`
	Host        string `env:"MONGO_HOST" envDefault:"localhost"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	Database    string `env:"MONGO_DB" envDefault:"crm"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

type Config struct {
	HTTPCfg     HTTPCfg
	LogCfg      LogCfg
	StorageCfg  StorageCfg
	SQLiteCfg   SQLiteCfg
	RedisCfg    RedisCfg
	PostgresCfg PostgresCfg
	MongoCfg    MongoCfg
}

// Build reads configuration from environment, values from .env file are applied first if it exists
func Build(envFiles ...string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env file - %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	switch cfg.StorageCfg.Driver {
	case DriverMemory, DriverSQLite, DriverRedis, DriverPostgres, DriverMongo:
	default:
		return cfg, fmt.Errorf("unsupported storage driver %q", cfg.StorageCfg.Driver)
	}

	return cfg, nil
}
