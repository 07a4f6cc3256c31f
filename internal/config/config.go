package config

import (
	"net"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	AuthModeHeader = "header"
	AuthModeJWT    = "jwt"
)

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	HTTP     HTTPConfig     `env-prefix:"HTTP_"`
	GRPC     GRPCConfig     `env-prefix:"GRPC_"`
	Database DatabaseConfig `env-prefix:"DB_"`
	Auth     AuthConfig     `env-prefix:"AUTH_"`
	Redis    RedisConfig    `env-prefix:"REDIS_"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type HTTPConfig struct {
	Addr        string        `env:"ADDR" env-default:":8081" validate:"hostname_port"`
	BodyLimit   int           `env:"BODY_LIMIT" env-default:"65536" validate:"min=1024"`
	CORSOrigins string        `env:"CORS_ORIGINS" env-default:"*"`
	RateLimit   int           `env:"RATE_LIMIT" env-default:"100" validate:"min=1"`
	RateWindow  time.Duration `env:"RATE_WINDOW" env-default:"1m" validate:"min=1s"`
}

type GRPCConfig struct {
	Addr           string        `env:"ADDR" env-default:":50051" validate:"hostname_port"`
	HealthInterval time.Duration `env:"HEALTH_INTERVAL" env-default:"10s" validate:"min=1s"`
	KeepaliveTime  time.Duration `env:"KEEPALIVE_TIME" env-default:"2h"`
	Reflection     bool          `env:"REFLECTION" env-default:"false"`
}

type DatabaseConfig struct {
	Driver        string `env:"DRIVER" env-default:"postgres" validate:"oneof=postgres sqlite"`
	Port          string `env:"PORT" env-default:"5432"`
	Host          string `env:"HOST" env-default:"localhost"`
	Name          string `env:"NAME" env-default:"postgres"`
	User          string `env:"USER" env-default:"user"`
	Password      string `env:"PASSWORD"`
	Path          string `env:"PATH" env-default:"color-notes.db" validate:"required_if=Driver sqlite"`
	RetryAttempts uint   `env:"RETRY_ATTEMPTS" env-default:"3" validate:"min=1,max=10"`
	MaxConns      int32  `env:"MAX_CONNS" env-default:"10" validate:"min=1,max=50"`
	Migrate       bool   `env:"MIGRATE" env-default:"true"`
}

func (c DatabaseConfig) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type AuthConfig struct {
	Mode          string `env:"MODE" env-default:"header" validate:"oneof=header jwt"`
	AccountHeader string `env:"ACCOUNT_HEADER" env-default:"X-Account-Id"`
	UserHeader    string `env:"USER_HEADER" env-default:"X-User-Id"`
	JWTSecret     string `env:"JWT_SECRET" validate:"required_if=Mode jwt"`
}

// RedisConfig is optional. Without an address the rate limiter keeps
// counters in process memory.
type RedisConfig struct {
	Addr     string `env:"ADDR" validate:"omitempty,hostname_port"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" env-default:"0" validate:"min=0"`
	Prefix   string `env:"PREFIX" env-default:"color-notes:"`
}
