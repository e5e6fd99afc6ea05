package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	AppEnv string
	Port   string

	DB    DBConfig
	Redis RedisConfig
	Kafka KafkaConfig
	HTTP  HTTPConfig

	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string

	RateLimitRPS   float64
	RateLimitBurst int
}

type DBConfig struct {
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Brokers []string
}

type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func (c Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup; tests pass a map-backed lookup.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	p := parser{lookup: lookup}

	cfg := Config{
		AppEnv: p.str("APP_ENV", EnvDevelopment),
		Port:   p.str("PORT", "3000"),
		DB: DBConfig{
			Host:       p.str("DB_HOST", "localhost"),
			User:       p.str("DB_USER", "postgres"),
			Password:   p.str("DB_PASSWORD", ""),
			Name:       p.str("DB_NAME", "carnetmariage"),
			Port:       p.str("DB_PORT", "5432"),
			SSLMode:    p.str("DB_SSLMODE", "disable"),
			MaxRetries: p.integer("DB_MAX_RETRIES", 5),
		},
		Redis: RedisConfig{
			Addr: p.str("REDIS_ADDR", ""),
		},
		Kafka: KafkaConfig{
			Brokers: p.list("KAFKA_BROKERS"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:  p.duration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: p.duration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  p.duration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		},
		JWTSecret:      p.str("JWT_SECRET", ""),
		TokenTTL:       p.duration("JWT_TTL", 24*time.Hour),
		AllowedOrigins: p.list("CORS_ALLOWED_ORIGINS"),
		RateLimitRPS:   p.decimal("RATE_LIMIT_RPS", 20),
		RateLimitBurst: p.integer("RATE_LIMIT_BURST", 40),
	}
	if p.err != nil {
		return Config{}, p.err
	}

	if cfg.JWTSecret == "" {
		if cfg.AppEnv != EnvDevelopment {
			return Config{}, fmt.Errorf("config: JWT_SECRET is required when APP_ENV=%s", cfg.AppEnv)
		}
		cfg.JWTSecret = "dev-secret-change-me"
	}

	return cfg, nil
}

// parser keeps the first error so Load reports the earliest bad variable.
type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) raw(key string) (string, bool) {
	v, ok := p.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (p *parser) fail(key, v string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
}

func (p *parser) str(key, def string) string {
	if v, ok := p.raw(key); ok {
		return v
	}
	return def
}

func (p *parser) integer(key string, def int) int {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return n
}

func (p *parser) decimal(key string, def float64) float64 {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return f
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return d
}

func (p *parser) list(key string) []string {
	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
