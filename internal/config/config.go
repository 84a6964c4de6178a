package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация приложения
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Database  DatabaseConfig  `toml:"database"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Facility  FacilityConfig  `toml:"facility"`
	Admin     AdminConfig     `toml:"admin"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Redis     RedisConfig     `toml:"redis"`
	Telegram  TelegramConfig  `toml:"telegram"`
	Kafka     KafkaConfig     `toml:"kafka"`
	CORS      CORSConfig      `toml:"cors"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// FacilityConfig данные площадки, используемые в текстах подтверждения
type FacilityConfig struct {
	Name           string `toml:"name"`
	Location       string `toml:"location"`
	CalendarDomain string `toml:"calendar_domain"`
}

// AdminConfig настройки доступа администратора.
// Если задан PasswordHash (bcrypt), Password игнорируется.
type AdminConfig struct {
	Password        string `toml:"password"`
	PasswordHash    string `toml:"password_hash"`
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// RateLimitConfig ограничение частоты запросов на публичные операции записи
type RateLimitConfig struct {
	Enabled       bool   `toml:"enabled"`
	Requests      int    `toml:"requests"`
	WindowSeconds int    `toml:"window_seconds"`
	Backend       string `toml:"backend"` // "memory" | "redis"
	FailOpen      bool   `toml:"fail_open"`
}

// RedisConfig настройки Redis (используется rate limiter'ом)
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// TelegramConfig уведомления администратора. Пустой токен отключает уведомления.
type TelegramConfig struct {
	BotToken       string `toml:"bot_token"`
	ChatID         int64  `toml:"chat_id"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// KafkaConfig публикация событий бронирований. Пустой список брокеров отключает публикацию.
type KafkaConfig struct {
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

// CORSConfig разрешенные источники для браузерного UI
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

const (
	backendMemory = "memory"
	backendRedis  = "redis"
)

// Load загружает конфигурацию из TOML файла.
// Перед чтением подгружается необязательный .env, затем секреты переопределяются из окружения.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "pitch_booking"},
		Facility: FacilityConfig{
			Name:           "Halısaha",
			CalendarDomain: "halisaha",
		},
		Admin: AdminConfig{TokenTTLMinutes: 720},
		RateLimit: RateLimitConfig{
			Enabled:       true,
			Requests:      10,
			WindowSeconds: 600,
			Backend:       backendMemory,
			FailOpen:      true,
		},
		Telegram: TelegramConfig{TimeoutSeconds: 5},
		Kafka:    KafkaConfig{Topic: "booking-events"},
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Admin.Password, "ADMIN_PASSWORD")
	setString(&cfg.Admin.PasswordHash, "ADMIN_PASSWORD_HASH")
	setString(&cfg.Admin.JWTSecret, "JWT_SECRET")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Telegram.ChatID = id
		}
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate проверяет значения, без которых сервис не может работать
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.AdminEnabled() && c.Admin.JWTSecret == "" {
		return errors.New("config: admin.jwt_secret (or JWT_SECRET) is required when an admin password is set")
	}
	if c.Admin.TokenTTLMinutes <= 0 {
		return fmt.Errorf("config: invalid admin.token_ttl_minutes %d", c.Admin.TokenTTLMinutes)
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.Requests <= 0 || c.RateLimit.WindowSeconds <= 0 {
			return errors.New("config: rate_limit.requests and rate_limit.window_seconds must be positive")
		}
		switch c.RateLimit.Backend {
		case backendMemory:
		case backendRedis:
			if c.Redis.Addr == "" {
				return errors.New("config: redis.addr is required for the redis rate limit backend")
			}
		default:
			return fmt.Errorf("config: unknown rate_limit.backend %q", c.RateLimit.Backend)
		}
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == 0 {
		return errors.New("config: telegram.chat_id is required when telegram.bot_token is set")
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		return errors.New("config: kafka.topic is required when kafka.brokers is set")
	}
	return nil
}

// AdminEnabled true, если задан пароль администратора.
// Без него сервис запускается, а вход администратора отвечает ошибкой конфигурации.
func (c *Config) AdminEnabled() bool {
	return c.Admin.Password != "" || c.Admin.PasswordHash != ""
}

// UsesRedisRateLimit true, если rate limiter хранит счетчики в Redis
func (c *Config) UsesRedisRateLimit() bool {
	return c.RateLimit.Enabled && c.RateLimit.Backend == backendRedis
}
