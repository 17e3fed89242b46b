package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/trip-planner/internal/pkg/validator"
)

const defaultConfigFile = ".env"

type Config struct {
	GraphHopper GraphHopperConfig
	Trip        TripConfig
	History     HistoryConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Log         LogConfig
	Worker      WorkerConfig
}

type GraphHopperConfig struct {
	BaseURL        string `validate:"required,url"`
	APIKey         string
	RequestTimeout int `validate:"min=1"` // seconds
	Locale         string
}

type TripConfig struct {
	Vehicle        string
	Units          string
	OnInvalidInput string `validate:"oneof=default reject"`
}

type HistoryConfig struct {
	File          string `validate:"required"`
	StreamEnabled bool
	Stream        string `validate:"required"`
}

type ServerConfig struct {
	Host string
	Port int `validate:"min=1,max=65535"`
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	BatchSize     int `validate:"min=1,max=1000"`
}

// Load читает конфигурацию из .env (если файл есть), окружения и флагов
func Load(flags *pflag.FlagSet) (*Config, error) {
	return LoadFrom(defaultConfigFile, flags)
}

// LoadFrom читает конфигурацию из указанного файла.
// Отсутствующий файл не считается ошибкой: CLI должен работать только с переменными окружения.
func LoadFrom(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := v.BindEnv("GRAPHHOPPER_API_KEY", "GRAPHHOPPER_API_KEY", "GRAPHOPPER_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key env: %w", err)
	}
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		GraphHopper: GraphHopperConfig{
			BaseURL:        strings.TrimRight(v.GetString("GRAPHHOPPER_BASE_URL"), "/"),
			APIKey:         strings.TrimSpace(v.GetString("GRAPHHOPPER_API_KEY")),
			RequestTimeout: v.GetInt("GRAPHHOPPER_TIMEOUT"),
			Locale:         v.GetString("GRAPHHOPPER_LOCALE"),
		},
		Trip: TripConfig{
			Vehicle:        v.GetString("TRIP_VEHICLE"),
			Units:          v.GetString("TRIP_UNITS"),
			OnInvalidInput: strings.ToLower(v.GetString("TRIP_ON_INVALID_INPUT")),
		},
		History: HistoryConfig{
			File:          v.GetString("HISTORY_FILE"),
			StreamEnabled: v.GetBool("HISTORY_STREAM_ENABLED"),
			Stream:        v.GetString("HISTORY_STREAM"),
		},
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       v.GetBool("WORKER_ENABLED"),
			ConsumerGroup: v.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:     v.GetInt("WORKER_BATCH_SIZE"),
		},
	}

	if err := validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GRAPHHOPPER_BASE_URL", "https://graphhopper.com/api/1")
	v.SetDefault("GRAPHHOPPER_TIMEOUT", 15)
	v.SetDefault("GRAPHHOPPER_LOCALE", "en")

	v.SetDefault("TRIP_VEHICLE", "car")
	v.SetDefault("TRIP_UNITS", "km")
	v.SetDefault("TRIP_ON_INVALID_INPUT", "default")

	v.SetDefault("HISTORY_FILE", "route_history.txt")
	v.SetDefault("HISTORY_STREAM_ENABLED", false)
	v.SetDefault("HISTORY_STREAM", "stream:trip:history")

	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")

	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("WORKER_ENABLED", false)
	v.SetDefault("WORKER_CONSUMER_GROUP", "trip-history-archivers")
	v.SetDefault("WORKER_BATCH_SIZE", 20)
}

// flagKeys связывает флаги CLI с ключами конфигурации
var flagKeys = map[string]string{
	"api-key": "GRAPHHOPPER_API_KEY",
	"vehicle": "TRIP_VEHICLE",
	"units":   "TRIP_UNITS",
	"history": "HISTORY_FILE",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// HasAPIKey проверяет, задан ли ключ GraphHopper
func (c *Config) HasAPIKey() bool {
	return c.GraphHopper.APIKey != ""
}

// ArchiveEnabled проверяет, настроена ли БД архива истории
func (c *Config) ArchiveEnabled() bool {
	return c.Database.Host != ""
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
