package config

import (
	"errors"
	"fmt"
	"time"

	"opiol_backend/pkg/clientcache"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Log       LogConfig       `mapstructure:"log"`
	Transport TransportConfig `mapstructure:"transport"`
	Draft     DraftConfig     `mapstructure:"draft"`
	Redis     RedisConfig
	Wizard    WizardConfig    `mapstructure:"wizard"`
	Advisor   AdvisorConfig   `mapstructure:"advisor"`
	Clients   ClientsConfig   `mapstructure:"clients"`
	I18n      I18nConfig      `mapstructure:"i18n"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ConfigPath string `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type LogConfig struct {
	Service    string `mapstructure:"service"`
	Level      string `mapstructure:"level"` // 为空时按 server.mode 决定
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// TransportConfig 模拟网络调用的延迟与失败概率
type TransportConfig struct {
	DelayMs     int     `mapstructure:"delay_ms"`
	FailureRate float64 `mapstructure:"failure_rate"`
}

func (c TransportConfig) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

type DraftConfig struct {
	Store   string `mapstructure:"store"` // memory, redis, file
	Key     string `mapstructure:"key"`
	FileDir string `mapstructure:"file_dir"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type WizardConfig struct {
	RedirectDelayMs        int    `mapstructure:"redirect_delay_ms"`
	RedirectPath           string `mapstructure:"redirect_path"`
	NotificationDurationMs int    `mapstructure:"notification_duration_ms"`
}

func (c WizardConfig) RedirectDelay() time.Duration {
	return time.Duration(c.RedirectDelayMs) * time.Millisecond
}

func (c WizardConfig) NotificationDuration() time.Duration {
	return time.Duration(c.NotificationDurationMs) * time.Millisecond
}

type AdvisorConfig struct {
	TypingDelayMs int `mapstructure:"typing_delay_ms"`
}

func (c AdvisorConfig) TypingDelay() time.Duration {
	return time.Duration(c.TypingDelayMs) * time.Millisecond
}

// ClientsConfig 限制内存中按客户端保存的状态（向导、路线图、对话、个人主页）
type ClientsConfig struct {
	MaxClients  int `mapstructure:"max_clients"`
	IdleMinutes int `mapstructure:"idle_minutes"`
}

func (c ClientsConfig) Limits() clientcache.Limits {
	return clientcache.Limits{
		MaxClients:  c.MaxClients,
		IdleTimeout: time.Duration(c.IdleMinutes) * time.Minute,
	}
}

type I18nConfig struct {
	DefaultLanguage string `mapstructure:"default_language"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig MaxRequests 为 0 时不限流
type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func (c *Config) IsDebug() bool {
	return c.Server.Mode == "debug"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("log.service", "opiol-backend")
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "logs/app.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)

	v.SetDefault("transport.delay_ms", 1500)
	v.SetDefault("transport.failure_rate", 0.3)

	v.SetDefault("draft.store", "memory")
	v.SetDefault("draft.key", "profile-setup")
	v.SetDefault("draft.file_dir", "data/drafts")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	v.SetDefault("wizard.redirect_delay_ms", 1500)
	v.SetDefault("wizard.redirect_path", "/dashboard")
	v.SetDefault("wizard.notification_duration_ms", 3000)

	v.SetDefault("advisor.typing_delay_ms", 1500)

	v.SetDefault("clients.max_clients", 10000)
	v.SetDefault("clients.idle_minutes", 30)

	v.SetDefault("i18n.default_language", "en")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("rate_limit.max_requests", 0)
	v.SetDefault("rate_limit.window_minutes", 1)
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("OPIOL")
	v.AutomaticEnv()

	setDefaults(v)

	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// Transport
	v.BindEnv("transport.delay_ms", "TRANSPORT_DELAY_MS")
	v.BindEnv("transport.failure_rate", "TRANSPORT_FAILURE_RATE")

	// Draft store / Redis
	v.BindEnv("draft.store", "DRAFT_STORE")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Log
	v.BindEnv("log.level", "LOG_LEVEL")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Transport.FailureRate < 0 || c.Transport.FailureRate > 1 {
		return fmt.Errorf("transport.failure_rate must be within [0, 1], got %v", c.Transport.FailureRate)
	}
	if c.Transport.DelayMs < 0 {
		return fmt.Errorf("transport.delay_ms must not be negative, got %d", c.Transport.DelayMs)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	switch c.Draft.Store {
	case "memory", "redis", "file":
	default:
		return fmt.Errorf("unknown draft.store %q", c.Draft.Store)
	}
	if c.Clients.MaxClients < 0 || c.Clients.IdleMinutes < 0 {
		return errors.New("clients.max_clients and clients.idle_minutes must not be negative")
	}
	if c.Draft.Key == "" {
		return errors.New("draft.key must not be empty")
	}
	return nil
}
