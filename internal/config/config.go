package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/ORS-BookingService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	IdentityService IdentityServiceConfig `toml:"identity_service"`
	EmailJS         EmailJSConfig         `toml:"emailjs"`
	Booking         BookingConfig         `toml:"booking"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IdentityServiceConfig настройки клиента IdentityService
type IdentityServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// EmailJSConfig настройки клиента EmailJS для отправки подтверждений
type EmailJSConfig struct {
	URL        string `toml:"url"`
	ServiceID  string `toml:"service_id"`
	TemplateID string `toml:"template_id"`
	PublicKey  string `toml:"public_key"`
	Timeout    int    `toml:"timeout"`
}

// BookingConfig бизнес-правила бронирования смен
type BookingConfig struct {
	// MaxParticipants количество подтвержденных мест на смене
	MaxParticipants int `toml:"max_participants"`
	// MaxWaitlist длина листа ожидания
	MaxWaitlist int `toml:"max_waitlist"`
	// CancelCutoffHours за сколько часов до смены запрещена отмена записи
	CancelCutoffHours int `toml:"cancel_cutoff_hours"`
	// LeaveWaitlistCutoffHours за сколько часов запрещен выход из листа ожидания
	LeaveWaitlistCutoffHours int `toml:"leave_waitlist_cutoff_hours"`
	// AllowedEmailSuffix допустимый суффикс институтской почты (например, "@studenti.uniroma1.it")
	AllowedEmailSuffix string `toml:"allowed_email_suffix"`
	// ActionTimeoutSeconds таймаут одной операции бронирования
	ActionTimeoutSeconds int `toml:"action_timeout_seconds"`
}

// Load загружает конфигурацию из TOML-файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Booking.MaxParticipants == 0 {
		cfg.Booking.MaxParticipants = domain.DefaultMaxParticipants
	}
	if cfg.Booking.MaxWaitlist == 0 {
		cfg.Booking.MaxWaitlist = domain.DefaultMaxWaitlist
	}
	if cfg.Booking.CancelCutoffHours == 0 {
		cfg.Booking.CancelCutoffHours = domain.DefaultCancelCutoffHours
	}
	if cfg.Booking.LeaveWaitlistCutoffHours == 0 {
		cfg.Booking.LeaveWaitlistCutoffHours = domain.DefaultLeaveWaitlistCutoffHours
	}
	if cfg.Booking.ActionTimeoutSeconds == 0 {
		cfg.Booking.ActionTimeoutSeconds = domain.DefaultActionTimeoutSeconds
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func validate(cfg *Config) error {
	if cfg.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Booking.AllowedEmailSuffix == "" {
		return fmt.Errorf("config: booking.allowed_email_suffix is required")
	}
	return nil
}
