package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Redis        RedisConfig        `toml:"redis"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	StaffService StaffServiceConfig `toml:"staff_service"`
	Schedule     ScheduleConfig     `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к Postgres
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

// DSN возвращает строку подключения к Postgres
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки кеша расписания.
// При Enabled=false или недоступности Redis сервис работает напрямую с БД.
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StaffServiceConfig настройки клиента сервиса персонала
type StaffServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// ScheduleConfig геометрия дневной сетки расписания
type ScheduleConfig struct {
	StartHour               int     `toml:"start_hour"`
	EndHour                 int     `toml:"end_hour"`
	HourHeightPx            float64 `toml:"hour_height_px"`
	HeaderHeightPx          float64 `toml:"header_height_px"`
	InitialScrollHours      float64 `toml:"initial_scroll_hours"`
	TodayScrollHours        float64 `toml:"today_scroll_hours"`
	IndicatorRefreshSeconds int     `toml:"indicator_refresh_seconds"`
}

// Load читает конфигурацию из TOML файла и подставляет дефолты
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults подставляет значения по умолчанию для незаполненных полей
func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Redis.TTLSeconds == 0 {
		c.Redis.TTLSeconds = 30
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "rbm-schedule-service"
	}

	if c.StaffService.Timeout == 0 {
		c.StaffService.Timeout = 3
	}

	if c.Schedule.EndHour == 0 {
		c.Schedule.StartHour = domain.DefaultStartHour
		c.Schedule.EndHour = domain.DefaultEndHour
	}
	if c.Schedule.HourHeightPx == 0 {
		c.Schedule.HourHeightPx = domain.DefaultHourHeightPx
	}
	if c.Schedule.HeaderHeightPx == 0 {
		c.Schedule.HeaderHeightPx = domain.DefaultHeaderHeightPx
	}
	if c.Schedule.InitialScrollHours == 0 {
		c.Schedule.InitialScrollHours = domain.DefaultInitialScrollHours
	}
	if c.Schedule.TodayScrollHours == 0 {
		c.Schedule.TodayScrollHours = domain.DefaultTodayScrollHours
	}
	if c.Schedule.IndicatorRefreshSeconds == 0 {
		c.Schedule.IndicatorRefreshSeconds = domain.DefaultIndicatorRefreshSeconds
	}
}

// validate проверяет согласованность конфигурации
func (c *Config) validate() error {
	if c.Schedule.StartHour < 0 || c.Schedule.StartHour > 23 {
		return fmt.Errorf("config: schedule.start_hour must be in [0, 23], got %d", c.Schedule.StartHour)
	}
	if c.Schedule.EndHour < 1 || c.Schedule.EndHour > 24 {
		return fmt.Errorf("config: schedule.end_hour must be in [1, 24], got %d", c.Schedule.EndHour)
	}
	if c.Schedule.EndHour <= c.Schedule.StartHour {
		return fmt.Errorf("config: schedule.end_hour (%d) must be greater than schedule.start_hour (%d)",
			c.Schedule.EndHour, c.Schedule.StartHour)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	return nil
}
