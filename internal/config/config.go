package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Energy    EnergyConfig    `mapstructure:"energy"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           string        `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
}

// RedisConfig holds the connection used for cross-instance cycle locks
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	LockTTL  time.Duration `mapstructure:"lockTTL"`
}

// EnergyConfig holds the energy rules and the bulk grant batching
type EnergyConfig struct {
	MaxEnergy     int `mapstructure:"max"`
	CatchUpCap    int `mapstructure:"catchUpCap"`
	InitialEnergy int `mapstructure:"initial"`
	UTCOffsetHour int `mapstructure:"utcOffsetHours"`
	BulkBatchSize int `mapstructure:"bulkBatchSize"`
}

// SchedulerConfig holds the daily bulk grant job configuration
type SchedulerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DailyAt string `mapstructure:"dailyAt"`
}

// CORSConfig holds the origins allowed to call the API from the browser
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allowOrigins"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string        `mapstructure:"level"`
	File  LogFileConfig `mapstructure:"file"`
}

// LogFileConfig enables a rotating file sink next to stdout
type LogFileConfig struct {
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"maxSizeMB"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAgeDays"`
	Compress   bool   `mapstructure:"compress"`
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the server address for binding
func (c *Config) GetServerAddress() string {
	port := c.Server.Port
	if port == "" {
		port = "8080"
	}
	return fmt.Sprintf("%s:%s", c.Server.Host, port)
}

// ApplyDefaults fills the values a config file may leave out
func (c *Config) ApplyDefaults() {
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = 30 * time.Second
	}
	if c.Energy.MaxEnergy <= 0 {
		c.Energy.MaxEnergy = 100
	}
	if c.Energy.CatchUpCap <= 0 {
		c.Energy.CatchUpCap = 3
	}
	if c.Energy.InitialEnergy <= 0 {
		c.Energy.InitialEnergy = 1
	}
	if c.Energy.UTCOffsetHour == 0 {
		c.Energy.UTCOffsetHour = 3
	}
	if c.Energy.BulkBatchSize <= 0 {
		c.Energy.BulkBatchSize = 50
	}
	if c.Scheduler.DailyAt == "" {
		c.Scheduler.DailyAt = "00:00"
	}
	if c.Redis.LockTTL <= 0 {
		c.Redis.LockTTL = 10 * time.Minute
	}
}

// GetEnvironment returns the current environment
func GetEnvironment() string {
	if env := os.Getenv("PREDICTOR_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "development"
}
