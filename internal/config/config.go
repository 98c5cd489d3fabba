package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	JWTSecret   string
	JWTTTLHours int

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// Timezone the submission window and the weekly jumma trigger are
	// evaluated in.
	Timezone string

	// Day of week the jumma batch runs on (0=Sunday ... 6=Saturday).
	JummaWeekday int

	// Bootstrap admin created on first start when no admin exists.
	AdminEmail    string
	AdminPassword string
	AdminName     string

	LogLevel  string
	LogPretty bool
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	return &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "gatepass"),
		MySQLUser: getenv("MYSQL_USER", "gatepass"),
		MySQLPass: getenv("MYSQL_PASS", "gatepass"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		JWTSecret:   getenv("JWT_SECRET", ""),
		JWTTTLHours: getenvInt("JWT_TTL_HOURS", 12),

		SMTPHost: getenv("SMTP_HOST", ""),
		SMTPPort: getenv("SMTP_PORT", "587"),
		SMTPUser: getenv("SMTP_USER", ""),
		SMTPPass: getenv("SMTP_PASS", ""),
		SMTPFrom: getenv("SMTP_FROM", "gatepass@institute.local"),

		Timezone:     getenv("APP_TIMEZONE", "Asia/Kolkata"),
		JummaWeekday: getenvInt("JUMMA_WEEKDAY", int(time.Friday)),

		AdminEmail:    getenv("ADMIN_EMAIL", ""),
		AdminPassword: getenv("ADMIN_PASSWORD", ""),
		AdminName:     getenv("ADMIN_NAME", "Administrator"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogPretty: getenv("LOG_PRETTY", "") == "true",
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.JummaWeekday < 0 || c.JummaWeekday > 6 {
		return fmt.Errorf("JUMMA_WEEKDAY %d out of range 0-6", c.JummaWeekday)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// Location resolves the configured timezone. Validate must have passed.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
