package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// PayrollConfig holds the tunable payroll policy inputs. The arithmetic
// constants (30-day month, 9-hour workday, meal allowance) are fixed in the
// payroll engine; only the ratios that depend on company policy live here.
type PayrollConfig struct {
	// LateMinutesPerDeductionDay converts cumulative late minutes beyond the
	// monthly allowance into a fractional deduction-day equivalent.
	LateMinutesPerDeductionDay int
	// MedicalLeaveDeductionFactor is the fraction of a day deducted per
	// medical-leave day.
	MedicalLeaveDeductionFactor float64
}

func Load() (*Config, error) {
	// A missing .env is fine in production; env vars win either way.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hadir_hr"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	lateMinutes, err := strconv.Atoi(getEnv("PAYROLL_LATE_MINUTES_PER_DAY", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_LATE_MINUTES_PER_DAY: %w", err)
	}
	medicalFactor, err := strconv.ParseFloat(getEnv("PAYROLL_MEDICAL_LEAVE_DEDUCTION_FACTOR", "0.25"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_MEDICAL_LEAVE_DEDUCTION_FACTOR: %w", err)
	}

	config.Payroll = PayrollConfig{
		LateMinutesPerDeductionDay:  lateMinutes,
		MedicalLeaveDeductionFactor: medicalFactor,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Database.MaxConns <= 0 || c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MAX_CONNS/DB_MIN_CONNS must describe a valid pool size")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.LateMinutesPerDeductionDay <= 0 {
		return fmt.Errorf("PAYROLL_LATE_MINUTES_PER_DAY must be positive")
	}
	if c.Payroll.MedicalLeaveDeductionFactor < 0 || c.Payroll.MedicalLeaveDeductionFactor > 1 {
		return fmt.Errorf("PAYROLL_MEDICAL_LEAVE_DEDUCTION_FACTOR must be between 0 and 1")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
