package utils

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	Timezone        string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host       string
	Port       string
	Name       string
	User       string
	Password   string
	MaxConns   int32
	AutoSchema bool
}

// BookingConfig holds the operating window and the slot uniqueness switch.
type BookingConfig struct {
	OpenTime          string
	CloseTime         string
	EnforceUniqueSlot bool
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "padel-booking")
	v.SetDefault("PORT", "8000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("APP_TIMEZONE", "Local")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_SCHEMA", true)
	v.SetDefault("SLOT_OPEN_TIME", "17:00")
	v.SetDefault("SLOT_CLOSE_TIME", "04:00")
	v.SetDefault("BOOKING_ENFORCE_UNIQUE_SLOT", false)

	// .env is optional, plain environment variables are enough
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			Timezone:        v.GetString("APP_TIMEZONE"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:       v.GetString("DB_HOST"),
			Port:       v.GetString("DB_PORT"),
			Name:       v.GetString("DB_NAME"),
			User:       v.GetString("DB_USER"),
			Password:   v.GetString("DB_PASS"),
			MaxConns:   v.GetInt32("DB_MAX_CONNS"),
			AutoSchema: v.GetBool("DB_AUTO_SCHEMA"),
		},
		Booking: BookingConfig{
			OpenTime:          v.GetString("SLOT_OPEN_TIME"),
			CloseTime:         v.GetString("SLOT_CLOSE_TIME"),
			EnforceUniqueSlot: v.GetBool("BOOKING_ENFORCE_UNIQUE_SLOT"),
		},
	}

	if _, err := loadLocation(config.App.Timezone); err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", config.App.Timezone, err)
	}

	return config, nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// Location resolves APP_TIMEZONE. LoadConfig rejects unknown zones, so the
// time.Local fallback only applies to configs built by hand.
func (c AppConfig) Location() *time.Location {
	loc, err := loadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
