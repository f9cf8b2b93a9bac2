package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// BookingConfig holds the reservation engine knobs.
type BookingConfig struct {
	// AuditPageSize is the fixed page size of the admin audit queue.
	AuditPageSize int
	// UserPageSize is the page size of user-facing listings.
	UserPageSize int
	// ConflictRetries bounds serialization-failure retries on submit/update.
	ConflictRetries int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("AUDIT_PAGE_SIZE", 10)
	viper.SetDefault("USER_PAGE_SIZE", 10)
	viper.SetDefault("CONFLICT_RETRIES", 3)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Booking: BookingConfig{
			AuditPageSize:   viper.GetInt("AUDIT_PAGE_SIZE"),
			UserPageSize:    viper.GetInt("USER_PAGE_SIZE"),
			ConflictRetries: viper.GetInt("CONFLICT_RETRIES"),
		},
	}

	return config, nil
}
