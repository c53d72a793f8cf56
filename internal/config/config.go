package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

type StoreConfig struct {
	Driver     string
	FileRoot   string
	SQLitePath string
}

type AuthConfig struct {
	AdminUsername string
	AdminPassword string // plain credential or bcrypt hash
	JWTSecret     string
	AccessExpiry  int // in minutes
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("STORE_DRIVER", "sqlite")
	viper.SetDefault("STORE_FILE_ROOT", "./data")
	viper.SetDefault("STORE_SQLITE_PATH", "./catalog.db")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("JWT_SECRET", "dev-secret")
	viper.SetDefault("JWT_ACCESS_EXPIRY", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			Env:            viper.GetString("SERVER_ENV"),
			AllowedOrigins: strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ","),
		},
		Store: StoreConfig{
			Driver:     viper.GetString("STORE_DRIVER"),
			FileRoot:   viper.GetString("STORE_FILE_ROOT"),
			SQLitePath: viper.GetString("STORE_SQLITE_PATH"),
		},
		Auth: AuthConfig{
			AdminUsername: viper.GetString("ADMIN_USERNAME"),
			AdminPassword: viper.GetString("ADMIN_PASSWORD"),
			JWTSecret:     viper.GetString("JWT_SECRET"),
			AccessExpiry:  viper.GetInt("JWT_ACCESS_EXPIRY"),
		},
	}
}
