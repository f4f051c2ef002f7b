package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		DSN string `mapstructure:"dsn"` // "memory" or a SQLite file path
	}
	Locales struct {
		Dir             string   `mapstructure:"dir"`
		DefaultLanguage string   `mapstructure:"default_language"`
		Preload         []string `mapstructure:"preload"`
	}
}

// AppConfig is the global configuration instance.
var AppConfig Config

// LoadConfig loads configuration from config.yaml (optional) and
// environment variables, with sensible defaults for every key.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../config") // for running from test directories

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.dsn", "memory")
	viper.SetDefault("locales.dir", "locales")
	viper.SetDefault("locales.default_language", "en")
	viper.SetDefault("locales.preload", []string{"en", "fr"})

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("WARN: [Config] Configuration file (config.yaml) not found. Using environment variables and defaults.")
		} else {
			log.Fatalf("FATAL: [Config] Error reading configuration file: %v", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("FATAL: [Config] Failed to unmarshal configuration: %v", err)
	}

	// Environment variable overrides
	if port := os.Getenv("SERVER_PORT"); port != "" {
		AppConfig.Server.Port = port
		log.Printf("INFO: [Config] Server port overridden by environment variable SERVER_PORT: %s", port)
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		AppConfig.Database.DSN = dsn
		log.Printf("INFO: [Config] Database DSN overridden by environment variable DATABASE_DSN.")
	}
	if lang := os.Getenv("DEFAULT_LANGUAGE"); lang != "" {
		AppConfig.Locales.DefaultLanguage = lang
		log.Printf("INFO: [Config] Default language overridden by environment variable DEFAULT_LANGUAGE: %s", lang)
	}

	log.Println("INFO: [Config] Configuration loading complete.")
}
