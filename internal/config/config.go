package config

import (
	"fmt"
	"log"
	"os"
)

type Config struct {
	HTTPPort    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	SecretKey   string
	CORSOrigins string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:    getEnv("PORT", "6969"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "suraksha_db"),
		SecretKey:   getEnv("SECRET_KEY", "suraksha-medical-training-2024"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}

	if cfg.SecretKey == "suraksha-medical-training-2024" {
		log.Println("[WARN] SECRET_KEY is using the built-in default, set your own value for production.")
	}
	if cfg.DBPassword == "postgres" {
		log.Println("[WARN] DB_PASSWORD is using the default value, set your own value for production.")
	}

	return cfg
}

// DSN builds the Postgres connection string from the DB_* variables.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
