package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Telegram TelegramConfig
	Auth     AuthConfig
	Store    StoreConfig
}

type TelegramConfig struct {
	Token string
}

// AuthConfig holds the two reserved login codes. They are shared secrets,
// not real credentials; the defaults match the original mobile app so
// existing codes keep working.
type AuthConfig struct {
	AdminCode    string
	CustomerCode string
}

type StoreConfig struct {
	Path        string // JSON file for the session store
	DatabaseURL string // when set, sessions go to Postgres instead
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Telegram: TelegramConfig{
			Token: getEnv("TOKEN", ""),
		},
		Auth: AuthConfig{
			AdminCode:    getEnv("ADMIN_CODE", "AAHAR2024"),
			CustomerCode: getEnv("CUSTOMER_CODE", "CUSTOMER24"),
		},
		Store: StoreConfig{
			Path:        getEnv("STORE_PATH", "sessions.json"),
			DatabaseURL: getEnv("DATABASE_URL", ""),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
