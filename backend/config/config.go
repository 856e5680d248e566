package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	Host      string
	Port      string
	PublicDir string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		DBPath:    getEnv("DB_PATH", "data/app.db"),
		Host:      getEnv("HOST", "0.0.0.0"),
		Port:      getEnv("PORT", "3000"),
		PublicDir: getEnv("PUBLIC_DIR", "public"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
