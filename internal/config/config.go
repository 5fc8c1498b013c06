package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Init loads .env and verifies the keys the process cannot run without.
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	required := []string{
		"DB_DSN",
		"REDIS_ADDR",
		"JWT_SECRET",
		"STORAGE_URL",
		"STORAGE_BUCKET",
		"STORAGE_SERVICE_KEY",
	}
	for _, key := range required {
		if os.Getenv(key) == "" {
			Logger.Fatal(key + " is not set")
		}
	}
}
