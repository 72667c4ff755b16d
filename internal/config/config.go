package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	UploadDir     string
	LogFile       string
	AdminEmail    string
	AdminPassword string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:          getenv("PORT", "8080"),
		DBDSN:         getenv("DB_DSN", "phones.db"),
		UploadDir:     getenv("UPLOAD_DIR", "./uploads"),
		LogFile:       getenv("LOG_FILE", "./phonestore.log"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@phonestore.test"),
		AdminPassword: getenv("ADMIN_PASSWORD", "Chang3Me!"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s UPLOAD_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.UploadDir, cfg.LogFile)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
