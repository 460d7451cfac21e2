package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Pagination bounds for the comments listing.
const (
	DefaultPage          int64 = 1
	DefaultLimitComments int64 = 10
	MaxLimitComments     int64 = 100
)

type Config struct {
	MongoURI  string
	DBName    string
	Port      string
	JWTSecret string
}

// Load reads the environment, letting a local .env override it the same way
// the deploy scripts do.
func Load() Config {
	if err := godotenv.Overload(".env"); err != nil {
		logrus.Info("no .env file found, using system environment variables")
	}

	cfg := Config{
		MongoURI:  os.Getenv("MONGO_URI"),
		DBName:    getenv("DB_NAME", "vidtube"),
		Port:      getenv("PORT", "8080"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
