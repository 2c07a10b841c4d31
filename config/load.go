package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func Load() App {
	// .env is optional; deployments set real env vars.
	_ = godotenv.Load()

	cfg := App{
		Port:           getenv("APP_PORT", "8080"),
		MongoURI:       must("MONGO_URI"),
		MongoDB:        getenv("MONGO_DB", "rentabook"),
		JWTSecret:      getenv("JWT_SECRET", "local_dev_secret"),
		JWTTTLHours:    getint("JWT_TTL_HOURS", 24),
		GoogleBooksKey: os.Getenv("GOOGLE_BOOKS_KEY"),
		Env:            getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
