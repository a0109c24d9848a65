package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr     string
	GinMode     string
	JWTSecret   string
	DBDSN       string
	CORSOrigins []string
}

// LoadEnv reads .env when present, then the process environment.
func LoadEnv() Env {
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/restaurant_app?parseTime=true&loc=UTC&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		JWTSecret:   secret,
		DBDSN:       dsn,
		CORSOrigins: origins,
	}
}
