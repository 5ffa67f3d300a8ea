package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// dotEnvFile is loaded into the process environment when present. Variables
// already set in the environment win over the file.
var dotEnvFile = ".env"

// parseEnv overlays connection parameters and the signing secret from the
// environment.
func parseEnv(config *Config) {
	if _, err := os.Stat(dotEnvFile); err == nil {
		_ = godotenv.Load(dotEnvFile)
	}

	lookupString("HTTP_ADDR", &config.EndpointAddrHTTP)
	lookupString("DB_HOST", &config.DBHost)
	lookupInt("DB_PORT", &config.DBPort)
	lookupString("DB_USER", &config.DBUser)
	lookupString("DB_PASSWORD", &config.DBPassword)
	lookupString("DB_NAME", &config.DBName)
	lookupString("DB_SSLMODE", &config.DBSSLMode)
	lookupString("SECRET_KEY", &config.SecretKey)
	lookupString("LOG_LEVEL", &config.LogLevel)
	lookupString("LOG_FORMAT", &config.LogFormat)
	lookupInt("AUTH_RATE_LIMIT", &config.AuthRateLimit)
	lookupInt("AUTH_RATE_BURST", &config.AuthRateBurst)
}

func lookupString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func lookupInt(key string, dst *int) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic("invalid " + key + ": " + err.Error())
	}
	*dst = n
}
