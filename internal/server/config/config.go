// Package config handles configuration for the staffscore server: defaults,
// an optional JSON file, the process environment (with .env support) and
// command-line flags, applied in that order.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP API.
//   - DBHost / DBPort / DBUser / DBPassword / DBName / DBSSLMode: PostgreSQL connection parameters.
//   - DBMaxOpenConns / DBMaxIdleConns: connection pool limits.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default in prod.
//   - AccessTokenValidityDuration / RefreshTokenValidityDuration: token lifetimes.
//   - LogLevel / LogFormat: zap level and encoder ("json" or "console").
//   - RequestTimeout: upper bound for handling a single request.
//   - AuthRateLimit / AuthRateBurst: per-client token bucket for the auth endpoints; 0 disables it.
type Config struct {
	EndpointAddrHTTP             string
	DBHost                       string
	DBPort                       int
	DBUser                       string
	DBPassword                   string
	DBName                       string
	DBSSLMode                    string
	DBMaxOpenConns               int
	DBMaxIdleConns               int
	SecretKey                    string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	LogLevel                     string
	LogFormat                    string
	RequestTimeout               time.Duration
	AuthRateLimit                int
	AuthRateBurst                int
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.DBHost = "localhost"
	c.DBPort = 5432
	c.DBUser = "postgres"
	c.DBPassword = "postgres"
	c.DBName = "staffscore"
	c.DBSSLMode = "disable"
	c.DBMaxOpenConns = 20
	c.DBMaxIdleConns = 5
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = time.Hour
	c.RefreshTokenValidityDuration = 30 * 24 * time.Hour
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.RequestTimeout = 15 * time.Second
	c.AuthRateLimit = 5
	c.AuthRateBurst = 10
}

// DatabaseDSN returns a pgx connection URL built from the DB* fields.
func (c *Config) DatabaseDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

// LoadConfig builds a Config by applying defaults, then the optional JSON
// file, then environment variables and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}
