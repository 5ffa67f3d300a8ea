package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/staffscore/internal/flagx"
	"github.com/dmitrijs2005/staffscore/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Pointer fields distinguish an
// absent key from a zero value, so a file may override only what it names.
type JsonConfig struct {
	EndpointAddrHTTP             *string         `json:"endpoint_addr_http"`
	DBHost                       *string         `json:"db_host"`
	DBPort                       *int            `json:"db_port"`
	DBUser                       *string         `json:"db_user"`
	DBPassword                   *string         `json:"db_password"`
	DBName                       *string         `json:"db_name"`
	DBSSLMode                    *string         `json:"db_sslmode"`
	DBMaxOpenConns               *int            `json:"db_max_open_conns"`
	DBMaxIdleConns               *int            `json:"db_max_idle_conns"`
	SecretKey                    *string         `json:"secret_key"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration"`
	LogLevel                     *string         `json:"log_level"`
	LogFormat                    *string         `json:"log_format"`
	RequestTimeout               *timex.Duration `json:"request_timeout"`
	AuthRateLimit                *int            `json:"auth_rate_limit"`
	AuthRateBurst                *int            `json:"auth_rate_burst"`
}

// parseJson overlays values from the file named by -c/-config. Nothing is
// loaded when the flag is absent. An unreadable or invalid file panics,
// since the server cannot start with a config the operator did not intend.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DBHost, c.DBHost)
	setInt(&config.DBPort, c.DBPort)
	setString(&config.DBUser, c.DBUser)
	setString(&config.DBPassword, c.DBPassword)
	setString(&config.DBName, c.DBName)
	setString(&config.DBSSLMode, c.DBSSLMode)
	setInt(&config.DBMaxOpenConns, c.DBMaxOpenConns)
	setInt(&config.DBMaxIdleConns, c.DBMaxIdleConns)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	setInt(&config.AuthRateLimit, c.AuthRateLimit)
	setInt(&config.AuthRateBurst, c.AuthRateBurst)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration != nil {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.RequestTimeout != nil {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
