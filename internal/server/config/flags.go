package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/staffscore/internal/flagx"
)

// parseFlags populates Config from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-H string   database host
//	-P int      database port
//	-u string   database user
//	-p string   database password
//	-n string   database name
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, hours
//	-l string   log level
//
// Only the flags above are picked out of args, so flags meant for other
// components never cause a parse error here.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-H", "-P", "-u", "-p", "-n", "-s", "-t", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DBHost, "H", config.DBHost, "database host")
	fs.IntVar(&config.DBPort, "P", config.DBPort, "database port")
	fs.StringVar(&config.DBUser, "u", config.DBUser, "database user")
	fs.StringVar(&config.DBPassword, "p", config.DBPassword, "database password")
	fs.StringVar(&config.DBName, "n", config.DBName, "database name")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	accessMinutes := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshHours := fs.Int("r", int(config.RefreshTokenValidityDuration.Hours()), "refresh token validity (in hours)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessMinutes) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshHours) * time.Hour
}
