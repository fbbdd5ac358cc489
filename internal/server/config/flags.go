package config

import (
	"flag"
	"os"
	"strings"

	"github.com/dmitrijs2005/folio/internal/flagx"
	"github.com/dmitrijs2005/folio/internal/timex"
)

// parseFlags populates Config fields from short command-line flags.
//
//	-a string   HTTP bind address (e.g. ":5001")
//	-d string   PostgreSQL DSN
//	-s string   token signing secret
//	-t string   token validity ("720h", "30d")
//	-m string   environment (development | production)
//	-l string   log level
//	-o string   comma-separated CORS origins
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-w string   public base URL of stored objects
//
// os.Args is filtered through flagx.FilterArgs first, so -c/-config and
// other components' flags do not make parsing fail.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-m", "-l", "-o", "-u", "-p", "-b", "-g", "-e", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.Func("t", "token validity duration (e.g. 720h, 30d)", func(v string) error {
		d, err := timex.ParseDuration(v)
		if err != nil {
			return err
		}
		config.TokenValidityDuration = d
		return nil
	})
	fs.StringVar(&config.Environment, "m", config.Environment, "environment (development|production)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.Func("o", "comma-separated CORS origins", func(v string) error {
		config.CORSAllowedOrigins = splitList(v)
		return nil
	})

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3PublicBaseURL, "w", config.S3PublicBaseURL, "public base URL of stored objects")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
