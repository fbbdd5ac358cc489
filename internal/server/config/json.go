package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/folio/internal/flagx"
	"github.com/dmitrijs2005/folio/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations use timex.Duration so
// "30d", "720h" and integer nanoseconds are all accepted.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	Environment           string         `json:"environment"`
	LogLevel              string         `json:"log_level"`
	CORSAllowedOrigins    []string       `json:"cors_allowed_origins"`
	MaxUploadBytes        int64          `json:"max_upload_bytes"`
	S3RootUser            string         `json:"s3_root_user"`
	S3RootPassword        string         `json:"s3_root_password"`
	S3Bucket              string         `json:"s3_bucket"`
	S3Region              string         `json:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint"`
	S3PublicBaseURL       string         `json:"s3_public_base_url"`
	AdminUsername         string         `json:"admin_username"`
	AdminPassword         string         `json:"admin_password"`
}

// parseJson loads the file named by -c/-config, if any, and copies every
// non-empty value onto config. An unreadable or malformed file panics:
// starting with half a configuration is worse than not starting.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.TokenValidityDuration.Duration > 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	setString(&config.Environment, c.Environment)
	setString(&config.LogLevel, c.LogLevel)
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	if c.MaxUploadBytes > 0 {
		config.MaxUploadBytes = c.MaxUploadBytes
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3PublicBaseURL, c.S3PublicBaseURL)
	setString(&config.AdminUsername, c.AdminUsername)
	setString(&config.AdminPassword, c.AdminPassword)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
