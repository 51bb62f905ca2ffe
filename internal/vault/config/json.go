package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/docvault/internal/flagx"
	"github.com/dmitrijs2005/docvault/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which parses both string
// values such as "30s" and integer nanoseconds. Empty fields are skipped so a
// partial file does not clobber earlier layers.
type JsonConfig struct {
	DatabaseDSN    string          `json:"database_dsn"`
	VaultSecret    string          `json:"vault_secret"`
	KeySalt        string          `json:"key_salt"`
	TokenSecret    string          `json:"token_secret"`
	S3RootUser     string          `json:"s3_root_user"`
	S3RootPassword string          `json:"s3_root_password"`
	S3Bucket       string          `json:"s3_bucket"`
	S3Region       string          `json:"s3_region"`
	S3BaseEndpoint string          `json:"s3_base_endpoint"`
	SweepInterval  *timex.Duration `json:"sweep_interval"`
	ViewTTL        *timex.Duration `json:"view_ttl"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. Read or parse failures
// panic: a requested config file that cannot be used is a startup error.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.VaultSecret, c.VaultSecret)
	overlay(&config.KeySalt, c.KeySalt)
	overlay(&config.TokenSecret, c.TokenSecret)
	overlay(&config.S3RootUser, c.S3RootUser)
	overlay(&config.S3RootPassword, c.S3RootPassword)
	overlay(&config.S3Bucket, c.S3Bucket)
	overlay(&config.S3Region, c.S3Region)
	overlay(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.SweepInterval != nil {
		config.SweepInterval = time.Duration(c.SweepInterval.Duration)
	}
	if c.ViewTTL != nil {
		config.ViewTTL = time.Duration(c.ViewTTL.Duration)
	}
}
