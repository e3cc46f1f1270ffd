package config

import (
	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v8"
	"github.com/pkg/errors"
	"time"
)

type Config struct {
	AppName string `env:"APP_NAME" envDefault:"imgresize" toml:"app_name"`
	Port    string `env:"PORT" envDefault:"8080" toml:"port"`

	OutputDir  string  `env:"OUTPUT_DIR" envDefault:"." toml:"output_dir"`
	Quality    float32 `env:"QUALITY" envDefault:"85" toml:"quality"`
	Engine     string  `env:"ENGINE" envDefault:"imaging" toml:"engine"`
	Filter     string  `env:"FILTER" envDefault:"lanczos" toml:"filter"`
	AutoOrient bool    `env:"AUTO_ORIENT" envDefault:"false" toml:"auto_orient"`

	LogLevel         string `env:"LOG_LEVEL" envDefault:"warn" toml:"log_level"`
	TelemetryEnabled bool   `env:"TELEMETRY_ENABLED" envDefault:"false" toml:"telemetry_enabled"`
	TraceEnabled     bool   `env:"TRACE_ENABLED" envDefault:"false" toml:"trace_enabled"`

	MaxUploadBytes         int    `env:"MAX_UPLOAD_BYTES" envDefault:"20971520" toml:"max_upload_bytes"`
	RateLimitMaxRequests   int    `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"100" toml:"rate_limit_max_requests"`
	RateLimitDurationInSec int    `env:"RATE_LIMIT_DURATION_IN_SEC" envDefault:"5" toml:"rate_limit_duration_in_sec"`
	SwaggerFile            string `env:"SWAGGER_FILE" envDefault:"./docs/swagger.json" toml:"swagger_file"`

	S3Region         string `env:"S3_REGION" toml:"s3_region"`
	S3Bucket         string `env:"S3_BUCKET" toml:"s3_bucket"`
	S3AccessKey      string `env:"S3_ACCESS_KEY" toml:"s3_access_key"`
	S3SecretKey      string `env:"S3_SECRET_KEY" toml:"s3_secret_key"`
	S3Endpoint       string `env:"S3_ENDPOINT" toml:"s3_endpoint"`
	S3ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false" toml:"s3_force_path_style"`
}

// Load reads the configuration from the environment and, when path is not
// empty, overlays the TOML file at path. Values in the file win.
func Load(path string) (*Config, error) {
	conf := &Config{}

	if err := env.Parse(conf); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, conf); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) validate() error {
	if c.Quality < 1 || c.Quality > 100 {
		return errors.Errorf("quality must be between 1 and 100, got %g", c.Quality)
	}
	if c.MaxUploadBytes <= 0 {
		return errors.Errorf("max upload bytes must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}

// S3Enabled reports whether enough is configured to build an S3 client.
func (c *Config) S3Enabled() bool {
	return c.S3Region != "" || c.S3Endpoint != ""
}

func (c *Config) RateLimitDuration() time.Duration {
	return time.Duration(c.RateLimitDurationInSec) * time.Second
}
