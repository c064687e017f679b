package server

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	errs "github.com/matzehuels/mazetrace/pkg/errors"
)

// Environment variables read by [LoadConfig].
const (
	EnvAddr    = "MAZETRACE_ADDR"
	EnvOrigins = "FRONTEND_URL" // comma-separated CORS origins
)

// Defaults applied by [Config.SetDefaults].
const (
	DefaultAddr            = ":8000"
	DefaultOrigin          = "http://localhost:3000"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultRequestTimeout  = 20 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 1 << 20
)

// Config configures the HTTP server.
type Config struct {
	Addr            string
	AllowedOrigins  []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

// LoadConfig builds a config from the environment. When envFile is non-empty
// it is loaded first with godotenv; a missing file is not an error, so a
// checked-in default such as ".env" can be passed unconditionally. Variables
// already set in the process environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "load %s", envFile)
		}
	}

	var cfg Config
	cfg.Addr = os.Getenv(EnvAddr)
	cfg.AllowedOrigins = ParseOrigins(os.Getenv(EnvOrigins))
	cfg.SetDefaults()
	return cfg, cfg.Validate()
}

// ParseOrigins splits a comma-separated origin list, dropping blanks.
func ParseOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// SetDefaults fills zero fields.
func (c *Config) SetDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{DefaultOrigin}
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
}

// Validate rejects negative limits and origins that are not URLs or "*".
func (c *Config) Validate() error {
	for _, d := range []time.Duration{c.ReadTimeout, c.WriteTimeout, c.RequestTimeout, c.ShutdownTimeout} {
		if d < 0 {
			return errs.New(errs.ErrCodeInvalidInput, "timeouts must not be negative")
		}
	}
	if c.MaxBodyBytes < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "max body size must not be negative")
	}
	for _, o := range c.AllowedOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return errs.New(errs.ErrCodeInvalidInput, "origin %q must start with http:// or https://", o)
		}
	}
	return nil
}
