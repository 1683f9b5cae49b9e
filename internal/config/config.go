// Package config defines the calculator's process configuration.
package config

import (
	"errors"
	"fmt"

	"Archwire/internal/calc/curve"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the handler: text, json or tint.
	LogFormat string `koanf:"log_format"`

	// Addr is the HTTP listen address. Loopback by default: the dashboard
	// serves a single local user.
	Addr string `koanf:"addr"`

	// TLSCert and TLSKey enable HTTPS when both are set.
	TLSCert string `koanf:"tls_cert"`
	TLSKey  string `koanf:"tls_key"`

	// CORSOrigin is echoed in Access-Control-Allow-Origin.
	CORSOrigin string `koanf:"cors_origin"`

	// RateLimit and RateBurst configure the per-IP token bucket on /api.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`

	// MaxUploadBytes caps request bodies, spreadsheet uploads included.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// Calibration overrides the force-law constants.
	Calibration curve.Calibration `koanf:"calibration"`
}

// New returns a Config filled with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      "text",
		Addr:           "127.0.0.1:8050",
		CORSOrigin:     "*",
		RateLimit:      10,
		RateBurst:      20,
		MaxUploadBytes: 10 << 20,
		Calibration:    curve.DefaultCalibration(),
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return errors.New("addr must not be empty")
	case c.RateLimit <= 0:
		return errors.New("rate_limit must be positive")
	case c.RateBurst <= 0:
		return errors.New("rate_burst must be positive")
	case c.MaxUploadBytes <= 0:
		return errors.New("max_upload_bytes must be positive")
	case (c.TLSCert == "") != (c.TLSKey == ""):
		return errors.New("tls_cert and tls_key must be set together")
	}
	if err := c.Calibration.Validate(); err != nil {
		return fmt.Errorf("calibration: %w", err)
	}
	return nil
}

// TLS reports whether HTTPS is configured.
func (c *Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}
