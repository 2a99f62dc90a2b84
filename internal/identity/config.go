package identity

import (
	"fmt"
	"os"
	"time"
)

// Config contains session authentication configuration.
type Config struct {
	// Secret signs session tokens. Required; no default is applied so a
	// deployment can never run on a well-known key.
	Secret string `toml:"secret"`

	// TokenTTL bounds session token lifetime. Default: "12h".
	TokenTTL string `toml:"token_ttl"`

	// AdminUsername and AdminPassword are the panel credentials.
	AdminUsername string `toml:"admin_username"`
	AdminPassword string `toml:"admin_password"`
}

// Env maps environment variable names for identity configuration.
type Env struct {
	Secret        string
	TokenTTL      string
	AdminUsername string
	AdminPassword string
}

// TokenTTLDuration parses and returns the token lifetime as a time.Duration.
func (c *Config) TokenTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TokenTTL)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the identity configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Secret != "" {
		c.Secret = overlay.Secret
	}
	if overlay.TokenTTL != "" {
		c.TokenTTL = overlay.TokenTTL
	}
	if overlay.AdminUsername != "" {
		c.AdminUsername = overlay.AdminUsername
	}
	if overlay.AdminPassword != "" {
		c.AdminPassword = overlay.AdminPassword
	}
}

func (c *Config) loadDefaults() {
	if c.TokenTTL == "" {
		c.TokenTTL = "12h"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Secret != "" {
		if v := os.Getenv(env.Secret); v != "" {
			c.Secret = v
		}
	}
	if env.TokenTTL != "" {
		if v := os.Getenv(env.TokenTTL); v != "" {
			c.TokenTTL = v
		}
	}
	if env.AdminUsername != "" {
		if v := os.Getenv(env.AdminUsername); v != "" {
			c.AdminUsername = v
		}
	}
	if env.AdminPassword != "" {
		if v := os.Getenv(env.AdminPassword); v != "" {
			c.AdminPassword = v
		}
	}
}

func (c *Config) validate() error {
	if c.Secret == "" {
		return fmt.Errorf("secret required")
	}
	if c.AdminUsername == "" {
		return fmt.Errorf("admin_username required")
	}
	if c.AdminPassword == "" {
		return fmt.Errorf("admin_password required")
	}
	if _, err := time.ParseDuration(c.TokenTTL); err != nil {
		return fmt.Errorf("invalid token_ttl: %w", err)
	}
	return nil
}
