// Package config reads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config is the configuration of the service.
type Config struct {
	// APIURL is the URL the API is reachable at from the outside.
	// Links in responses are built from it.
	APIURL string `env:"API_URL" envDefault:"http://localhost:8080"`

	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	DataDir    string `env:"DATA_DIR" envDefault:"data"`

	GinMode   string `env:"GIN_MODE" envDefault:"release"`
	LogFormat string `env:"LOG_FORMAT"` // "human" for console output, JSON otherwise

	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:" "`
	EnablePprof      bool     `env:"ENABLE_PPROF"`

	// Language is used for labels when the client does not send
	// an Accept-Language header that matches a supported language.
	Language string `env:"LANGUAGE" envDefault:"en"`

	apiURL *url.URL
}

var (
	ErrAPIURL  = errors.New("API_URL must be an absolute URL")
	ErrGinMode = errors.New("GIN_MODE must be one of debug, release or test")
)

// Load reads the given dotenv files, ".env" if none are given, and
// parses the environment into a Config.
//
// Missing dotenv files are ignored. Variables that are already set in the
// environment take precedence over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading %s: %w", file, err)
		}
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w, got '%s'", ErrAPIURL, c.APIURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	c.apiURL = u

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("%w, got '%s'", ErrGinMode, c.GinMode)
	}

	return nil
}

// URL returns the parsed API URL without a trailing slash.
func (c Config) URL() *url.URL {
	if c.apiURL == nil {
		u, _ := url.Parse(strings.TrimSuffix(c.APIURL, "/"))
		return u
	}

	u := *c.apiURL
	return &u
}

// Debug reports if the service runs in gin's debug mode.
func (c Config) Debug() bool {
	return c.GinMode == gin.DebugMode
}

// HumanLogs reports if logs should be written for humans instead of as JSON.
//
// If LOG_FORMAT is not set, debug mode logs for humans.
func (c Config) HumanLogs() bool {
	return c.LogFormat == "human" || (c.LogFormat == "" && c.Debug())
}
