package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParse is returned when environment variables cannot be parsed into the
// target struct.
var ErrParse = errors.New("config: failed to parse environment")

var dotenvOnce sync.Once

// Load populates cfg from environment variables using `env` struct tags.
// A .env file in the working directory is loaded once per process if present;
// its absence is not an error.
//
//	type ClientConfig struct {
//	    BaseURL string        `env:"HELPDESK_API_BASE_URL" envDefault:"http://localhost:5000/api"`
//	    Timeout time.Duration `env:"HELPDESK_HTTP_TIMEOUT" envDefault:"30s"`
//	}
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	if cfg == nil {
		return fmt.Errorf("%w: nil target", ErrParse)
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParse, err)
	}
	return nil
}

// MustLoad is Load for configurations the process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}
