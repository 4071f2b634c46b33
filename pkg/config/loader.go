package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates cfg from environment variables based on `env` field tags.
//
// On first use it attempts to load a .env file from the working directory;
// a missing file is not an error. Subsequent parsing is plain env.Parse, so
// each call reflects the current process environment.
//
//	type ServerConfig struct {
//	    Port    int    `env:"PORT" envDefault:"8080"`
//	    BaseURL string `env:"BASE_URL"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](cfg *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is a development convenience; absence is fine.
		_ = godotenv.Load()
	})

	if cfg == nil {
		return ErrNilPointer
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use for configuration the
// process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
