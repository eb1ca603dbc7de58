package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SHOPLIST_"

// Settings is the complete runtime configuration.
type Settings struct {
	Store  StoreSettings  `envPrefix:"STORE_"`
	Logger LoggerSettings `envPrefix:"LOG_"`
	Theme  string         `env:"THEME" envDefault:"classic"`
}

// Load parses Settings from the process environment.
func Load() (*Settings, error) {
	s := &Settings{}
	if err := env.ParseWithOptions(s, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// Validate checks every nested settings block.
func (s *Settings) Validate() error {
	if err := validator.New().Var(s.Theme, "required,oneof=classic neon mono"); err != nil {
		return fmt.Errorf("validation failed for theme %q: %w", s.Theme, err)
	}
	if err := s.Store.Validate(); err != nil {
		return err
	}
	return s.Logger.Validate()
}
