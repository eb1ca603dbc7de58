package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// StoreSettings selects the storage backend and where it lives.
type StoreSettings struct {
	Type string `env:"TYPE" envDefault:"sqlite" validate:"required,oneof=sqlite json"`
	Path string `env:"PATH"`
}

// Validate checks the backend type.
func (s *StoreSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for StoreSettings: %w", err)
	}
	return nil
}

// ResolvePath returns Path, or a default file next to the working directory
// when Path is empty.
func (s *StoreSettings) ResolvePath() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	ext := ".sqlite"
	if s.Type == StoreTypeJSON {
		ext = ".json"
	}
	return filepath.Join(wd, DatabaseName+ext), nil
}
