package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvCoefficient = "CATENARY_COEFFICIENT"
	EnvLang        = "CATENARY_LANG"
	EnvLogLevel    = "CATENARY_LOG_LEVEL"
)

// LoadDotEnv loads environment variables from path. Missing files are
// ignored; variables already set in the environment win.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnv overrides cfg from CATENARY_* variables.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvCoefficient); ok && v != "" {
		a, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvCoefficient, v)
		}
		cfg.Coefficient = a
	}
	if v, ok := os.LookupEnv(EnvLang); ok && v != "" {
		cfg.Lang = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	return nil
}
