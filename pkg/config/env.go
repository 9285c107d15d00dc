// Package config loads the handful of process-wide defaults this module
// needs from the environment. There is no third-party config loader in the
// corpus this module was grounded on aimed at a footprint this small, so
// this reads directly from os.LookupEnv (see DESIGN.md).
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// RandomSourceKind selects which random.Source an engine should default to.
type RandomSourceKind int

const (
	// RandomSourceCrypto is the production default: os entropy.
	RandomSourceCrypto RandomSourceKind = iota
	// RandomSourceDeterministic is for CI/test reproducibility only.
	RandomSourceDeterministic
)

// Config holds the process-wide defaults read from the environment.
type Config struct {
	LogLevel     zerolog.Level
	RandomSource RandomSourceKind
}

// FromEnv reads VSS_LOG_LEVEL and VSS_RANDOM_SOURCE. Missing variables fall
// back to "off" logging and the crypto-secure random source. The seed for a
// deterministic source is never read from the environment — selecting
// RandomSourceDeterministic only picks the *kind*; callers still supply the
// seed explicitly, so this can never silently weaken production randomness.
func FromEnv() (Config, error) {
	cfg := Config{
		LogLevel:     zerolog.Disabled,
		RandomSource: RandomSourceCrypto,
	}

	if raw, ok := os.LookupEnv("VSS_LOG_LEVEL"); ok {
		level, err := parseLogLevel(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}

	if raw, ok := os.LookupEnv("VSS_RANDOM_SOURCE"); ok {
		kind, err := parseRandomSource(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.RandomSource = kind
	}

	return cfg, nil
}

func parseLogLevel(raw string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "off", "":
		return zerolog.Disabled, nil
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.Disabled, errors.Errorf("VSS_LOG_LEVEL: unrecognised level %q", raw)
	}
}

func parseRandomSource(raw string) (RandomSourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "crypto", "":
		return RandomSourceCrypto, nil
	case "deterministic":
		return RandomSourceDeterministic, nil
	default:
		return RandomSourceCrypto, errors.Errorf("VSS_RANDOM_SOURCE: unrecognised source %q", raw)
	}
}
