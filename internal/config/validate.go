package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptySource indicates a missing source directory setting
	ErrEmptySource = errors.New("empty source directory")

	// ErrEmptyOutput indicates a missing output path setting
	ErrEmptyOutput = errors.New("empty output path")

	// ErrEmptyPatterns indicates no file patterns are configured
	ErrEmptyPatterns = errors.New("empty file patterns")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if strings.TrimSpace(cfg.Source) == "" {
		errs = append(errs, fmt.Errorf("%w: source is required", ErrEmptySource))
	}

	if strings.TrimSpace(cfg.Output) == "" {
		errs = append(errs, fmt.Errorf("%w: output is required", ErrEmptyOutput))
	}

	if len(cfg.Patterns) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one file pattern required", ErrEmptyPatterns))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
