package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/mvp-joe/rep/internal/flags"
)

var (
	// ErrInvalidDefaultFlag indicates a configured default flag that rep does not recognize
	ErrInvalidDefaultFlag = errors.New("invalid default flag")

	// ErrInvalidIgnorePattern indicates an ignore pattern that is not a valid glob
	ErrInvalidIgnorePattern = errors.New("invalid ignore pattern")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateDefaults(&cfg.Defaults); err != nil {
		errs = append(errs, err)
	}

	if err := validateFiles(&cfg.Files); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateDefaults(cfg *DefaultsConfig) error {
	var errs []error

	for _, token := range cfg.Flags {
		if _, ok := flags.Of(strings.TrimSpace(token)); !ok {
			errs = append(errs, fmt.Errorf("%w: '%s' (valid: -n, -i, -c, -v, -w, -V)", ErrInvalidDefaultFlag, token))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateFiles(cfg *FilesConfig) error {
	var errs []error

	for _, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: '%s' - %v", ErrInvalidIgnorePattern, pattern, err))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
// The result still matches each joined error with errors.Is.
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

	return &validationError{
		msg:  fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - ")),
		errs: errs,
	}
}

type validationError struct {
	msg  string
	errs []error
}

func (e *validationError) Error() string   { return e.msg }
func (e *validationError) Unwrap() []error { return e.errs }
