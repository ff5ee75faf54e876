package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "catalog.timeout_seconds")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateCatalog()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateMock()...)

	return errors
}

func (c *Config) validateCatalog() []ValidationError {
	var errors []ValidationError

	u, err := url.Parse(c.Catalog.BaseURL)
	if c.Catalog.BaseURL == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "catalog.base_url",
			Value:   c.Catalog.BaseURL,
			Message: "must be an absolute http or https URL",
		})
	}

	if strings.TrimSpace(c.Catalog.Postcode) == "" {
		errors = append(errors, ValidationError{
			Field:   "catalog.postcode",
			Value:   c.Catalog.Postcode,
			Message: "must not be empty",
		})
	}

	if strings.TrimSpace(c.Catalog.Area) == "" {
		errors = append(errors, ValidationError{
			Field:   "catalog.area",
			Value:   c.Catalog.Area,
			Message: "must not be empty",
		})
	}

	// Zero disables the timeout
	if c.Catalog.TimeoutSeconds < 0 {
		errors = append(errors, ValidationError{
			Field:   "catalog.timeout_seconds",
			Value:   c.Catalog.TimeoutSeconds,
			Message: "must be non-negative",
		})
	}

	const maxAttempts = 10
	if c.Catalog.Retry.MaxAttempts < 1 || c.Catalog.Retry.MaxAttempts > maxAttempts {
		errors = append(errors, ValidationError{
			Field:   "catalog.retry.max_attempts",
			Value:   c.Catalog.Retry.MaxAttempts,
			Message: fmt.Sprintf("must be between 1 and %d", maxAttempts),
		})
	}

	if c.Catalog.Retry.BackoffMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "catalog.retry.backoff_ms",
			Value:   c.Catalog.Retry.BackoffMs,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidViewModes(), c.TUI.ViewMode) {
		errors = append(errors, ValidationError{
			Field:   "tui.view_mode",
			Value:   c.TUI.ViewMode,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidViewModes(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	const maxLogSizeMB = 1000
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateMock() []ValidationError {
	var errors []ValidationError

	if c.Mock.Port < 0 || c.Mock.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "mock.port",
			Value:   c.Mock.Port,
			Message: "must be between 0 and 65535",
		})
	}

	return errors
}
