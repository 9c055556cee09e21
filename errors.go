package prosegeek

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyDocument is returned when the cleaned text has no words, no
// sentences, or no vocabulary left after stopword filtering. Every average in
// the result divides by one of those counts.
var ErrEmptyDocument = errors.New("empty document")

// ConfigurationError reports a setting that cannot be turned into a usable
// AnalysisConfig, e.g. an unreadable stopword list.
type ConfigurationError struct {
	Key string
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration %q: %v", e.Key, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Cause lets errors.Cause walk through the wrapper.
func (e *ConfigurationError) Cause() error { return e.Err }

func configError(key string, err error) error {
	return &ConfigurationError{Key: key, Err: err}
}
