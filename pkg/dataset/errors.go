package dataset

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when a source has no content at all.
var ErrEmpty = errors.New("dataset: empty source")

// LoadError reports a source that could not be fetched or parsed.
type LoadError struct {
	Key string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dataset: load %s: %v", e.Key, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadError(key string, err error) error {
	var le *LoadError
	if errors.As(err, &le) {
		return err
	}
	return &LoadError{Key: key, Err: err}
}
