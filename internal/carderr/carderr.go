// Package carderr classifies card-building failures into the three kinds the
// CLI reports: file errors (a referenced path does not exist), config errors
// (structurally or semantically invalid configuration), and card errors
// (image creation or rendering failures).
//
// Errors are tagged with a sentinel marker and matched via errors.Is. The
// markers never appear in rendered messages; callers compose the visible text
// through Wrap/Wrapf and the CLI picks the output prefix with Prefix.
package carderr

import (
	"errors"
	"fmt"
)

var (
	// ErrFile marks errors caused by a missing or irregular file.
	ErrFile = errors.New("file error")
	// ErrConfig marks errors caused by invalid configuration.
	ErrConfig = errors.New("config error")
	// ErrCard marks image-creation and rendering failures.
	ErrCard = errors.New("card error")
)

type taggedError struct {
	kind   error
	detail string
	cause  error
}

func (e *taggedError) Error() string {
	if e.cause != nil {
		return e.detail + ": " + e.cause.Error()
	}
	return e.detail
}

func (e *taggedError) Is(target error) bool { return target == e.kind }

func (e *taggedError) Unwrap() error { return e.cause }

// Wrap builds an error carrying the given marker for classification. The
// marker should be one of the exported sentinels; a nil marker falls back to
// ErrCard. The cause may be nil when there is no underlying error to chain.
func Wrap(marker error, detail string, cause error) error {
	if marker == nil {
		marker = ErrCard
	}
	return &taggedError{kind: marker, detail: detail, cause: cause}
}

// Wrapf is Wrap with a formatted detail message and no cause.
func Wrapf(marker error, format string, args ...any) error {
	return Wrap(marker, fmt.Sprintf(format, args...), nil)
}

// WithField prefixes err with the config field key that failed while
// preserving its classification. Unclassified causes become card errors.
func WithField(key string, err error) error {
	return &taggedError{kind: kindOf(err), detail: key, cause: err}
}

func kindOf(err error) error {
	switch {
	case errors.Is(err, ErrConfig):
		return ErrConfig
	case errors.Is(err, ErrFile):
		return ErrFile
	default:
		return ErrCard
	}
}

// Prefix returns the diagnostic prefix the CLI prints for err. Config errors
// are distinguished so card authors can tell authoring mistakes from runtime
// failures; file and card errors share the generic prefix.
func Prefix(err error) string {
	if errors.Is(err, ErrConfig) {
		return "Config Error"
	}
	return "Error"
}
