package skillsheet

import (
	"fmt"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/parser"
)

// Input errors. A LoadError wraps one of these, so callers can test with
// errors.Is.
var (
	ErrFileNotFound      = parser.ErrFileNotFound
	ErrUnsupportedFormat = parser.ErrUnsupportedFormat
	ErrCodecUnavailable  = parser.ErrCodecUnavailable
	ErrInvalidFormat     = parser.ErrInvalidFormat
	ErrNoData            = parser.ErrNoData
)

// LoadError represents an error that prevents a document from being
// extracted.
type LoadError struct {
	Path  string
	Stage string // "load", "tokenizer"
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Stage, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, stage string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
