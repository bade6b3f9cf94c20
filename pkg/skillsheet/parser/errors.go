package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound indicates the input file does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrUnsupportedFormat indicates an extension no codec handles.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrCodecUnavailable indicates a known format whose reader is not built in.
	ErrCodecUnavailable = errors.New("codec unavailable")
	// ErrInvalidFormat indicates a file that could not be decoded.
	ErrInvalidFormat = errors.New("invalid file format")
	// ErrNoData indicates a file without any non-empty sheet.
	ErrNoData = errors.New("no data")
)

// SheetError reports a failure while reading one sheet.
type SheetError struct {
	SheetName string
	Component string // "cells", "merges", "styles"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("read error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
