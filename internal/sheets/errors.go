package sheets

import "errors"

// ErrFileNotFound indicates a path does not resolve to an existing regular file.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidTemplate indicates the template could not be opened as an xlsx workbook.
var ErrInvalidTemplate = errors.New("invalid excel template")

// ErrInvalidStartRow indicates a start row below the 1-based minimum.
var ErrInvalidStartRow = errors.New("start row must be at least 1")

// ErrPersistence indicates the output workbook could not be written to disk.
var ErrPersistence = errors.New("failed to persist workbook")
