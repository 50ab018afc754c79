package catalog

import "errors"

var (
	ErrSectionNotFound = errors.New("catalog: section not found")
	ErrCaseNotFound    = errors.New("catalog: case not found")
	ErrDuplicateCase   = errors.New("catalog: duplicate case id")
	ErrInvalidCase     = errors.New("catalog: invalid case")
)
