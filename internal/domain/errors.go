package domain

import "errors"

var (
	// ErrInvalidFile is returned when an upload is not a readable Excel workbook
	ErrInvalidFile = errors.New("file is not a valid Excel workbook")

	// ErrMissingColumns is returned when the workbook lacks the required columns
	ErrMissingColumns = errors.New("workbook is missing required columns")

	// ErrEmptyWorkbook is returned when the workbook contains no data rows
	ErrEmptyWorkbook = errors.New("workbook contains no data rows")

	// ErrStoreUnavailable is returned when the catalog store cannot be reached
	ErrStoreUnavailable = errors.New("catalog store unavailable")
)
