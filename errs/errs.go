// Package errs defines the sentinel errors returned by psitable packages.
//
// Callers should compare against these values with errors.Is, since most of
// them are wrapped with additional context before being returned.
package errs

import "errors"

// Section errors.
var (
	// ErrSectionTooShort is returned when the data is shorter than the minimal section header.
	ErrSectionTooShort = errors.New("section data too short")
	// ErrSectionTooLong is returned when the data exceeds the maximum section size.
	ErrSectionTooLong = errors.New("section data too long")
	// ErrSectionLengthMismatch is returned when section_length disagrees with the data size.
	ErrSectionLengthMismatch = errors.New("section_length does not match data size")
	// ErrSectionNumberOverflow is returned when section_number is greater than last_section_number.
	ErrSectionNumberOverflow = errors.New("section_number greater than last_section_number")
	// ErrCRCMismatch is returned when the CRC32 of a long section is wrong.
	ErrCRCMismatch = errors.New("section CRC32 mismatch")
	// ErrInvalidSection is returned when an operation requires a valid section.
	ErrInvalidSection = errors.New("invalid section")
	// ErrTruncatedSection is returned when a section stream ends in the middle of a section.
	ErrTruncatedSection = errors.New("truncated section")
	// ErrPayloadTooLarge is returned when a payload does not fit in a section.
	ErrPayloadTooLarge = errors.New("section payload too large")
)

// Table errors.
var (
	// ErrInvalidTable is returned when writing a table that is not complete.
	ErrInvalidTable = errors.New("invalid table")
	// ErrSectionRejected is returned when a table cannot be built from a section list.
	ErrSectionRejected = errors.New("section rejected by table")
)

// Configuration errors.
var (
	// ErrInvalidCompression is returned for an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
	// ErrNilReporter is returned when a nil reporter is configured.
	ErrNilReporter = errors.New("nil reporter")
)
