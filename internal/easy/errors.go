package easy

import "errors"

// Sentinel errors for easy export extraction.
var (
	// ErrNotArchive indicates the input file is not a ZIP archive.
	ErrNotArchive = errors.New("input is not a zip archive")

	// ErrCorruptArchive indicates the ZIP archive cannot be read.
	ErrCorruptArchive = errors.New("corrupt archive")

	// ErrMissingConfiguration indicates a required configuration XML file
	// is absent from the archive.
	ErrMissingConfiguration = errors.New("configuration file missing from archive")

	// ErrFileTooLarge indicates a file exceeds the size limit.
	ErrFileTooLarge = errors.New("file exceeds maximum size limit")

	// ErrMalformedXML indicates a configuration document is not well-formed XML.
	ErrMalformedXML = errors.New("malformed configuration XML")

	// ErrSchemaViolation indicates a document does not follow the
	// config/property element grammar.
	ErrSchemaViolation = errors.New("configuration XML violates expected structure")
)
