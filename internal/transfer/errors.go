package transfer

import "errors"

var (
	// ErrImportSyntax is returned when an import file is not valid JSON
	ErrImportSyntax = errors.New("failed to parse JSON file")

	// ErrImportStructure is returned when an import file is valid JSON but
	// not an array of {title, fields: [{content, explanation}]}
	ErrImportStructure = errors.New("invalid structure")

	// ErrNothingToExport is returned when the collection is empty
	ErrNothingToExport = errors.New("no flashcards to export")
)
