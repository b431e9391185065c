// Package parsererror defines the typed errors shared by the file-level
// parsers. The message extractor itself never returns an error; these types
// cover the surrounding file handling.
package parsererror

import "fmt"

// InvalidFormatError reports an input file that does not conform to the
// expected format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// DataExtractionError reports required data that could not be extracted from
// an otherwise well-formed file.
type DataExtractionError struct {
	FilePath  string
	FieldName string
	Reason    string
	Err       error
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s",
		e.FilePath, e.FieldName, e.Reason)
}

func (e *DataExtractionError) Unwrap() error {
	return e.Err
}
