// Package ingest converts uploaded JSON, CSV, and Excel inputs into
// parsed CASE documents. JSON inputs are CASE 1.1 documents; CSV and
// Excel inputs are tabular competency lists converted through flexible
// column aliases before structural validation.
package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/c360studio/casebridge/casedoc"
)

// Format identifies a supported input file format.
type Format string

const (
	// FormatJSON is a CASE 1.1 JSON document (.json, .jsonld).
	FormatJSON Format = "json"

	// FormatCSV is a tabular competency list (.csv).
	FormatCSV Format = "csv"

	// FormatExcel is a workbook, optionally with CFDocument, CFItems,
	// and CFAssociations sheets (.xlsx, .xls).
	FormatExcel Format = "excel"
)

// ErrUnsupportedFormat reports an input that is neither JSON, CSV, nor Excel.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// DetectFormat infers the input format from the file extension.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json", ".jsonld":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xls":
		return FormatExcel, nil
	default:
		return "", fmt.Errorf("%w: %s (supported: .json, .jsonld, .csv, .xlsx, .xls)", ErrUnsupportedFormat, filename)
	}
}

// Parse converts file content into a validated CASE document. An empty
// format means detect from the filename.
func Parse(content []byte, filename string, format Format) (*casedoc.Document, error) {
	if format == "" {
		detected, err := DetectFormat(filename)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	switch format {
	case FormatJSON:
		return casedoc.Parse(content)
	case FormatCSV:
		return FromCSV(content, filename)
	case FormatExcel:
		return FromExcel(content, filename)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// baseName strips the directory and extension from a filename, giving
// the default framework title for tabular imports.
func baseName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
