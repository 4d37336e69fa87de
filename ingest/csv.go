package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/c360studio/casebridge/casedoc"
)

// itemColumnAliases maps accepted CSV/Excel column names to CASE CFItem
// fields, in precedence order: later entries overwrite earlier ones
// when a table carries both spellings. Exports from spreadsheet tools
// rarely use the exact CASE names, so common shorthands are accepted.
var itemColumnAliases = []struct {
	Column string
	Field  string
}{
	{"statement", "fullStatement"},
	{"fullStatement", "fullStatement"},
	{"label", "abbreviatedStatement"},
	{"abbreviatedStatement", "abbreviatedStatement"},
	{"type", "CFItemType"},
	{"CFItemType", "CFItemType"},
	{"code", "hierarchyCode"},
	{"hierarchyCode", "hierarchyCode"},
	{"description", "notes"},
	{"notes", "notes"},
}

// documentColumns are the optional CFDocument fields read from the
// first row of a framework-bearing table.
var documentColumns = []string{"description", "language", "version", "lastChangeDateTime", "officialSourceURL"}

// FromCSV converts a tabular CSV export into a CASE document. When the
// table carries identifier and title columns, the first row doubles as
// the framework header; otherwise a synthetic framework is generated
// from the filename. Every row with an identifier becomes a CFItem.
func FromCSV(content []byte, filename string) (*casedoc.Document, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("CSV has no header row")
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, zipRow(header, record))
	}

	doc := buildDocument(rows, filename, "csv-import-001")
	doc.CFItems = buildItems(rows)

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// zipRow pairs header names with a record's cells, ignoring overflow.
func zipRow(header, record []string) map[string]string {
	row := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(record) {
			row[name] = record[i]
		}
	}
	return row
}

// buildDocument derives the CFDocument from the first table row when it
// looks like a framework header, else falls back to a synthetic one.
func buildDocument(rows []map[string]string, filename, fallbackID string) *casedoc.Document {
	doc := &casedoc.Document{}

	if len(rows) > 0 && rows[0]["identifier"] != "" && rows[0]["title"] != "" {
		first := rows[0]
		doc.CFDocument = casedoc.CFDocument{
			Identifier: first["identifier"],
			Title:      first["title"],
		}
		for _, col := range documentColumns {
			if v := first[col]; v != "" {
				setDocumentField(&doc.CFDocument, col, v)
			}
		}
		return doc
	}

	doc.CFDocument = casedoc.CFDocument{
		Identifier: fallbackID,
		Title:      baseName(filename),
	}
	return doc
}

func setDocumentField(d *casedoc.CFDocument, name, value string) {
	switch name {
	case "description":
		d.Description = value
	case "language":
		d.Language = value
	case "version":
		d.Version = value
	case "lastChangeDateTime":
		d.LastChangeDateTime = value
	case "officialSourceURL":
		d.OfficialSourceURL = value
	}
}

// buildItems converts every identifier-bearing row into a CFItem.
func buildItems(rows []map[string]string) []casedoc.CFItem {
	var items []casedoc.CFItem
	for _, row := range rows {
		if row["identifier"] == "" {
			continue
		}

		item := casedoc.CFItem{Identifier: row["identifier"]}
		for _, alias := range itemColumnAliases {
			if v := row[alias.Column]; v != "" {
				setItemField(&item, alias.Field, v)
			}
		}
		items = append(items, item)
	}
	return items
}

func setItemField(item *casedoc.CFItem, name, value string) {
	switch name {
	case "fullStatement":
		item.FullStatement = value
	case "abbreviatedStatement":
		item.AbbreviatedStatement = value
	case "CFItemType":
		item.CFItemType = value
	case "hierarchyCode":
		item.HierarchyCode = value
	case "notes":
		item.Notes = value
	}
}
