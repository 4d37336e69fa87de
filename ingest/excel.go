package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/c360studio/casebridge/casedoc"
)

// Sheet name aliases, matched case-insensitively.
var (
	documentSheetNames    = []string{"cfdocument", "document", "framework"}
	itemSheetNames        = []string{"cfitems", "items", "competencies", "skills"}
	associationSheetNames = []string{"cfassociations", "associations", "relationships"}
)

// FromExcel converts a workbook into a CASE document. Sheets named
// after CASE entities (CFDocument, CFItems, CFAssociations, or common
// aliases) are read by role; a workbook without named sheets treats its
// first sheet as the items table.
func FromExcel(content []byte, filename string) (*casedoc.Document, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var docRows, itemRows, assocRows []map[string]string
	for _, sheet := range f.GetSheetList() {
		rows, err := sheetRows(f, sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}

		switch {
		case matchesSheet(sheet, documentSheetNames):
			docRows = rows
		case matchesSheet(sheet, itemSheetNames):
			itemRows = rows
		case matchesSheet(sheet, associationSheetNames):
			assocRows = rows
		}
	}

	// No named item sheet: fall back to the first sheet.
	if itemRows == nil {
		if sheets := f.GetSheetList(); len(sheets) > 0 {
			rows, err := sheetRows(f, sheets[0])
			if err != nil {
				return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
			}
			itemRows = rows
		}
	}

	doc := buildDocument(docRows, filename, "excel-import-001")
	doc.CFItems = buildItems(itemRows)
	doc.CFAssociations = buildAssociations(assocRows)

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// sheetRows reads a sheet into header-keyed row maps.
func sheetRows(f *excelize.File, sheet string) ([]map[string]string, error) {
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, zipRow(header, record))
	}
	return rows, nil
}

func matchesSheet(name string, aliases []string) bool {
	lower := strings.ToLower(name)
	for _, alias := range aliases {
		if lower == alias {
			return true
		}
	}
	return false
}

// buildAssociations converts association sheet rows. Rows missing any
// required column are skipped rather than rejected.
func buildAssociations(rows []map[string]string) []casedoc.CFAssociation {
	var assocs []casedoc.CFAssociation
	for _, row := range rows {
		if row["identifier"] == "" || row["associationType"] == "" {
			continue
		}

		origin := firstOf(row, "originNodeURI", "originIdentifier")
		dest := firstOf(row, "destinationNodeURI", "destinationIdentifier")
		if origin == "" || dest == "" {
			continue
		}

		assocs = append(assocs, casedoc.CFAssociation{
			Identifier:         row["identifier"],
			AssociationType:    row["associationType"],
			OriginNodeURI:      casedoc.NodeRef{Identifier: origin},
			DestinationNodeURI: casedoc.NodeRef{Identifier: dest},
		})
	}
	return assocs
}

func firstOf(row map[string]string, columns ...string) string {
	for _, column := range columns {
		if v := row[column]; v != "" {
			return v
		}
	}
	return ""
}
