package fieldmap

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV renders the reference table as CSV with one row per field
// and an entity column identifying the source section.
func WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"entity", "case_1_1_field", "ieee_scd_field", "asn_ctdl_field", "mapped", "notes"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	sections := []struct {
		name string
		rows []Row
	}{
		{"CFDocument", reference.CFDocument},
		{"CFItem", reference.CFItem},
		{"CFAssociation", reference.CFAssociation},
		{"format", reference.FormatSpecific},
	}

	for _, section := range sections {
		for _, row := range section.rows {
			record := []string{
				section.name,
				row.CASEField,
				row.IEEESCDField,
				row.ASNCTDLField,
				strconv.FormatBool(row.Mapped),
				row.Notes,
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("write CSV row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
