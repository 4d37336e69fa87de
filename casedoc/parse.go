package casedoc

import (
	"encoding/json"
	"fmt"
)

// Parse decodes and structurally validates a CASE 1.1 JSON document.
// Validation covers required fields only (CFDocument.identifier,
// CFItem.identifier, CFAssociation.associationType and both node
// references); everything else is optional and passes through.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse CASE document: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks the minimal required-field structure of the document.
func (d *Document) Validate() error {
	if d.CFDocument.Identifier == "" {
		return fmt.Errorf("CFDocument: identifier is required")
	}

	for i, item := range d.CFItems {
		if item.Identifier == "" {
			return fmt.Errorf("CFItems[%d]: identifier is required", i)
		}
	}

	for i, assoc := range d.CFAssociations {
		if assoc.AssociationType == "" {
			return fmt.Errorf("CFAssociations[%d]: associationType is required", i)
		}
		if assoc.OriginNodeURI.IsZero() {
			return fmt.Errorf("CFAssociations[%d]: originNodeURI is required", i)
		}
		if assoc.DestinationNodeURI.IsZero() {
			return fmt.Errorf("CFAssociations[%d]: destinationNodeURI is required", i)
		}
	}

	return nil
}
