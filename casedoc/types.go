package casedoc

import (
	"encoding/json"
	"fmt"
)

// Field pairs a CASE source field name with its present value.
// PresentFields methods return only populated fields, which is what
// makes conditional projection a straight table lookup downstream.
type Field struct {
	Name  string
	Value any
}

// NodeRef identifies the origin or destination of an association.
// CASE serializes these as LinkGenURI objects, but exports in the wild
// often carry a bare identifier string instead; both forms are accepted.
type NodeRef struct {
	Identifier string `json:"identifier,omitempty"`
	URI        string `json:"uri,omitempty"`
	Title      string `json:"title,omitempty"`
}

// UnmarshalJSON accepts either a JSON string (treated as the identifier)
// or a {identifier, uri, title} object.
func (r *NodeRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.Identifier = s
		r.URI = ""
		r.Title = ""
		return nil
	}

	type alias NodeRef
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("node reference must be a string or an object: %w", err)
	}
	*r = NodeRef(obj)
	return nil
}

// IsZero reports whether the reference carries neither an identifier nor a URI.
func (r NodeRef) IsZero() bool {
	return r.Identifier == "" && r.URI == ""
}

// CFDocument is the competency framework header. Exactly one per document.
type CFDocument struct {
	Identifier         string   `json:"identifier"`
	URI                string   `json:"uri,omitempty"`
	Title              string   `json:"title,omitempty"`
	Description        string   `json:"description,omitempty"`
	Language           string   `json:"language,omitempty"`
	AdoptionStatus     string   `json:"adoptionStatus,omitempty"`
	Version            string   `json:"version,omitempty"`
	LastChangeDateTime string   `json:"lastChangeDateTime,omitempty"`
	Publisher          any      `json:"publisher,omitempty"`
	OfficialSourceURL  string   `json:"officialSourceURL,omitempty"`
	EducationLevel     []string `json:"educationLevel,omitempty"`
	Subject            []any    `json:"subject,omitempty"`
	Rights             string   `json:"rights,omitempty"`
	License            string   `json:"license,omitempty"`
	Notes              string   `json:"notes,omitempty"`
}

// PresentFields returns the populated optional fields in declaration order,
// keyed by their CASE field names.
func (d *CFDocument) PresentFields() []Field {
	var fields []Field
	appendString(&fields, "title", d.Title)
	appendString(&fields, "description", d.Description)
	appendString(&fields, "language", d.Language)
	appendString(&fields, "adoptionStatus", d.AdoptionStatus)
	appendString(&fields, "version", d.Version)
	appendString(&fields, "lastChangeDateTime", d.LastChangeDateTime)
	if d.Publisher != nil {
		fields = append(fields, Field{Name: "publisher", Value: d.Publisher})
	}
	appendString(&fields, "officialSourceURL", d.OfficialSourceURL)
	appendStrings(&fields, "educationLevel", d.EducationLevel)
	if len(d.Subject) > 0 {
		fields = append(fields, Field{Name: "subject", Value: d.Subject})
	}
	appendString(&fields, "rights", d.Rights)
	appendString(&fields, "license", d.License)
	appendString(&fields, "notes", d.Notes)
	return fields
}

// CFItem is a single competency statement.
type CFItem struct {
	Identifier           string   `json:"identifier"`
	URI                  string   `json:"uri,omitempty"`
	FullStatement        string   `json:"fullStatement,omitempty"`
	AlternativeLabel     []string `json:"alternativeLabel,omitempty"`
	CFItemType           string   `json:"CFItemType,omitempty"`
	HierarchyCode        string   `json:"hierarchyCode,omitempty"`
	AbbreviatedStatement string   `json:"abbreviatedStatement,omitempty"`
	ConceptKeywords      []string `json:"conceptKeywords,omitempty"`
	ConceptKeywordsURI   []any    `json:"conceptKeywordsUri,omitempty"`
	Notes                string   `json:"notes,omitempty"`
	Language             string   `json:"language,omitempty"`
	EducationLevel       []string `json:"educationLevel,omitempty"`
	HumanCodingScheme    string   `json:"humanCodingScheme,omitempty"`
}

// PresentFields returns the populated optional fields in declaration order.
func (i *CFItem) PresentFields() []Field {
	var fields []Field
	appendString(&fields, "fullStatement", i.FullStatement)
	appendString(&fields, "abbreviatedStatement", i.AbbreviatedStatement)
	appendStrings(&fields, "alternativeLabel", i.AlternativeLabel)
	appendStrings(&fields, "conceptKeywords", i.ConceptKeywords)
	appendString(&fields, "hierarchyCode", i.HierarchyCode)
	appendString(&fields, "humanCodingScheme", i.HumanCodingScheme)
	appendString(&fields, "CFItemType", i.CFItemType)
	appendString(&fields, "notes", i.Notes)
	appendString(&fields, "language", i.Language)
	appendStrings(&fields, "educationLevel", i.EducationLevel)
	if len(i.ConceptKeywordsURI) > 0 {
		fields = append(fields, Field{Name: "conceptKeywordsUri", Value: i.ConceptKeywordsURI})
	}
	return fields
}

// CFAssociation is a directed, typed relation between two node references.
// Referenced identifiers are not checked against the document's items.
type CFAssociation struct {
	Identifier         string   `json:"identifier,omitempty"`
	URI                string   `json:"uri,omitempty"`
	AssociationType    string   `json:"associationType"`
	OriginNodeURI      NodeRef  `json:"originNodeURI"`
	DestinationNodeURI NodeRef  `json:"destinationNodeURI"`
	CFDocumentURI      *NodeRef `json:"CFDocumentURI,omitempty"`
	SequenceNumber     *int     `json:"sequenceNumber,omitempty"`
	LastChangeDateTime string   `json:"lastChangeDateTime,omitempty"`
}

// PresentFields returns the populated optional fields in declaration order.
func (a *CFAssociation) PresentFields() []Field {
	var fields []Field
	if a.SequenceNumber != nil {
		fields = append(fields, Field{Name: "sequenceNumber", Value: *a.SequenceNumber})
	}
	appendString(&fields, "lastChangeDateTime", a.LastChangeDateTime)
	return fields
}

// Document is a complete parsed CASE document. Immutable once parsed;
// translation never mutates it.
type Document struct {
	CFDocument     CFDocument      `json:"CFDocument"`
	CFItems        []CFItem        `json:"CFItems"`
	CFAssociations []CFAssociation `json:"CFAssociations"`
}

func appendString(fields *[]Field, name, value string) {
	if value != "" {
		*fields = append(*fields, Field{Name: name, Value: value})
	}
}

func appendStrings(fields *[]Field, name string, values []string) {
	if len(values) > 0 {
		*fields = append(*fields, Field{Name: name, Value: values})
	}
}
