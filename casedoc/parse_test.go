package casedoc

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseValidDocument(t *testing.T) {
	data := []byte(`{
		"CFDocument": {
			"identifier": "fw-001",
			"uri": "https://example.org/frameworks/fw-001",
			"title": "Data Skills Framework",
			"language": "en"
		},
		"CFItems": [
			{"identifier": "item-1", "fullStatement": "Collect data"},
			{"identifier": "item-2", "fullStatement": "Analyze data"}
		],
		"CFAssociations": [
			{
				"identifier": "assoc-1",
				"associationType": "isChildOf",
				"originNodeURI": {"identifier": "item-2", "uri": "", "title": ""},
				"destinationNodeURI": {"identifier": "item-1"}
			}
		]
	}`)

	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if doc.CFDocument.Identifier != "fw-001" {
		t.Errorf("CFDocument.Identifier = %q, want %q", doc.CFDocument.Identifier, "fw-001")
	}
	if len(doc.CFItems) != 2 {
		t.Fatalf("len(CFItems) = %d, want 2", len(doc.CFItems))
	}
	if len(doc.CFAssociations) != 1 {
		t.Fatalf("len(CFAssociations) = %d, want 1", len(doc.CFAssociations))
	}
	if got := doc.CFAssociations[0].OriginNodeURI.Identifier; got != "item-2" {
		t.Errorf("OriginNodeURI.Identifier = %q, want %q", got, "item-2")
	}
}

func TestParseValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing framework identifier",
			input:   `{"CFDocument": {"title": "No ID"}}`,
			wantErr: "CFDocument: identifier is required",
		},
		{
			name: "missing item identifier",
			input: `{
				"CFDocument": {"identifier": "fw"},
				"CFItems": [{"fullStatement": "orphan"}]
			}`,
			wantErr: "CFItems[0]: identifier is required",
		},
		{
			name: "missing association type",
			input: `{
				"CFDocument": {"identifier": "fw"},
				"CFAssociations": [{"originNodeURI": "a", "destinationNodeURI": "b"}]
			}`,
			wantErr: "CFAssociations[0]: associationType is required",
		},
		{
			name: "missing origin",
			input: `{
				"CFDocument": {"identifier": "fw"},
				"CFAssociations": [{"associationType": "isChildOf", "destinationNodeURI": "b"}]
			}`,
			wantErr: "CFAssociations[0]: originNodeURI is required",
		},
		{
			name: "missing destination",
			input: `{
				"CFDocument": {"identifier": "fw"},
				"CFAssociations": [{"associationType": "isChildOf", "originNodeURI": "a"}]
			}`,
			wantErr: "CFAssociations[0]: destinationNodeURI is required",
		},
		{
			name:    "malformed JSON",
			input:   `{"CFDocument": `,
			wantErr: "parse CASE document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %q, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNodeRefUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  NodeRef
	}{
		{
			name:  "bare string",
			input: `"item-1"`,
			want:  NodeRef{Identifier: "item-1"},
		},
		{
			name:  "full object",
			input: `{"identifier": "item-1", "uri": "https://example.org/item-1", "title": "Item 1"}`,
			want:  NodeRef{Identifier: "item-1", URI: "https://example.org/item-1", Title: "Item 1"},
		},
		{
			name:  "partial object",
			input: `{"uri": "https://example.org/item-1"}`,
			want:  NodeRef{URI: "https://example.org/item-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref NodeRef
			if err := json.Unmarshal([]byte(tt.input), &ref); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if ref != tt.want {
				t.Errorf("NodeRef = %+v, want %+v", ref, tt.want)
			}
		})
	}
}

func TestNodeRefUnmarshalRejectsOtherTypes(t *testing.T) {
	var ref NodeRef
	if err := json.Unmarshal([]byte(`42`), &ref); err == nil {
		t.Error("Unmarshal(42) error = nil, want error")
	}
}

func TestDanglingReferencesAccepted(t *testing.T) {
	// References to identifiers with no matching item are structurally
	// valid; resolution tolerance belongs to translation, not parsing.
	data := []byte(`{
		"CFDocument": {"identifier": "fw"},
		"CFItems": [{"identifier": "item-1"}],
		"CFAssociations": [{
			"associationType": "isChildOf",
			"originNodeURI": "item-1",
			"destinationNodeURI": "no-such-item"
		}]
	}`)

	if _, err := Parse(data); err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
}

func TestCFItemPresentFields(t *testing.T) {
	item := CFItem{
		Identifier:        "item-1",
		FullStatement:     "Analyze data",
		HierarchyCode:     "1.2",
		HumanCodingScheme: "A.1.2",
	}

	fields := item.PresentFields()
	wantNames := []string{"fullStatement", "hierarchyCode", "humanCodingScheme"}
	if len(fields) != len(wantNames) {
		t.Fatalf("len(PresentFields()) = %d, want %d", len(fields), len(wantNames))
	}
	for i, name := range wantNames {
		if fields[i].Name != name {
			t.Errorf("fields[%d].Name = %q, want %q", i, fields[i].Name, name)
		}
	}
}

func TestCFAssociationPresentFields(t *testing.T) {
	seq := 3
	assoc := CFAssociation{
		AssociationType:    "isChildOf",
		SequenceNumber:     &seq,
		LastChangeDateTime: "2024-01-01T00:00:00Z",
	}

	fields := assoc.PresentFields()
	if len(fields) != 2 {
		t.Fatalf("len(PresentFields()) = %d, want 2", len(fields))
	}
	if fields[0].Name != "sequenceNumber" || fields[0].Value != 3 {
		t.Errorf("fields[0] = %+v, want sequenceNumber=3", fields[0])
	}

	var empty CFAssociation
	if got := empty.PresentFields(); len(got) != 0 {
		t.Errorf("empty PresentFields() = %v, want none", got)
	}
}
