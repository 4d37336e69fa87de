package translate

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/c360studio/casebridge/casedoc"
)

// frameworkDoc builds a small document: an absolute framework URI, two
// items resolved against it, and one child relation.
func frameworkDoc() *casedoc.Document {
	return &casedoc.Document{
		CFDocument: casedoc.CFDocument{
			Identifier: "fw-001",
			URI:        "https://example.org/frameworks/fw-001",
			Title:      "Data Skills Framework",
			Language:   "en",
		},
		CFItems: []casedoc.CFItem{
			{Identifier: "item-1", FullStatement: "Collect data"},
			{Identifier: "item-2", FullStatement: "Analyze data"},
		},
		CFAssociations: []casedoc.CFAssociation{
			{
				Identifier:         "assoc-1",
				AssociationType:    "isChildOf",
				OriginNodeURI:      casedoc.NodeRef{Identifier: "item-2"},
				DestinationNodeURI: casedoc.NodeRef{Identifier: "item-1"},
			},
		},
	}
}

func TestTranslateUnknownVocabulary(t *testing.T) {
	_, err := Translate(frameworkDoc(), Vocabulary("rdf"))
	if err == nil {
		t.Fatal("Translate() error = nil, want unknown vocabulary error")
	}
}

func TestTranslateIEEESCD(t *testing.T) {
	doc, err := Translate(frameworkDoc(), VocabIEEESCD)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	if doc.Context["scd"] != "https://w3id.org/skill-credential/" {
		t.Errorf("Context[scd] = %q", doc.Context["scd"])
	}

	// Framework, two items, one standalone association node.
	if len(doc.Graph) != 4 {
		t.Fatalf("len(Graph) = %d, want 4", len(doc.Graph))
	}

	fw := doc.Graph[0]
	if fw.ID != "https://example.org/frameworks/fw-001" {
		t.Errorf("framework @id = %q", fw.ID)
	}
	if fw.Type != "scd:CompetencyFramework" {
		t.Errorf("framework @type = %q", fw.Type)
	}
	if got := fw.Properties["scd:name"]; got != "Data Skills Framework" {
		t.Errorf("scd:name = %v", got)
	}

	item := doc.Graph[1]
	if item.ID != "https://example.org/frameworks/fw-001#item-1" {
		t.Errorf("item @id = %q", item.ID)
	}
	if item.Type != "scd:CompetencyDefinition" {
		t.Errorf("item @type = %q", item.Type)
	}
	if got := item.Properties["scd:statement"]; got != "Collect data" {
		t.Errorf("scd:statement = %v", got)
	}

	assoc := doc.Graph[3]
	if assoc.Type != "scd:ResourceAssociation" {
		t.Errorf("association @type = %q", assoc.Type)
	}
	if got := assoc.Properties["scd:relationType"]; got != "hasPart" {
		t.Errorf("scd:relationType = %v, want hasPart", got)
	}
	if got := assoc.Properties["scd:sourceNode"]; got != (Ref{ID: "https://example.org/frameworks/fw-001#item-2"}) {
		t.Errorf("scd:sourceNode = %v", got)
	}
	if got := assoc.Properties["scd:targetNode"]; got != (Ref{ID: "https://example.org/frameworks/fw-001#item-1"}) {
		t.Errorf("scd:targetNode = %v", got)
	}
}

func TestTranslateASNCTDL(t *testing.T) {
	doc, err := Translate(frameworkDoc(), VocabASNCTDL)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	// The relation becomes an inline property, not a standalone node.
	if len(doc.Graph) != 3 {
		t.Fatalf("len(Graph) = %d, want 3", len(doc.Graph))
	}

	fw := doc.Graph[0]
	if fw.Type != "ceasn:CompetencyFramework" {
		t.Errorf("framework @type = %q", fw.Type)
	}
	if got := fw.Properties["ceasn:identifier"]; got != fw.ID {
		t.Errorf("ceasn:identifier = %v, want own @id %q", got, fw.ID)
	}
	if got := fw.Properties["ceasn:name"]; got != "Data Skills Framework" {
		t.Errorf("ceasn:name = %v", got)
	}

	origin := doc.Graph[2]
	if origin.ID != "https://example.org/frameworks/fw-001#item-2" {
		t.Fatalf("origin @id = %q", origin.ID)
	}
	if got := origin.Properties["ceasn:isChildOf"]; got != "https://example.org/frameworks/fw-001#item-1" {
		t.Errorf("ceasn:isChildOf = %v", got)
	}

	// The destination item carries no relation property.
	if _, ok := doc.Graph[1].Properties["ceasn:isChildOf"]; ok {
		t.Error("destination node unexpectedly carries ceasn:isChildOf")
	}
}

func TestTranslateRepeatedRelationsGrowList(t *testing.T) {
	doc := frameworkDoc()
	doc.CFItems = append(doc.CFItems, casedoc.CFItem{Identifier: "item-3"})
	doc.CFAssociations = []casedoc.CFAssociation{
		{
			AssociationType:    "isChildOf",
			OriginNodeURI:      casedoc.NodeRef{Identifier: "item-1"},
			DestinationNodeURI: casedoc.NodeRef{Identifier: "item-2"},
		},
		{
			AssociationType:    "isChildOf",
			OriginNodeURI:      casedoc.NodeRef{Identifier: "item-1"},
			DestinationNodeURI: casedoc.NodeRef{Identifier: "item-3"},
		},
	}

	out, err := Translate(doc, VocabASNCTDL)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	got := out.Graph[1].Properties["ceasn:isChildOf"]
	list, ok := got.([]any)
	if !ok {
		t.Fatalf("ceasn:isChildOf = %T(%v), want ordered list", got, got)
	}
	want := []any{
		"https://example.org/frameworks/fw-001#item-2",
		"https://example.org/frameworks/fw-001#item-3",
	}
	if len(list) != len(want) || list[0] != want[0] || list[1] != want[1] {
		t.Errorf("ceasn:isChildOf = %v, want %v", list, want)
	}
}

func TestTranslateDanglingReference(t *testing.T) {
	doc := frameworkDoc()
	doc.CFAssociations = []casedoc.CFAssociation{
		{
			Identifier:         "assoc-x",
			AssociationType:    "isChildOf",
			OriginNodeURI:      casedoc.NodeRef{Identifier: "no-such-item"},
			DestinationNodeURI: casedoc.NodeRef{Identifier: "item-1"},
		},
	}

	// SCD: the association node is emitted with the dangling IRI as-is.
	scdOut, err := Translate(doc, VocabIEEESCD)
	if err != nil {
		t.Fatalf("Translate(SCD) error = %v", err)
	}
	assoc := scdOut.Graph[len(scdOut.Graph)-1]
	want := Ref{ID: "https://example.org/frameworks/fw-001#no-such-item"}
	if got := assoc.Properties["scd:sourceNode"]; got != want {
		t.Errorf("scd:sourceNode = %v, want %v", got, want)
	}

	// CTDL: the patch targets no node and is dropped silently.
	ctdlOut, err := Translate(doc, VocabASNCTDL)
	if err != nil {
		t.Fatalf("Translate(CTDL) error = %v", err)
	}
	for _, node := range ctdlOut.Graph {
		if _, ok := node.Properties["ceasn:isChildOf"]; ok {
			t.Errorf("node %s unexpectedly patched", node.ID)
		}
	}
}

func TestTranslateCycleTolerated(t *testing.T) {
	doc := frameworkDoc()
	doc.CFAssociations = []casedoc.CFAssociation{
		{
			AssociationType:    "isChildOf",
			OriginNodeURI:      casedoc.NodeRef{Identifier: "item-1"},
			DestinationNodeURI: casedoc.NodeRef{Identifier: "item-2"},
		},
		{
			AssociationType:    "isChildOf",
			OriginNodeURI:      casedoc.NodeRef{Identifier: "item-2"},
			DestinationNodeURI: casedoc.NodeRef{Identifier: "item-1"},
		},
	}

	out, err := Translate(doc, VocabASNCTDL)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if _, ok := out.Graph[1].Properties["ceasn:isChildOf"]; !ok {
		t.Error("item-1 missing ceasn:isChildOf")
	}
	if _, ok := out.Graph[2].Properties["ceasn:isChildOf"]; !ok {
		t.Error("item-2 missing ceasn:isChildOf")
	}
}

func TestTranslateUnknownAssociationTypePassesThrough(t *testing.T) {
	doc := frameworkDoc()
	doc.CFAssociations[0].AssociationType = "exemplar"

	scdOut, err := Translate(doc, VocabIEEESCD)
	if err != nil {
		t.Fatalf("Translate(SCD) error = %v", err)
	}
	assoc := scdOut.Graph[len(scdOut.Graph)-1]
	if got := assoc.Properties["scd:relationType"]; got != "exemplar" {
		t.Errorf("scd:relationType = %v, want exemplar", got)
	}

	ctdlOut, err := Translate(doc, VocabASNCTDL)
	if err != nil {
		t.Fatalf("Translate(CTDL) error = %v", err)
	}
	origin := ctdlOut.Graph[2]
	if got := origin.Properties["exemplar"]; got != "https://example.org/frameworks/fw-001#item-1" {
		t.Errorf("exemplar = %v", got)
	}
}

func TestTranslateConditionalProjection(t *testing.T) {
	doc := &casedoc.Document{
		CFDocument: casedoc.CFDocument{
			Identifier: "fw-min",
			Title:      "Minimal",
		},
	}

	out, err := Translate(doc, VocabIEEESCD)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	fw := out.Graph[0]
	if _, ok := fw.Properties["scd:description"]; ok {
		t.Error("absent description projected as placeholder")
	}
	if _, ok := fw.Properties["scd:language"]; ok {
		t.Error("absent language projected as placeholder")
	}
	if got := fw.Properties["scd:name"]; got != "Minimal" {
		t.Errorf("scd:name = %v", got)
	}
}

func TestTranslateVocabularySpecificFieldsDiverge(t *testing.T) {
	doc := frameworkDoc()
	doc.CFDocument.Version = "1.2"
	doc.CFDocument.Rights = "CC BY 4.0"

	scdOut, _ := Translate(doc, VocabIEEESCD)
	if got := scdOut.Graph[0].Properties["scd:version"]; got != "1.2" {
		t.Errorf("scd:version = %v", got)
	}
	if _, ok := scdOut.Graph[0].Properties["scd:rights"]; ok {
		t.Error("rights leaked into SCD output")
	}

	ctdlOut, _ := Translate(doc, VocabASNCTDL)
	if got := ctdlOut.Graph[0].Properties["ceasn:rights"]; got != "CC BY 4.0" {
		t.Errorf("ceasn:rights = %v", got)
	}
	for name := range ctdlOut.Graph[0].Properties {
		if name == "ceasn:version" {
			t.Error("version leaked into CTDL output")
		}
	}
}

func TestTranslateWithBaseIRIOverride(t *testing.T) {
	doc := frameworkDoc()
	out, err := Translate(doc, VocabIEEESCD, WithBaseIRI("https://registry.example.com/base"))
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got := out.Graph[1].ID; got != "https://registry.example.com/base#item-1" {
		t.Errorf("item @id = %q", got)
	}
	// The framework keeps its own absolute URI.
	if got := out.Graph[0].ID; got != "https://example.org/frameworks/fw-001" {
		t.Errorf("framework @id = %q", got)
	}
}

func TestTranslateRelativeFrameworkURIMeansNoBase(t *testing.T) {
	doc := frameworkDoc()
	doc.CFDocument.URI = ""

	out, err := Translate(doc, VocabIEEESCD)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got := out.Graph[0].ID; got != "fw-001" {
		t.Errorf("framework @id = %q, want bare identifier", got)
	}
	if got := out.Graph[1].ID; got != "item-1" {
		t.Errorf("item @id = %q, want bare identifier", got)
	}
}

func TestTranslateDeterministicOutput(t *testing.T) {
	doc := frameworkDoc()

	first, err := Translate(doc, VocabASNCTDL)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	second, err := Translate(doc, VocabASNCTDL)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical inputs produced different serializations")
	}
}

func TestNodeMarshalRoundTrip(t *testing.T) {
	node := NewNode("https://example.org/x", "scd:CompetencyDefinition")
	node.Set("scd:statement", "Collect data")

	data, err := json.Marshal(node)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back Node
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.ID != node.ID || back.Type != node.Type {
		t.Errorf("round trip changed identity: %+v", back)
	}
	if got := back.Properties["scd:statement"]; got != "Collect data" {
		t.Errorf("scd:statement = %v", got)
	}
}
