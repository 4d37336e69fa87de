package translate

import "encoding/json"

// Vocabulary selects the target JSON-LD vocabulary.
type Vocabulary string

const (
	// VocabIEEESCD targets IEEE SCD output.
	VocabIEEESCD Vocabulary = "ieee_scd"

	// VocabASNCTDL targets ASN-CTDL output.
	VocabASNCTDL Vocabulary = "asn_ctdl"
)

// Valid reports whether v is a supported vocabulary.
func (v Vocabulary) Valid() bool {
	return v == VocabIEEESCD || v == VocabASNCTDL
}

// Node is a single JSON-LD graph node: @id, @type, and projected
// properties. encoding/json sorts map keys, so marshaling is
// deterministic.
type Node struct {
	ID         string
	Type       string
	Properties map[string]any
}

// NewNode creates a node with the given @id and @type.
func NewNode(id, nodeType string) *Node {
	return &Node{
		ID:         id,
		Type:       nodeType,
		Properties: make(map[string]any),
	}
}

// Set assigns a property on the node.
func (n *Node) Set(name string, value any) {
	n.Properties[name] = value
}

// MarshalJSON flattens @id, @type, and the properties into one object.
func (n *Node) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(n.Properties)+2)
	m["@id"] = n.ID
	m["@type"] = n.Type
	for k, v := range n.Properties {
		m[k] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON splits @id and @type back out of the flattened object.
func (n *Node) UnmarshalJSON(data []byte) error {
	m := make(map[string]any)
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if id, ok := m["@id"].(string); ok {
		n.ID = id
	}
	if t, ok := m["@type"].(string); ok {
		n.Type = t
	}
	delete(m, "@id")
	delete(m, "@type")
	n.Properties = m
	return nil
}

// Ref is a JSON-LD node reference: {"@id": "..."}.
type Ref struct {
	ID string `json:"@id"`
}

// Document is a completed JSON-LD translation: a vocabulary context and
// an ordered graph.
type Document struct {
	Context map[string]string `json:"@context"`
	Graph   []*Node           `json:"@graph"`
}
