package translate

import (
	"github.com/c360studio/casebridge/casedoc"
	"github.com/c360studio/casebridge/vocabulary/ctdl"
	"github.com/c360studio/casebridge/vocabulary/scd"
)

// ProjectFramework maps a CFDocument to its graph node for the target
// vocabulary. The framework resolves its own IRI without a base; it is
// the document anchor other entities hang off.
func ProjectFramework(fw *casedoc.CFDocument, vocab Vocabulary) *Node {
	id := ResolveIRI(fw.URI, fw.Identifier, "")

	switch vocab {
	case VocabASNCTDL:
		node := NewNode(id, ctdl.ClassCompetencyFramework)
		node.Set(ctdl.PropIdentifier, id)
		projectFields(node, fw.PresentFields(), ctdl.FrameworkFieldMap)
		return node
	default:
		node := NewNode(id, scd.ClassCompetencyFramework)
		projectFields(node, fw.PresentFields(), scd.FrameworkFieldMap)
		return node
	}
}

// ProjectItem maps a CFItem to its graph node for the target vocabulary.
func ProjectItem(item *casedoc.CFItem, vocab Vocabulary, baseIRI string) *Node {
	id := ResolveIRI(item.URI, item.Identifier, baseIRI)

	switch vocab {
	case VocabASNCTDL:
		node := NewNode(id, ctdl.ClassCompetency)
		node.Set(ctdl.PropIdentifier, id)
		projectFields(node, item.PresentFields(), ctdl.ItemFieldMap)
		return node
	default:
		node := NewNode(id, scd.ClassCompetencyDefinition)
		projectFields(node, item.PresentFields(), scd.ItemFieldMap)
		return node
	}
}

// projectFields copies each present source field whose name appears in
// the table onto the node under the table's target name. Absent fields
// produce no placeholder; unmapped fields are silently dropped.
func projectFields(node *Node, fields []casedoc.Field, table map[string]string) {
	for _, field := range fields {
		if target, ok := table[field.Name]; ok {
			node.Set(target, field.Value)
		}
	}
}
