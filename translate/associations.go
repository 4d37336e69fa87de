package translate

import (
	"github.com/c360studio/casebridge/casedoc"
	"github.com/c360studio/casebridge/vocabulary/ctdl"
	"github.com/c360studio/casebridge/vocabulary/scd"
)

// ItemPatch instructs the assembler to set a property on the graph node
// whose @id equals TargetIRI. A patch whose target matches no node is
// dropped silently; that happens exactly when the association's origin
// is a dangling reference.
type ItemPatch struct {
	TargetIRI string
	Property  string
	Value     string
}

// RewriteResult is the tagged outcome of rewriting one association:
// exactly one of Node (SCD standalone node) or Patch (CTDL inline
// property) is non-nil.
type RewriteResult struct {
	Node  *Node
	Patch *ItemPatch
}

// RewriteAssociation re-expresses a CFAssociation for the target
// vocabulary. Origin and destination resolve through the same IRI rules
// as items, so a reference to an identifier with no matching item still
// yields a well-formed IRI; dangling references are emitted as-is.
func RewriteAssociation(assoc *casedoc.CFAssociation, vocab Vocabulary, baseIRI string) RewriteResult {
	originIRI := ResolveIRI(assoc.OriginNodeURI.URI, assoc.OriginNodeURI.Identifier, baseIRI)
	destIRI := ResolveIRI(assoc.DestinationNodeURI.URI, assoc.DestinationNodeURI.Identifier, baseIRI)

	if vocab == VocabASNCTDL {
		return RewriteResult{Patch: &ItemPatch{
			TargetIRI: originIRI,
			Property:  ctdl.MapRelation(assoc.AssociationType),
			Value:     destIRI,
		}}
	}

	node := NewNode(ResolveIRI(assoc.URI, assoc.Identifier, baseIRI), scd.ClassResourceAssociation)
	node.Set(scd.PropRelationType, scd.MapRelation(assoc.AssociationType))
	node.Set(scd.PropSourceNode, Ref{ID: originIRI})
	node.Set(scd.PropTargetNode, Ref{ID: destIRI})
	projectFields(node, assoc.PresentFields(), scd.AssociationFieldMap)

	return RewriteResult{Node: node}
}
