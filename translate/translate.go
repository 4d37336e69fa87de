package translate

import (
	"fmt"

	"github.com/c360studio/casebridge/casedoc"
	"github.com/c360studio/casebridge/vocabulary/ctdl"
	"github.com/c360studio/casebridge/vocabulary/scd"
)

// Option adjusts translation behavior.
type Option func(*options)

type options struct {
	baseIRI string
}

// WithBaseIRI overrides the document-level base IRI used to resolve
// entities that carry no absolute URI of their own. Without this
// option the framework's URI serves as base when it is absolute;
// otherwise identifiers pass through as relative IRIs.
func WithBaseIRI(baseIRI string) Option {
	return func(o *options) {
		o.baseIRI = baseIRI
	}
}

// Translate converts a parsed CASE document into a JSON-LD document for
// the target vocabulary. The only failure mode is an unknown
// vocabulary; every well-formed document translates, including ones
// with dangling references, cycles, or duplicate identifiers.
func Translate(doc *casedoc.Document, vocab Vocabulary, opts ...Option) (*Document, error) {
	if !vocab.Valid() {
		return nil, fmt.Errorf("unknown target vocabulary: %q", vocab)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	baseIRI := o.baseIRI
	if baseIRI == "" && hasScheme(doc.CFDocument.URI) {
		baseIRI = doc.CFDocument.URI
	}

	framework := ProjectFramework(&doc.CFDocument, vocab)

	items := make([]*Node, 0, len(doc.CFItems))
	for i := range doc.CFItems {
		items = append(items, ProjectItem(&doc.CFItems[i], vocab, baseIRI))
	}

	results := make([]RewriteResult, 0, len(doc.CFAssociations))
	for i := range doc.CFAssociations {
		results = append(results, RewriteAssociation(&doc.CFAssociations[i], vocab, baseIRI))
	}

	return &Document{
		Context: contextFor(vocab),
		Graph:   assemble(framework, items, results),
	}, nil
}

// contextFor returns a copy of the vocabulary's fixed @context.
func contextFor(vocab Vocabulary) map[string]string {
	var src map[string]string
	if vocab == VocabASNCTDL {
		src = ctdl.Context
	} else {
		src = scd.Context
	}

	ctx := make(map[string]string, len(src))
	for k, v := range src {
		ctx[k] = v
	}
	return ctx
}
