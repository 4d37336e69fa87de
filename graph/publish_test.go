package graph

import (
	"context"
	"testing"

	"github.com/c360studio/casebridge/translate"
)

func TestNilPublisherSkipsPublish(t *testing.T) {
	var p *Publisher
	doc := &translate.Document{Graph: []*translate.Node{}}

	if err := p.Publish(context.Background(), translate.VocabIEEESCD, doc); err != nil {
		t.Errorf("Publish() on nil publisher = %v, want nil", err)
	}
	p.Close()
}
