// Package graph publishes translated JSON-LD documents to a NATS
// subject for downstream graph ingestion. Publishing is optional;
// a nil publisher degrades to a no-op.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/c360studio/casebridge/translate"
)

// DefaultSubject is the default subject for translated documents.
const DefaultSubject = "graph.ingest.jsonld"

// DocumentMessage is the wire format for a published translation.
type DocumentMessage struct {
	ID           string              `json:"id"`
	Target       string              `json:"target"`
	Document     *translate.Document `json:"document"`
	TranslatedAt time.Time           `json:"translated_at"`
}

// Publisher publishes translated documents to NATS.
type Publisher struct {
	nc      *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewPublisher connects to NATS and returns a publisher for the given
// subject. An empty subject falls back to DefaultSubject.
func NewPublisher(url, subject string, logger *slog.Logger) (*Publisher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if subject == "" {
		subject = DefaultSubject
	}

	nc, err := nats.Connect(url,
		nats.Name("casebridge"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	logger.Info("Connected to NATS", "url", url, "subject", subject)
	return &Publisher{nc: nc, subject: subject, logger: logger}, nil
}

// Publish sends a translated document to the configured subject.
// A nil publisher skips publishing (graceful degradation).
func (p *Publisher) Publish(ctx context.Context, vocab translate.Vocabulary, doc *translate.Document) error {
	if p == nil {
		return nil
	}

	msg := DocumentMessage{
		ID:           uuid.New().String(),
		Target:       string(vocab),
		Document:     doc,
		TranslatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal document message: %w", err)
	}

	if err := p.nc.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish translated document: %w", err)
	}
	if err := p.nc.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flush translated document: %w", err)
	}

	p.logger.Debug("Published translated document",
		"id", msg.ID,
		"target", msg.Target,
		"nodes", len(doc.Graph))
	return nil
}

// Close drains the underlying connection.
func (p *Publisher) Close() {
	if p == nil || p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.logger.Warn("NATS drain failed", "error", err)
	}
}
