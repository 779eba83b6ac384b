// Package nats publishes hiring pipeline events to NATS.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	natsgo "github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel/codes"

	"github.com/heartmarshall/hiretrack-backend/internal/config"
	"github.com/heartmarshall/hiretrack-backend/internal/domain"
	"github.com/heartmarshall/hiretrack-backend/internal/telemetry"
)

var tracer = telemetry.Tracer("hiretrack/adapter/nats")

// Message is the JSON body published for every event.
type Message struct {
	ID           string         `json:"id"`
	Type         string         `json:"type"`
	JobPostingID int64          `json:"jobPostingId"`
	CandidateID  *int64         `json:"candidateId,omitempty"`
	Changes      map[string]any `json:"changes,omitempty"`
	OccurredAt   time.Time      `json:"occurredAt"`
}

// Publisher sends events on "<prefix>.<entity>.<action>" subjects.
type Publisher struct {
	conn   *natsgo.Conn
	prefix string
	log    *slog.Logger
}

// NewPublisher connects to NATS. Reconnects are retried indefinitely.
func NewPublisher(log *slog.Logger, cfg config.EventsConfig) (*Publisher, error) {
	conn, err := natsgo.Connect(cfg.URL,
		natsgo.Name("hiretrack"),
		natsgo.Timeout(cfg.Timeout),
		natsgo.ReconnectWait(time.Second),
		natsgo.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS %s: %w", cfg.URL, err)
	}

	return &Publisher{
		conn:   conn,
		prefix: strings.TrimSuffix(cfg.SubjectPrefix, "."),
		log:    log.With("adapter", "nats"),
	}, nil
}

// Subject returns the subject an event type is published on.
func Subject(prefix string, t domain.EventType) string {
	var suffix string
	switch t {
	case domain.EventCandidateCreated:
		suffix = "candidate.created"
	case domain.EventStageChanged:
		suffix = "candidate.stage_changed"
	case domain.EventNoteAdded:
		suffix = "candidate.note_added"
	case domain.EventPostingCreated:
		suffix = "posting.created"
	case domain.EventPostingUpdated:
		suffix = "posting.updated"
	default:
		suffix = "unknown"
	}
	if prefix == "" {
		return suffix
	}
	return prefix + "." + suffix
}

// NewMessage converts a domain event to its wire form.
func NewMessage(e domain.Event) Message {
	return Message{
		ID:           e.ID.String(),
		Type:         string(e.Type),
		JobPostingID: e.JobPostingID,
		CandidateID:  e.CandidateID,
		Changes:      e.Changes,
		OccurredAt:   e.CreatedAt.UTC(),
	}
}

// Publish sends e. Delivery is at-most-once; NATS core has no acks.
func (p *Publisher) Publish(ctx context.Context, e domain.Event) error {
	_, span := tracer.Start(ctx, "nats.Publish")
	defer span.End()

	subject := Subject(p.prefix, e.Type)

	data, err := json.Marshal(NewMessage(e))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "marshal")
		return fmt.Errorf("marshal event %s: %w", e.ID, err)
	}

	span.SetAttributes(
		telemetry.String("messaging.destination", subject),
		telemetry.Int("messaging.message.size", len(data)),
	)

	if err := p.conn.Publish(subject, data); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "publish")
		return fmt.Errorf("publish %s: %w", subject, err)
	}

	p.log.DebugContext(ctx, "event published",
		slog.String("subject", subject),
		slog.String("event_id", e.ID.String()),
	)
	return nil
}

// Ping reports whether the connection is currently up.
func (p *Publisher) Ping(_ context.Context) error {
	if !p.conn.IsConnected() {
		return fmt.Errorf("nats: %s", p.conn.Status())
	}
	return nil
}

// Close drains pending messages and closes the connection.
func (p *Publisher) Close() error {
	return p.conn.Drain()
}

// Nop discards events; used when publishing is disabled.
type Nop struct{}

func (Nop) Publish(context.Context, domain.Event) error { return nil }
