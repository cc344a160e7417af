// Package sink provides the destinations an accepted lead can be handed to.
package sink

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/speakuppartners/site/internal/domain"
	"github.com/speakuppartners/site/internal/pubsub"
)

// LeadSubmitted is published by BusSink for every accepted lead.
var LeadSubmitted = pubsub.NewEvent[domain.Lead]("leads.submitted", "A visitor submitted the registration or ebook form")

// --- LogSink (default) ---

// LogSink writes leads to the structured log instead of delivering them.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink. A nil logger means slog.Default().
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Submit logs the lead.
func (s *LogSink) Submit(ctx context.Context, lead domain.Lead) error {
	s.logger.InfoContext(ctx, "Lead received",
		"lead_id", lead.ID.String(),
		"kind", lead.Kind,
		"name", lead.Name,
		"email", lead.Email,
		"phone", lead.Phone,
		"course_id", lead.CourseID,
	)
	return nil
}

// --- BusSink ---

// BusSink publishes leads on the in-process message bus, where the leads
// module (or any later integration) consumes them.
type BusSink struct {
	publisher pubsub.Publisher
}

// NewBusSink creates a BusSink.
func NewBusSink(publisher pubsub.Publisher) *BusSink {
	return &BusSink{publisher: publisher}
}

// Submit publishes a LeadSubmitted event.
func (s *BusSink) Submit(ctx context.Context, lead domain.Lead) error {
	if s.publisher == nil {
		return domain.ErrSinkUnavailable
	}
	meta := map[string]string{"lead_kind": string(lead.Kind)}
	if err := pubsub.Publish(ctx, s.publisher, LeadSubmitted, lead, meta); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSinkUnavailable, err)
	}
	return nil
}

// New creates the sink selected by provider ("log" or "bus").
func New(provider string, publisher pubsub.Publisher) (domain.LeadSink, error) {
	switch provider {
	case "", "log":
		return NewLogSink(nil), nil
	case "bus":
		if publisher == nil {
			return nil, fmt.Errorf("lead sink is 'bus' but no publisher is configured")
		}
		return NewBusSink(publisher), nil
	default:
		return nil, fmt.Errorf("unknown lead sink: %s", provider)
	}
}
