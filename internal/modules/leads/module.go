// Package leads is the lead intake module. It owns the submission sink,
// mounts the two modal form endpoints and consumes leads.submitted events.
package leads

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/speakuppartners/site/internal/forms"
	"github.com/speakuppartners/site/internal/handlers"
	"github.com/speakuppartners/site/internal/middleware"
	"github.com/speakuppartners/site/internal/module"
	"github.com/speakuppartners/site/internal/pubsub"
	"github.com/speakuppartners/site/internal/registry"
	"github.com/speakuppartners/site/internal/sink"
	"github.com/speakuppartners/site/internal/site"
	"github.com/speakuppartners/site/internal/view"
)

// LeadsModule wires lead intake into the server.
type LeadsModule struct {
	module.BaseModule
	publisher  pubsub.Publisher
	subscriber pubsub.Subscriber
	logger     *slog.Logger
	cancel     context.CancelFunc
}

// Dependencies holds the services required by the LeadsModule.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	// Logger receives the summary of every consumed lead. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// New creates a new LeadsModule instance.
func New(deps Dependencies) *LeadsModule {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &LeadsModule{
		publisher:  deps.Publisher,
		subscriber: deps.Subscriber,
		logger:     logger,
	}
}

// Name returns the module name.
func (m *LeadsModule) Name() string {
	return "leads"
}

// Register builds the configured sink and the form submitter.
func (m *LeadsModule) Register(reg *registry.Registry) error {
	provider := reg.Config().GetLeadSink()
	leadSink, err := sink.New(provider, m.publisher)
	if err != nil {
		return fmt.Errorf("leads: %w", err)
	}

	registry.Set(reg, registry.LeadSinkKey, leadSink)
	registry.Set(reg, registry.SubmitterKey, forms.NewSubmitter(leadSink))

	slog.Info("LeadsModule registered", "sink", provider)
	return nil
}

// Boot mounts the rate-limited form endpoints and starts the consumer.
func (m *LeadsModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()

	fh := handlers.NewFormHandler(registry.MustGet(reg, registry.SubmitterKey), view.ThemeFrom(cfg))
	limiter := middleware.RateLimiter(cfg.GetFormRateLimit())
	g.POST(site.FormRegistration, fh.RegistrationPost, limiter)
	g.POST(site.FormDownload, fh.DownloadPost, limiter)

	if m.subscriber == nil {
		return nil
	}
	subCtx, cancel := context.WithCancel(ctx)
	if err := m.subscriber.Subscribe(subCtx, sink.LeadSubmitted.Name(), m.handleLead); err != nil {
		cancel()
		return fmt.Errorf("leads: subscribe to %s: %w", sink.LeadSubmitted.Name(), err)
	}
	m.cancel = cancel

	slog.Info("LeadsModule booted", "topic", sink.LeadSubmitted.Name())
	return nil
}

// Shutdown stops the consumer.
func (m *LeadsModule) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}

// handleLead logs a summary of one accepted lead. Undecodable messages are
// logged and dropped so they are not redelivered forever.
func (m *LeadsModule) handleLead(ctx context.Context, msg pubsub.Message) error {
	lead, err := pubsub.Decode(sink.LeadSubmitted, msg)
	if err != nil {
		m.logger.WarnContext(ctx, "Dropping malformed lead event", "error", err)
		return nil
	}

	m.logger.InfoContext(ctx, "Lead recorded",
		slog.String("lead_id", lead.ID.String()),
		slog.String("kind", string(lead.Kind)),
		slog.String("course_id", lead.CourseID),
		slog.Time("submitted_at", lead.SubmittedAt),
	)
	return nil
}
