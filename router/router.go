// Package router parses inbound messages into render requests, resolves the
// target slot, and drives the compose + render pipeline.
package router

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atomicparade/did-you-just-say/layout"
	"github.com/atomicparade/did-you-just-say/logging"
	"github.com/atomicparade/did-you-just-say/metrics"
	"github.com/atomicparade/did-you-just-say/render"
	"github.com/atomicparade/did-you-just-say/slots"
)

// Request is a parsed inbound message: the slot it resolved to and the text
// to render.
type Request struct {
	// ID is the uuid assigned to this request for log correlation
	ID string

	// Slot is the resolved slot configuration
	Slot slots.Slot

	// Text is the user text, with any matched command token stripped
	Text string
}

// Router turns message strings into rendered images. It holds only shared
// read-only state and is safe for concurrent use.
type Router struct {
	registry   *slots.Registry
	compositor *render.Compositor
	logger     *logging.Logger
	collector  metrics.Collector
}

// New creates a Router. The collector may be nil to disable metrics.
func New(registry *slots.Registry, compositor *render.Compositor, logger *logging.Logger, collector metrics.Collector) *Router {
	return &Router{
		registry:   registry,
		compositor: compositor,
		logger:     logger.Named("router"),
		collector:  collector,
	}
}

// Resolve parses a message into a Request without rendering it.
//
// The first whitespace-delimited token is treated as a candidate command. If
// it matches a registered command, the remainder of the message is the user
// text. Otherwise the entire message is user text for the default slot; this
// silent fallback is deliberate, so a message whose first word merely looks
// command-like still renders on the default image. With no default slot
// configured, unmatched messages fail with slots.ErrNoDefaultSlot.
func (r *Router) Resolve(message string) (Request, error) {
	req := Request{ID: uuid.NewString()}

	token, rest := splitFirstToken(message)

	if slot, ok := r.registry.Lookup(token); ok {
		req.Slot = slot
		req.Text = rest
		return req, nil
	}

	slot, ok := r.registry.Default()
	if !ok {
		return Request{}, slots.ErrNoDefaultSlot
	}
	req.Slot = slot
	req.Text = strings.TrimSpace(message)
	return req, nil
}

// Handle resolves the message, composes the layout, and renders the image.
// Component errors propagate unchanged; the caller maps them to user-facing
// messaging.
func (r *Router) Handle(message string) (*render.Rendered, error) {
	start := time.Now()

	req, err := r.Resolve(message)
	if err != nil {
		r.logger.Warn("request could not be resolved", zap.Error(err))
		r.record(req, start, err)
		return nil, err
	}

	log := r.logger.With(
		zap.String("request_id", req.ID),
		zap.String("slot", req.Slot.DisplayName()),
	)
	log.Debug("render request resolved", zap.Int("text_len", len(req.Text)))

	fnt, err := r.compositor.Font(req.Slot.FontPath)
	if err != nil {
		log.Error("font load failed", zap.Error(err))
		r.record(req, start, err)
		return nil, err
	}

	plan, err := layout.Compose(req.Text, req.Slot, fnt)
	if err != nil {
		log.Warn("layout failed", zap.Error(err))
		r.record(req, start, err)
		return nil, err
	}

	rendered, err := r.compositor.Render(req.Slot, plan)
	if err != nil {
		log.Error("render failed", zap.Error(err))
		r.record(req, start, err)
		return nil, err
	}

	log.Info("render complete",
		zap.Int("lines", len(plan.Lines)),
		zap.Float64("font_size", plan.Size),
		zap.Int("bytes", len(rendered.Bytes)),
		zap.Duration("duration", time.Since(start)),
	)
	r.record(req, start, nil)

	return rendered, nil
}

// record reports the request outcome to the metrics collector.
func (r *Router) record(req Request, start time.Time, err error) {
	if r.collector == nil {
		return
	}

	rec := metrics.RenderRecord{
		RequestID: req.ID,
		Slot:      req.Slot.DisplayName(),
		Success:   err == nil,
		Duration:  time.Since(start),
		Timestamp: time.Now(),
	}
	if err != nil {
		rec.Error = ErrorClass(err)
	}
	r.collector.RecordRender(rec)
}

// splitFirstToken splits a message into its first whitespace-delimited token
// and the trimmed remainder.
func splitFirstToken(message string) (token, rest string) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "", ""
	}

	idx := strings.IndexFunc(trimmed, unicode.IsSpace)
	if idx < 0 {
		return trimmed, ""
	}
	return trimmed[:idx], strings.TrimSpace(trimmed[idx:])
}
