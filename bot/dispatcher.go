package bot

import (
	"context"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/atomicparade/did-you-just-say/logging"
	"github.com/atomicparade/did-you-just-say/router"
	"github.com/atomicparade/did-you-just-say/shutdown"
)

// DispatcherConfig holds dispatcher tuning parameters.
type DispatcherConfig struct {
	// MaxConcurrent bounds the number of renders in flight at once.
	// Values below 1 are treated as 1.
	MaxConcurrent int

	// RateEvery is the minimum interval between render starts.
	// Zero disables rate limiting.
	RateEvery time.Duration
}

// Dispatcher consumes inbound messages and produces replies. Renders run on a
// bounded worker pool off the caller's goroutine, so slow rendering never
// blocks message intake. Replies may complete out of order relative to
// message arrival; no ordering is guaranteed or required.
type Dispatcher struct {
	router  *router.Router
	auth    *Authorizer
	manager *shutdown.Manager
	logger  *logging.Logger
	limiter *rate.Limiter
	workers int
}

// NewDispatcher creates a Dispatcher.
// The shutdown manager gates renders (in-flight tracking) and receives the
// quit command's trigger; it must not be nil.
func NewDispatcher(rtr *router.Router, auth *Authorizer, manager *shutdown.Manager, logger *logging.Logger, cfg DispatcherConfig) *Dispatcher {
	workers := cfg.MaxConcurrent
	if workers < 1 {
		workers = 1
	}

	var limiter *rate.Limiter
	if cfg.RateEvery > 0 {
		// Burst of workers lets a quiet bot absorb a small flurry
		limiter = rate.NewLimiter(rate.Every(cfg.RateEvery), workers)
	}

	return &Dispatcher{
		router:  rtr,
		auth:    auth,
		manager: manager,
		logger:  logger.Named("dispatcher"),
		limiter: limiter,
		workers: workers,
	}
}

// Run consumes messages from in until the context is cancelled or in is
// closed, then waits for in-flight work and closes the returned reply
// channel. Messages that produce no reply (ignored admin commands) are
// dropped silently.
func (d *Dispatcher) Run(ctx context.Context, in <-chan Message) <-chan Reply {
	out := make(chan Reply)

	go func() {
		defer close(out)

		var eg errgroup.Group
		eg.SetLimit(d.workers)

	loop:
		for {
			select {
			case <-ctx.Done():
				break loop
			case msg, ok := <-in:
				if !ok {
					break loop
				}
				eg.Go(func() error {
					if d.limiter != nil {
						if err := d.limiter.Wait(ctx); err != nil {
							return nil
						}
					}
					if reply, ok := d.Handle(ctx, msg); ok {
						select {
						case out <- reply:
						case <-ctx.Done():
						}
					}
					return nil
				})
			}
		}

		// Workers never return errors; Wait only joins them.
		_ = eg.Wait()
	}()

	return out
}

// Handle processes a single message synchronously. The boolean result is
// false when the message produces no reply (unauthorized quit, failed auth
// attempt, auth outside a direct message).
func (d *Dispatcher) Handle(ctx context.Context, msg Message) (Reply, bool) {
	token, rest := splitFirstToken(msg.Content)

	switch strings.ToLower(token) {
	case CommandAuth:
		return d.handleAuth(msg, rest)
	case CommandQuit:
		return d.handleQuit(msg)
	default:
		return d.handleRender(ctx, msg)
	}
}

// handleAuth processes "auth <password>". Only honored in direct messages so
// passwords are never posted to shared channels. Failed attempts are logged
// and produce no reply.
func (d *Dispatcher) handleAuth(msg Message, password string) (Reply, bool) {
	if !msg.Direct {
		return Reply{}, false
	}

	err := d.auth.Authorize(msg.SenderID, password)
	switch err {
	case nil:
		d.logger.Info("sender authorized as admin", zap.String("sender_id", msg.SenderID))
		return Reply{To: msg, Text: ReplyAuthSuccess}, true
	case ErrAlreadyAuthorized:
		return Reply{To: msg, Text: ReplyAlreadyAuthed}, true
	default:
		d.logger.Info("failed authorization attempt", zap.String("sender_id", msg.SenderID))
		return Reply{}, false
	}
}

// handleQuit shuts the bot down when the sender is an authorized admin.
// Unauthorized quit attempts are ignored.
func (d *Dispatcher) handleQuit(msg Message) (Reply, bool) {
	if !d.auth.IsAuthorized(msg.SenderID) {
		return Reply{}, false
	}

	d.logger.Info("quit requested", zap.String("sender_id", msg.SenderID))
	d.manager.Trigger("quit command from " + msg.SenderID)
	return Reply{To: msg, Text: ReplyShuttingDown}, true
}

// handleRender runs the render pipeline and maps errors to user-facing text.
func (d *Dispatcher) handleRender(ctx context.Context, msg Message) (Reply, bool) {
	var rendered Reply

	err := d.manager.WrapOperation(ctx, "render", func(ctx context.Context) error {
		img, err := d.router.Handle(msg.Content)
		if err != nil {
			return err
		}
		rendered = Reply{To: msg, Image: img}
		return nil
	})

	if err == nil {
		return rendered, true
	}

	switch router.ErrorClass(err) {
	case router.ClassTextTooLarge:
		return Reply{To: msg, Text: ReplyTextTooLarge}, true
	case router.ClassNoDefaultSlot:
		return Reply{To: msg, Text: ReplyNoSlot}, true
	default:
		// Router already logged the cause at error level.
		return Reply{To: msg, Text: ReplyGenericFailure}, true
	}
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
