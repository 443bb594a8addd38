package fulfillment

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/calyxhealth/frontdesk-ai/internal/compliance"
	"github.com/calyxhealth/frontdesk-ai/internal/observability/metrics"
	"github.com/calyxhealth/frontdesk-ai/internal/sheets"
	"github.com/calyxhealth/frontdesk-ai/pkg/logging"
)

var tracer = otel.Tracer("frontdesk.internal.fulfillment")

// Router maps intent names to handlers and runs the dispatch pipeline:
// audit, handler, formatter. The registry is built once at startup and
// never mutated.
type Router struct {
	handlers  map[string]Handler
	fallback  Handler
	formatter *Formatter
	audit     *compliance.InteractionLog
	metrics   *metrics.FulfillmentMetrics
	logger    *logging.Logger
}

// RouterConfig wires the router's collaborators.
type RouterConfig struct {
	Reader   sheets.Reader
	Helpline string
	Audit    *compliance.InteractionLog
	Metrics  *metrics.FulfillmentMetrics
	Logger   *logging.Logger
}

// NewRouter builds the immutable intent registry.
func NewRouter(cfg RouterConfig) *Router {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	welcome := NewWelcomeHandler()
	handlers := map[string]Handler{
		IntentHours:              NewHoursHandler(cfg.Reader),
		IntentLocation:           NewLocationHandler(cfg.Reader),
		IntentDepartment:         NewDepartmentHandler(cfg.Reader),
		IntentDoctor:             NewDoctorHandler(cfg.Reader),
		IntentLabReport:          NewLabReportHandler(cfg.Reader),
		IntentBilling:            NewBillingHandler(cfg.Reader),
		IntentFAQ:                NewFAQHandler(cfg.Reader),
		IntentWelcome:            welcome,
		"Default Welcome Intent": welcome,
	}

	return &Router{
		handlers:  handlers,
		fallback:  NewFallbackHandler(cfg.Helpline),
		formatter: NewFormatter(cfg.Helpline),
		audit:     cfg.Audit,
		metrics:   cfg.Metrics,
		logger:    logger,
	}
}

// Dispatch resolves a request into a response string. It never fails:
// unknown intents fall back to the capability list, and any handler
// fault becomes the unavailable apology.
func (r *Router) Dispatch(ctx context.Context, req Request) string {
	ctx, span := tracer.Start(ctx, "fulfillment.dispatch")
	span.SetAttributes(attribute.String("intent", req.Intent))
	defer span.End()

	r.audit.Record(req.Intent, req.QueryText, time.Now())

	handler, ok := r.handlers[req.Intent]
	if !ok {
		handler = r.fallback
	}

	out := r.safeHandle(ctx, handler, req)

	span.SetAttributes(attribute.String("outcome", string(out.Kind)))
	r.metrics.ObserveRequest(req.Intent, string(out.Kind))
	r.logger.Info("intent dispatched",
		"intent", req.Intent,
		"known", ok,
		"outcome", string(out.Kind),
	)

	return r.formatter.Render(out)
}

// safeHandle is the uniform failure boundary: an unexpected panic in a
// handler becomes the unavailable outcome instead of a broken turn.
func (r *Router) safeHandle(ctx context.Context, h Handler, req Request) (out Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("handler panicked", "intent", req.Intent, "panic", rec)
			out = Unavailable()
		}
	}()
	return h.Handle(ctx, req)
}
