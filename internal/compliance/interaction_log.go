package compliance

import (
	"time"

	"github.com/google/uuid"

	"github.com/calyxhealth/frontdesk-ai/pkg/logging"
)

// InteractionLog records one audit line per fulfillment request.
// Recording is best-effort: it never blocks or fails the response path.
type InteractionLog struct {
	logger *logging.Logger
}

// NewInteractionLog creates an interaction log backed by the given logger.
func NewInteractionLog(logger *logging.Logger) *InteractionLog {
	if logger == nil {
		logger = logging.Default()
	}
	return &InteractionLog{logger: logger}
}

// Record emits a single audit record with the utterance redacted.
// Safe on a nil receiver; panics from the log sink are swallowed.
func (l *InteractionLog) Record(intent, utterance string, at time.Time) {
	if l == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	l.logger.Info("interaction",
		"audit_id", uuid.NewString(),
		"intent", intent,
		"utterance", RedactDigits(utterance),
		"at", at.UTC().Format(time.RFC3339),
	)
}
