package fulfillment

import (
	"context"
	"strings"

	"github.com/calyxhealth/frontdesk-ai/internal/sheets"
)

// FAQHandler answers FAQ_General from the raw utterance: the first row
// whose keyword appears in the lowercased utterance wins, in table
// order. Substring containment is a deliberate low-complexity policy
// for a small curated table.
type FAQHandler struct {
	reader sheets.Reader
}

// NewFAQHandler creates the FAQ handler.
func NewFAQHandler(reader sheets.Reader) *FAQHandler {
	return &FAQHandler{reader: reader}
}

// Handle scans the FAQ table against the raw utterance.
func (h *FAQHandler) Handle(ctx context.Context, req Request) Outcome {
	query := strings.ToLower(strings.TrimSpace(req.QueryText))
	if query == "" {
		return NoMatch("")
	}

	rows, err := h.reader.Fetch(ctx, RangeFAQs)
	if err != nil {
		return Unavailable()
	}

	for _, row := range skipHeader(rows) {
		entry, err := faqEntryFromRow(row)
		if err != nil {
			return Unavailable()
		}
		keyword := strings.ToLower(strings.TrimSpace(entry.Keyword))
		if keyword == "" {
			continue
		}
		if strings.Contains(query, keyword) {
			return Answer(entry.Answer)
		}
	}
	return NoMatch("")
}
