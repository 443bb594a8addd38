package fulfillment

import (
	"context"
	"fmt"
	"strings"

	"github.com/calyxhealth/frontdesk-ai/internal/sheets"
)

// BillingHandler answers Billing_Query: case-insensitive substring
// match on the service name, first matching row wins.
type BillingHandler struct {
	reader sheets.Reader
}

// NewBillingHandler creates the billing-query handler.
func NewBillingHandler(reader sheets.Reader) *BillingHandler {
	return &BillingHandler{reader: reader}
}

// Handle looks up the typical cost of a service.
func (h *BillingHandler) Handle(ctx context.Context, req Request) Outcome {
	service := req.Param(ParamService)
	if service == "" {
		return AskFor("Which service would you like a cost estimate for?")
	}

	rows, err := h.reader.Fetch(ctx, RangeBilling)
	if err != nil {
		return Unavailable()
	}

	for _, row := range skipHeader(rows) {
		item, err := billingItemFromRow(row)
		if err != nil {
			return Unavailable()
		}
		if containsFold(item.Service, service) {
			answer := fmt.Sprintf("%s typically costs %s.", item.Service, item.Cost)
			if strings.TrimSpace(item.Note) != "" {
				answer += " " + item.Note
			}
			return Answer(answer)
		}
	}
	return NoMatch(service)
}
