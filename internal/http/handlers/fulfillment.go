package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/calyxhealth/frontdesk-ai/internal/fulfillment"
	"github.com/calyxhealth/frontdesk-ai/pkg/logging"
)

// Dispatcher resolves a fulfillment request into a response string.
type Dispatcher interface {
	Dispatch(ctx context.Context, req fulfillment.Request) string
}

// FulfillmentHandler exposes the dispatcher over HTTP. Both endpoints
// always answer 200 with a response body: a malformed envelope routes
// to the fallback response instead of an HTTP error, so the
// conversational channel never sees a broken turn.
type FulfillmentHandler struct {
	dispatcher Dispatcher
	logger     *logging.Logger
}

// NewFulfillmentHandler creates the webhook handler.
func NewFulfillmentHandler(dispatcher Dispatcher, logger *logging.Logger) *FulfillmentHandler {
	if logger == nil {
		logger = logging.Default()
	}
	if dispatcher == nil {
		panic("handlers: dispatcher cannot be nil")
	}
	return &FulfillmentHandler{dispatcher: dispatcher, logger: logger}
}

// fulfillRequest is the plain inbound envelope for POST /v1/fulfill.
type fulfillRequest struct {
	Intent     string            `json:"intent"`
	QueryText  string            `json:"query_text"`
	Parameters map[string]string `json:"parameters"`
}

// fulfillResponse is the plain response body.
type fulfillResponse struct {
	Response string `json:"response"`
}

// Fulfill handles POST /v1/fulfill.
func (h *FulfillmentHandler) Fulfill(w http.ResponseWriter, r *http.Request) {
	var body fulfillRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("malformed fulfillment envelope", "error", err)
		body = fulfillRequest{}
	}

	text := h.dispatcher.Dispatch(r.Context(), fulfillment.Request{
		Intent:     body.Intent,
		QueryText:  body.QueryText,
		Parameters: body.Parameters,
	})

	writeJSON(w, fulfillResponse{Response: text})
}

// Dialogflow webhook envelope, the subset this service reads.
type dialogflowIntent struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type dialogflowQueryResult struct {
	QueryText  string           `json:"queryText"`
	Parameters map[string]any   `json:"parameters"`
	Intent     dialogflowIntent `json:"intent"`
}

type dialogflowRequest struct {
	ResponseID  string                `json:"responseId"`
	Session     string                `json:"session"`
	QueryResult dialogflowQueryResult `json:"queryResult"`
}

type dialogflowText struct {
	Text []string `json:"text"`
}

type dialogflowMessage struct {
	Text *dialogflowText `json:"text"`
}

type dialogflowResponse struct {
	FulfillmentText     string              `json:"fulfillmentText"`
	FulfillmentMessages []dialogflowMessage `json:"fulfillmentMessages"`
}

// DialogflowWebhook handles POST /webhooks/dialogflow.
func (h *FulfillmentHandler) DialogflowWebhook(w http.ResponseWriter, r *http.Request) {
	var body dialogflowRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("malformed dialogflow envelope", "error", err)
		body = dialogflowRequest{}
	}

	text := h.dispatcher.Dispatch(r.Context(), fulfillment.Request{
		Intent:     body.QueryResult.Intent.DisplayName,
		QueryText:  body.QueryResult.QueryText,
		Parameters: stringParams(body.QueryResult.Parameters),
	})

	writeJSON(w, dialogflowResponse{
		FulfillmentText: text,
		FulfillmentMessages: []dialogflowMessage{
			{Text: &dialogflowText{Text: []string{text}}},
		},
	})
}

// HealthCheck handles GET /health.
func (h *FulfillmentHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// stringParams flattens Dialogflow's loosely typed parameter map.
// Empty values are dropped so handlers see absent, not blank, slots.
func stringParams(params map[string]any) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for name, value := range params {
		var s string
		switch v := value.(type) {
		case string:
			s = v
		case nil:
			continue
		default:
			s = fmt.Sprint(v)
		}
		if s = strings.TrimSpace(s); s != "" {
			out[name] = s
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(payload)
}
