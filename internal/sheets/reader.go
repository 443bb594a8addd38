// Package sheets is the read-only gateway to the hospital data spreadsheet.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/calyxhealth/frontdesk-ai/internal/observability/metrics"
	"github.com/calyxhealth/frontdesk-ai/pkg/logging"
)

var tracer = otel.Tracer("frontdesk.internal.sheets")

// ErrUnavailable is returned for any gateway failure: network, auth,
// malformed range. Callers see this single abstract error, never a
// partially-read result.
var ErrUnavailable = errors.New("sheets: lookup unavailable")

// Reader fetches all rows of a named table range. Every call is a
// fresh read; there is no caching and no retry.
type Reader interface {
	Fetch(ctx context.Context, rangeSpec string) ([][]string, error)
}

// ClientConfig configures the Sheets gateway.
type ClientConfig struct {
	SpreadsheetID   string
	CredentialsFile string
	APIKey          string
	// Timeout bounds each fetch. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout bounds a fetch when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// Client reads ranges from a single Google spreadsheet.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	timeout       time.Duration
	metrics       *metrics.FulfillmentMetrics
	logger        *logging.Logger
}

// NewClient builds a Sheets gateway with read-only scope.
func NewClient(ctx context.Context, cfg ClientConfig, m *metrics.FulfillmentMetrics, logger *logging.Logger) (*Client, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("sheets: missing spreadsheet ID")
	}

	opts := []option.ClientOption{option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope)}
	switch {
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	case cfg.APIKey != "":
		opts = []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	}

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		timeout:       timeout,
		metrics:       m,
		logger:        logger,
	}, nil
}

// Fetch returns every row in the given range as string cells. An empty
// table yields an empty slice, not an error.
func (c *Client) Fetch(ctx context.Context, rangeSpec string) ([][]string, error) {
	ctx, span := tracer.Start(ctx, "sheets.fetch")
	span.SetAttributes(attribute.String("sheets.range", rangeSpec))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeSpec).Context(ctx).Do()
	c.metrics.ObserveFetch(rangeSpec, time.Since(start).Seconds())
	if err != nil {
		c.metrics.ObserveFetchError()
		c.logger.Error("sheets fetch failed", "range", rangeSpec, "error", err)
		return nil, fmt.Errorf("%w: range %s: %v", ErrUnavailable, rangeSpec, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, cellString(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cellString normalizes a spreadsheet cell to a string. The Sheets API
// returns untyped values; numbers come back as float64.
func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
