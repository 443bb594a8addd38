// Package tests exercises the full fulfillment stack end to end: HTTP
// envelope in, dispatched through the intent registry against canned
// spreadsheet data, final response string out.
package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apirouter "github.com/calyxhealth/frontdesk-ai/internal/api/router"
	"github.com/calyxhealth/frontdesk-ai/internal/compliance"
	"github.com/calyxhealth/frontdesk-ai/internal/fulfillment"
	"github.com/calyxhealth/frontdesk-ai/internal/http/handlers"
	"github.com/calyxhealth/frontdesk-ai/internal/sheets"
	"github.com/calyxhealth/frontdesk-ai/pkg/logging"
)

const helpline = "+91-11-2658-8500"

type fixtureReader struct {
	tables map[string][][]string
	err    error
}

func (f *fixtureReader) Fetch(ctx context.Context, rangeSpec string) ([][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tables[rangeSpec], nil
}

func hospitalFixtures() map[string][][]string {
	return map[string][][]string{
		"hospital_info!A:B": {
			{"hours", "9am-5pm"},
			{"holidays", "Sundays"},
			{"address", "12 Lakeview Road"},
		},
		"departments!A:E": {
			{"ID", "Name", "Description", "Location", "Contact"},
			{"D1", "Cardiology", "Heart and vascular care", "3rd floor", "ext. 210"},
		},
		"doctors!A:F": {
			{"ID", "Name", "Department", "Days", "Hours", "Notes"},
			{"1", "Dr. Sharma", "Cardiology", "Mon-Wed", "10am-1pm", ""},
			{"2", "Dr. Shankar", "Orthopedics", "Thu-Sat", "2pm-5pm", ""},
		},
		"lab_reports!A:F": {
			{"SampleID", "Patient", "Collected", "Type", "Status", "Note"},
			{"S1234", "x", "x", "x", "processing", ""},
		},
		"billing!A:C": {
			{"Service", "Cost", "Note"},
			{"X-Ray (Chest)", "Rs. 450", ""},
		},
		"faqs!A:B": {
			{"Keyword", "Answer"},
			{"insurance", "Yes, we accept most major plans."},
		},
	}
}

func newServer(t *testing.T, reader sheets.Reader) http.Handler {
	t.Helper()
	logger := logging.New("error")
	dispatcher := fulfillment.NewRouter(fulfillment.RouterConfig{
		Reader:   reader,
		Helpline: helpline,
		Audit:    compliance.NewInteractionLog(logger),
		Logger:   logger,
	})
	return apirouter.New(&apirouter.Config{
		Logger:      logger,
		Fulfillment: handlers.NewFulfillmentHandler(dispatcher, logger),
	})
}

func fulfill(t *testing.T, srv http.Handler, body string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/fulfill", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Response string `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Response)
	return resp.Response
}

func TestHospitalHoursScenario(t *testing.T) {
	srv := newServer(t, &fixtureReader{tables: hospitalFixtures()})

	got := fulfill(t, srv, `{"intent":"Ask_Hospital_Hours"}`)

	assert.Contains(t, got, "9am-5pm")
	assert.Contains(t, got, "Sundays")
	assert.Contains(t, got, helpline)
}

func TestLabReportUnknownSampleScenario(t *testing.T) {
	srv := newServer(t, &fixtureReader{tables: hospitalFixtures()})

	got := fulfill(t, srv, `{"intent":"Lab_Report_Status","parameters":{"sample_id":"S123"}}`)

	assert.Contains(t, got, "S123")
	assert.Contains(t, got, helpline)
	assert.NotContains(t, got, "processing")
}

func TestDoctorDisambiguationScenario(t *testing.T) {
	srv := newServer(t, &fixtureReader{tables: hospitalFixtures()})

	got := fulfill(t, srv, `{"intent":"Doctor_Availability","parameters":{"doctor_name":"Sha"}}`)

	assert.Contains(t, got, "Dr. Sharma")
	assert.Contains(t, got, "Dr. Shankar")
	assert.Contains(t, got, "Which one do you mean?")
}

func TestFAQScenario(t *testing.T) {
	srv := newServer(t, &fixtureReader{tables: hospitalFixtures()})

	got := fulfill(t, srv, `{"intent":"FAQ_General","query_text":"do you accept insurance"}`)

	assert.True(t, strings.HasPrefix(got, "Yes, we accept most major plans."), "got %q", got)
	assert.Contains(t, got, helpline)
}

func TestGatewayDownScenario(t *testing.T) {
	srv := newServer(t, &fixtureReader{err: sheets.ErrUnavailable})

	for _, body := range []string{
		`{"intent":"Ask_Hospital_Hours"}`,
		`{"intent":"Department_Info","parameters":{"department_name":"Cardiology"}}`,
		`{"intent":"FAQ_General","query_text":"insurance"}`,
	} {
		got := fulfill(t, srv, body)
		assert.Contains(t, got, helpline)
	}
}

func TestDialogflowRoundTrip(t *testing.T) {
	srv := newServer(t, &fixtureReader{tables: hospitalFixtures()})

	body := `{"queryResult":{"queryText":"where are you","parameters":{},"intent":{"displayName":"Ask_Hospital_Location"}}}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/dialogflow", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		FulfillmentText string `json:"fulfillmentText"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.FulfillmentText, "12 Lakeview Road")
}
