package compliance

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calyxhealth/frontdesk-ai/pkg/logging"
)

func TestRecordRedactsUtterance(t *testing.T) {
	var buf bytes.Buffer
	log := NewInteractionLog(logging.NewWithWriter("info", &buf))

	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	log.Record("Lab_Report_Status", "status of sample 443321 please", at)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "interaction", record["msg"])
	assert.Equal(t, "Lab_Report_Status", record["intent"])
	assert.Equal(t, "status of sample [REDACTED] please", record["utterance"])
	assert.Equal(t, "2026-03-14T09:30:00Z", record["at"])
	assert.NotEmpty(t, record["audit_id"])
}

func TestRecordNilReceiver(t *testing.T) {
	var log *InteractionLog
	// Must not panic: logging is purely observational.
	log.Record("Welcome", "hello", time.Now())
}

func TestRecordShortDigitRunsKept(t *testing.T) {
	var buf bytes.Buffer
	log := NewInteractionLog(logging.NewWithWriter("info", &buf))

	log.Record("FAQ_General", "is the OPD open till 5", time.Now())

	assert.Contains(t, buf.String(), "is the OPD open till 5")
}
