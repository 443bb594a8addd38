package fulfillment

import (
	"context"
	"fmt"
	"strings"

	"github.com/calyxhealth/frontdesk-ai/internal/sheets"
)

// LabReportHandler answers Lab_Report_Status. Sample IDs match on
// exact equality, never substring: "S123" must not match "S1234".
type LabReportHandler struct {
	reader sheets.Reader
}

// NewLabReportHandler creates the lab-report-status handler.
func NewLabReportHandler(reader sheets.Reader) *LabReportHandler {
	return &LabReportHandler{reader: reader}
}

// Handle looks up the report for a sample ID.
func (h *LabReportHandler) Handle(ctx context.Context, req Request) Outcome {
	sampleID := req.Param(ParamSampleID)
	if sampleID == "" {
		return AskFor("Could you share your sample ID so I can check the report status?")
	}

	rows, err := h.reader.Fetch(ctx, RangeLabReports)
	if err != nil {
		return Unavailable()
	}

	for _, row := range skipHeader(rows) {
		report, err := labReportFromRow(row)
		if err != nil {
			return Unavailable()
		}
		if strings.TrimSpace(report.SampleID) == sampleID {
			answer := fmt.Sprintf("Report for sample %s: %s.", report.SampleID, report.Status)
			if strings.TrimSpace(report.Note) != "" {
				answer += " " + report.Note
			}
			return Answer(answer)
		}
	}
	return NoMatch(sampleID)
}
