package fulfillment

import (
	"context"
	"fmt"
	"strings"

	"github.com/calyxhealth/frontdesk-ai/internal/sheets"
)

// DoctorHandler answers Doctor_Availability. It matches on the doctor
// name when given, otherwise on the department. All matches are
// collected; two or more ask the user to pick one. The choice cannot
// be carried into a follow-up request: each request is stateless.
type DoctorHandler struct {
	reader sheets.Reader
}

// NewDoctorHandler creates the doctor-availability handler.
func NewDoctorHandler(reader sheets.Reader) *DoctorHandler {
	return &DoctorHandler{reader: reader}
}

// Handle looks up matching doctors.
func (h *DoctorHandler) Handle(ctx context.Context, req Request) Outcome {
	doctorName := req.Param(ParamDoctorName)
	deptName := req.Param(ParamDepartmentName)
	if doctorName == "" && deptName == "" {
		return AskFor("Which doctor or department are you asking about?")
	}

	rows, err := h.reader.Fetch(ctx, RangeDoctors)
	if err != nil {
		return Unavailable()
	}

	var matches []Doctor
	for _, row := range skipHeader(rows) {
		doc, err := doctorFromRow(row)
		if err != nil {
			return Unavailable()
		}
		if doctorName != "" {
			if containsFold(doc.Name, doctorName) {
				matches = append(matches, doc)
			}
		} else if containsFold(doc.Department, deptName) {
			matches = append(matches, doc)
		}
	}

	entity := doctorName
	if entity == "" {
		entity = deptName
	}

	switch len(matches) {
	case 0:
		return NoMatch(entity)
	case 1:
		doc := matches[0]
		answer := fmt.Sprintf("%s (%s) is available on %s, %s.",
			doc.Name, doc.Department, doc.Days, doc.Hours)
		if strings.TrimSpace(doc.Notes) != "" {
			answer += " " + doc.Notes
		}
		return Answer(answer)
	default:
		return Ambiguous(doctorNames(matches))
	}
}

// doctorNames lists each matching name exactly once, in source row order.
func doctorNames(matches []Doctor) []string {
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, doc := range matches {
		if _, ok := seen[doc.Name]; ok {
			continue
		}
		seen[doc.Name] = struct{}{}
		names = append(names, doc.Name)
	}
	return names
}
