package fulfillment

import (
	"context"
	"fmt"

	"github.com/calyxhealth/frontdesk-ai/internal/sheets"
)

// DepartmentHandler answers Department_Info: case-insensitive substring
// match on the department name, first matching row wins.
type DepartmentHandler struct {
	reader sheets.Reader
}

// NewDepartmentHandler creates the department-info handler.
func NewDepartmentHandler(reader sheets.Reader) *DepartmentHandler {
	return &DepartmentHandler{reader: reader}
}

// Handle looks up the requested department.
func (h *DepartmentHandler) Handle(ctx context.Context, req Request) Outcome {
	name := req.Param(ParamDepartmentName)
	if name == "" {
		return AskFor("Which department would you like to know about?")
	}

	rows, err := h.reader.Fetch(ctx, RangeDepartments)
	if err != nil {
		return Unavailable()
	}

	for _, row := range skipHeader(rows) {
		dept, err := departmentFromRow(row)
		if err != nil {
			return Unavailable()
		}
		if containsFold(dept.Name, name) {
			return Answer(fmt.Sprintf("%s: %s\nLocation: %s\nContact: %s",
				dept.Name, dept.Description, dept.Location, dept.Contact))
		}
	}
	return NoMatch(name)
}
