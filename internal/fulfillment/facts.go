package fulfillment

import (
	"context"
	"fmt"
	"strings"

	"github.com/calyxhealth/frontdesk-ai/internal/sheets"
)

// factLine pairs a hospital_info key with its presentation template.
// A key absent from the table is silently omitted from the response.
type factLine struct {
	key    string
	format string
}

var hoursLines = []factLine{
	{FactHours, "Our OPD hours are %s."},
	{FactHolidays, "We are closed on %s."},
}

var locationLines = []factLine{
	{FactAddress, "We are located at %s."},
	{FactParking, "Parking: %s."},
	{FactDirections, "Directions: %s."},
}

// FactsHandler answers hours and location intents from the
// hospital_info key/value table.
type FactsHandler struct {
	reader sheets.Reader
	lines  []factLine
}

// NewHoursHandler answers Ask_Hospital_Hours.
func NewHoursHandler(reader sheets.Reader) *FactsHandler {
	return &FactsHandler{reader: reader, lines: hoursLines}
}

// NewLocationHandler answers Ask_Hospital_Location.
func NewLocationHandler(reader sheets.Reader) *FactsHandler {
	return &FactsHandler{reader: reader, lines: locationLines}
}

// Handle assembles one line per configured key, in declaration order.
func (h *FactsHandler) Handle(ctx context.Context, req Request) Outcome {
	rows, err := h.reader.Fetch(ctx, RangeHospitalInfo)
	if err != nil {
		return Unavailable()
	}
	facts, err := factsFromRows(rows)
	if err != nil {
		return Unavailable()
	}

	var lines []string
	for _, line := range h.lines {
		value, ok := facts[line.key]
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf(line.format, value))
	}
	if len(lines) == 0 {
		return Unavailable()
	}
	return Answer(strings.Join(lines, "\n"))
}
