package fulfillment

import (
	"errors"
	"strings"
)

// Spreadsheet ranges, one per table. Every table except hospital_info
// has a header row that is always skipped.
const (
	RangeHospitalInfo = "hospital_info!A:B"
	RangeDepartments  = "departments!A:E"
	RangeDoctors      = "doctors!A:F"
	RangeLabReports   = "lab_reports!A:F"
	RangeBilling      = "billing!A:C"
	RangeFAQs         = "faqs!A:B"
)

// Keys in the hospital_info table.
const (
	FactHours      = "hours"
	FactHolidays   = "holidays"
	FactAddress    = "address"
	FactParking    = "parking"
	FactDirections = "directions"
)

// errMalformedRow marks a row shorter than its table schema. Handlers
// treat it like an unavailable lookup rather than trusting partial data.
var errMalformedRow = errors.New("fulfillment: malformed table row")

// skipHeader drops the header row of a table.
func skipHeader(rows [][]string) [][]string {
	if len(rows) == 0 {
		return rows
	}
	return rows[1:]
}

// factsFromRows builds the key/value view of hospital_info.
func factsFromRows(rows [][]string) (map[string]string, error) {
	facts := make(map[string]string, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			return nil, errMalformedRow
		}
		facts[strings.ToLower(strings.TrimSpace(row[0]))] = row[1]
	}
	return facts, nil
}

// Department is one row of the departments table.
type Department struct {
	ID          string
	Name        string
	Description string
	Location    string
	Contact     string
}

func departmentFromRow(row []string) (Department, error) {
	if len(row) < 5 {
		return Department{}, errMalformedRow
	}
	return Department{
		ID:          row[0],
		Name:        row[1],
		Description: row[2],
		Location:    row[3],
		Contact:     row[4],
	}, nil
}

// Doctor is one row of the doctors table.
type Doctor struct {
	ID         string
	Name       string
	Department string
	Days       string
	Hours      string
	Notes      string
}

func doctorFromRow(row []string) (Doctor, error) {
	if len(row) < 6 {
		return Doctor{}, errMalformedRow
	}
	return Doctor{
		ID:         row[0],
		Name:       row[1],
		Department: row[2],
		Days:       row[3],
		Hours:      row[4],
		Notes:      row[5],
	}, nil
}

// LabReport is one row of the lab_reports table. Only the sample ID,
// status, and note columns are meaningful to this core.
type LabReport struct {
	SampleID string
	Status   string
	Note     string
}

func labReportFromRow(row []string) (LabReport, error) {
	if len(row) < 6 {
		return LabReport{}, errMalformedRow
	}
	return LabReport{
		SampleID: row[0],
		Status:   row[4],
		Note:     row[5],
	}, nil
}

// BillingItem is one row of the billing table.
type BillingItem struct {
	Service string
	Cost    string
	Note    string
}

func billingItemFromRow(row []string) (BillingItem, error) {
	if len(row) < 3 {
		return BillingItem{}, errMalformedRow
	}
	return BillingItem{
		Service: row[0],
		Cost:    row[1],
		Note:    row[2],
	}, nil
}

// FAQEntry is one row of the faqs table.
type FAQEntry struct {
	Keyword string
	Answer  string
}

func faqEntryFromRow(row []string) (FAQEntry, error) {
	if len(row) < 2 {
		return FAQEntry{}, errMalformedRow
	}
	return FAQEntry{
		Keyword: row[0],
		Answer:  row[1],
	}, nil
}

// containsFold reports whether haystack contains needle, ignoring case.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
