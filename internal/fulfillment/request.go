// Package fulfillment turns recognized intents into front-desk answers.
package fulfillment

import "strings"

// Intent names supplied by the upstream NLU engine.
const (
	IntentHours      = "Ask_Hospital_Hours"
	IntentLocation   = "Ask_Hospital_Location"
	IntentDepartment = "Department_Info"
	IntentDoctor     = "Doctor_Availability"
	IntentLabReport  = "Lab_Report_Status"
	IntentBilling    = "Billing_Query"
	IntentFAQ        = "FAQ_General"
	IntentWelcome    = "Welcome"
)

// Parameter names extracted by the upstream NLU engine.
const (
	ParamDepartmentName = "department_name"
	ParamDoctorName     = "doctor_name"
	ParamSampleID       = "sample_id"
	ParamService        = "service"
)

// Request is the inbound fulfillment envelope: one recognized intent,
// the raw utterance, and any extracted parameters. Request-scoped and
// immutable; nothing here outlives a single dispatch.
type Request struct {
	Intent     string
	QueryText  string
	Parameters map[string]string
}

// Param returns the trimmed value of a named parameter, or "" when the
// extractor did not supply it.
func (r Request) Param(name string) string {
	return strings.TrimSpace(r.Parameters[name])
}
