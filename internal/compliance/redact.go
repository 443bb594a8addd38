// Package compliance provides interaction auditing with sensitive-data redaction.
package compliance

import "regexp"

// MaskToken replaces redacted digit runs in logged utterances.
const MaskToken = "[REDACTED]"

// Runs of 4+ digits cover phone numbers, sample IDs, and insurance
// numbers; shorter runs (ages, times, floor numbers) are left intact.
var digitRun = regexp.MustCompile(`[0-9]{4,}`)

// RedactDigits replaces every maximal run of 4 or more consecutive
// digits in s with MaskToken.
func RedactDigits(s string) string {
	return digitRun.ReplaceAllString(s, MaskToken)
}
