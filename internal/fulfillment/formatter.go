package fulfillment

import (
	"fmt"
	"strings"
)

// Response templates. The helpline number is read once at startup and
// substituted into every template.
const (
	disclaimerTemplate  = "Please note this is demo information. Kindly confirm with reception at %s."
	noMatchTemplate     = "Sorry, I couldn't find anything for %q. Please call our helpline at %s for assistance."
	genericTemplate     = "Sorry, I couldn't find an answer to that. Please call our helpline at %s for assistance."
	unavailableTemplate = "Sorry, I'm having trouble looking that up right now. Please call our helpline at %s."
	ambiguousTemplate   = "I found more than one doctor matching that: %s. Which one do you mean?"
)

// Formatter turns handler outcomes into final user-facing strings. It
// is the only place failure kinds become text.
type Formatter struct {
	helpline string
}

// NewFormatter creates a formatter bound to the configured helpline.
func NewFormatter(helpline string) *Formatter {
	return &Formatter{helpline: helpline}
}

// Render produces the final response for an outcome.
func (f *Formatter) Render(out Outcome) string {
	switch out.Kind {
	case OutcomeAnswer:
		return strings.TrimSpace(out.Answer) + "\n\n" + fmt.Sprintf(disclaimerTemplate, f.helpline)
	case OutcomeCanned:
		return out.Answer
	case OutcomeMissingParameter:
		return out.Question
	case OutcomeNoMatch:
		if out.Entity == "" {
			return fmt.Sprintf(genericTemplate, f.helpline)
		}
		return fmt.Sprintf(noMatchTemplate, out.Entity, f.helpline)
	case OutcomeAmbiguous:
		return fmt.Sprintf(ambiguousTemplate, strings.Join(out.Candidates, ", "))
	default:
		return fmt.Sprintf(unavailableTemplate, f.helpline)
	}
}
