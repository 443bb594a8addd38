package fulfillment

// OutcomeKind classifies what a handler produced. The kinds stay
// distinct until the formatter boundary so each template is testable
// and observable on its own.
type OutcomeKind string

const (
	// OutcomeAnswer is a substantive answer; the formatter appends the
	// demo-data disclaimer.
	OutcomeAnswer OutcomeKind = "answer"
	// OutcomeCanned is a fixed response returned verbatim (welcome,
	// fallback).
	OutcomeCanned OutcomeKind = "canned"
	// OutcomeMissingParameter means a required slot was not extracted;
	// the user gets a clarifying question, never a lookup attempt.
	OutcomeMissingParameter OutcomeKind = "missing_parameter"
	// OutcomeNoMatch means the lookup completed but nothing satisfied
	// the matching rule.
	OutcomeNoMatch OutcomeKind = "no_match"
	// OutcomeAmbiguous means several rows matched where one was
	// expected; candidates carry the choices.
	OutcomeAmbiguous OutcomeKind = "ambiguous"
	// OutcomeUnavailable covers gateway failures, malformed rows, and
	// any unexpected handler fault.
	OutcomeUnavailable OutcomeKind = "unavailable"
)

// Outcome is what every handler returns. Exactly one of the payload
// fields is meaningful, selected by Kind.
type Outcome struct {
	Kind       OutcomeKind
	Answer     string   // OutcomeAnswer, OutcomeCanned
	Question   string   // OutcomeMissingParameter
	Entity     string   // OutcomeNoMatch: what the user asked about, may be ""
	Candidates []string // OutcomeAmbiguous
}

// Answer wraps a substantive answer fragment.
func Answer(text string) Outcome {
	return Outcome{Kind: OutcomeAnswer, Answer: text}
}

// Canned wraps a fixed response that bypasses the disclaimer.
func Canned(text string) Outcome {
	return Outcome{Kind: OutcomeCanned, Answer: text}
}

// AskFor returns a clarifying question for a missing parameter.
func AskFor(question string) Outcome {
	return Outcome{Kind: OutcomeMissingParameter, Question: question}
}

// NoMatch reports that nothing matched the queried entity.
func NoMatch(entity string) Outcome {
	return Outcome{Kind: OutcomeNoMatch, Entity: entity}
}

// Ambiguous reports multiple candidates for a single-result lookup.
func Ambiguous(candidates []string) Outcome {
	return Outcome{Kind: OutcomeAmbiguous, Candidates: candidates}
}

// Unavailable reports a failed or malformed lookup.
func Unavailable() Outcome {
	return Outcome{Kind: OutcomeUnavailable}
}
