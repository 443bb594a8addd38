package fulfillment

import (
	"context"
	"fmt"
)

const capabilityList = "I can help with hospital hours, directions and parking, " +
	"department information, doctor availability, lab report status, " +
	"billing estimates, and general questions."

// NewWelcomeHandler greets the user with the capability list. No
// lookup is performed.
func NewWelcomeHandler() Handler {
	greeting := "Hello! I'm the front-desk assistant. " + capabilityList +
		" What can I do for you today?"
	return HandlerFunc(func(ctx context.Context, req Request) Outcome {
		return Canned(greeting)
	})
}

// NewFallbackHandler handles unrecognized intents with the capability
// list and the helpline. It must never fail.
func NewFallbackHandler(helpline string) Handler {
	message := fmt.Sprintf("Sorry, I didn't catch that. %s For anything else, "+
		"please call our helpline at %s.", capabilityList, helpline)
	return HandlerFunc(func(ctx context.Context, req Request) Outcome {
		return Canned(message)
	})
}
