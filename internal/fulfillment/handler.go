package fulfillment

import "context"

// Handler resolves one intent into an outcome. Implementations never
// return errors: every failure kind is folded into the outcome.
type Handler interface {
	Handle(ctx context.Context, req Request) Outcome
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, req Request) Outcome

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, req Request) Outcome {
	return f(ctx, req)
}
