package content

import "context"

type confirmKey struct{}

// withConfirmation marks the context with the client's explicit
// confirmation decision for a destructive action.
func withConfirmation(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, confirmKey{}, confirmed)
}

// requestConfirmer resolves delete confirmations from the request
// context, where the handler records the client's decision. Absent a
// decision the confirmation is treated as declined.
type requestConfirmer struct{}

func (requestConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	confirmed, _ := ctx.Value(confirmKey{}).(bool)
	return confirmed, nil
}
