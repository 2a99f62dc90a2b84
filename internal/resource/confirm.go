package resource

import "context"

// DeleteWarning is the fixed prompt shown before any record deletion.
const DeleteWarning = "Data yang dihapus tidak dapat dikembalikan. Lanjutkan?"

// Confirmer resolves a yes/no confirmation for destructive actions.
// Returning it as an awaited decision instead of a blocking prompt keeps
// deletion composable and testable without simulating a dialog.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm calls f.
func (f ConfirmerFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// AlwaysConfirm approves every prompt. API callers signal their
// confirmation explicitly per request, so the handler wires this in when
// the client has already confirmed.
var AlwaysConfirm = ConfirmerFunc(func(context.Context, string) (bool, error) {
	return true, nil
})

// NeverConfirm rejects every prompt.
var NeverConfirm = ConfirmerFunc(func(context.Context, string) (bool, error) {
	return false, nil
})
