package resource

// StatusKind distinguishes success and error status messages.
type StatusKind string

// Status kinds.
const (
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// StatusMessage is the transient user-facing outcome of the most recent
// mutating operation. It carries no error codes, only human-readable
// text, and is cleared when the next action begins.
type StatusMessage struct {
	Kind StatusKind `json:"kind"`
	Text string     `json:"text"`
}
