// Package validation provides the lightweight, dependency-free design
// checks: string error codes over a raw decoded JSON payload. It is the
// embeddable counterpart of the richer internal engine and is safe for
// concurrent use; all functions are pure.
package validation

// Status values for the flat validation path.
const (
	StatusValid          = "valid"
	StatusRequiresReview = "requires_review"
	StatusRejected       = "rejected"
)

// Error codes emitted by the schema check.
const (
	CodePayloadMustBeObject = "payload_must_be_object"
	CodeWallsMustBeArray    = "walls_must_be_array"
	CodeDoorsMustBeArray    = "doors_must_be_array"
	CodeRoomsMustBeArray    = "rooms_must_be_array"
)

// Report is the result of the flat three-check path: the concatenated
// error codes and the triage status derived from their count.
type Report struct {
	Status string   `json:"status"`
	Errors []string `json:"errors"`
}

// Valid reports whether the design passed with zero errors.
func (r Report) Valid() bool {
	return r.Status == StatusValid
}

// StatusFor maps an error count onto the triage tiers: zero errors pass,
// one to three are routed to human review, more than three are rejected.
func StatusFor(errorCount int) string {
	switch {
	case errorCount == 0:
		return StatusValid
	case errorCount <= 3:
		return StatusRequiresReview
	default:
		return StatusRejected
	}
}
