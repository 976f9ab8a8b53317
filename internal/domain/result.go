package domain

// Status is the orchestrator-level triage verdict. Designs with a small
// number of violations are routed to human review instead of being
// rejected outright.
type Status string

const (
	StatusValid          Status = "valid"
	StatusRequiresReview Status = "requires_review"
	StatusRejected       Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// IsValid returns true if the status is a recognized value.
func (s Status) IsValid() bool {
	switch s {
	case StatusValid, StatusRequiresReview, StatusRejected:
		return true
	}
	return false
}

// StatusForErrorCount maps a merged error count onto the triage tiers:
// zero errors pass, one to three go to review, more are rejected.
func StatusForErrorCount(n int) Status {
	switch {
	case n == 0:
		return StatusValid
	case n <= 3:
		return StatusRequiresReview
	default:
		return StatusRejected
	}
}

// CheckResult is the smallest unit of reporting: one entity or one check
// group. Warnings are advisory and never affect Valid.
type CheckResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// RoomsReport summarizes the room set seen by the geometry evaluator.
type RoomsReport struct {
	RoomCount int     `json:"room_count"`
	TotalArea float64 `json:"total_area"`
}

// ValidationOutcome is one evaluator's result. It is created fresh per call
// and never mutated after return. Evaluator-specific detail fields are nil
// for evaluators that do not produce them.
type ValidationOutcome struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`

	// RoomCompliance maps room index to the per-room result.
	RoomCompliance map[int]CheckResult `json:"room_compliance,omitempty"`

	// Rooms is populated by the geometry evaluator.
	Rooms *RoomsReport `json:"rooms,omitempty"`

	// Groups records which named check groups passed; the compliance score
	// is the fraction of groups that did.
	Groups          map[string]bool `json:"groups,omitempty"`
	ComplianceScore *float64        `json:"compliance_score,omitempty"`
}

// GroupRatio returns the fraction of check groups that passed, 1.0 when no
// group was evaluated.
func (o *ValidationOutcome) GroupRatio() float64 {
	if len(o.Groups) == 0 {
		return 1.0
	}
	passed := 0
	for _, ok := range o.Groups {
		if ok {
			passed++
		}
	}
	return float64(passed) / float64(len(o.Groups))
}

// AggregateResult is the orchestrator's merged verdict over the selected
// evaluators. Error order is fixed (schema, geometric, code) regardless of
// how the evaluators actually ran.
type AggregateResult struct {
	Status          Status                        `json:"status"`
	OverallSuccess  bool                          `json:"overall_success"`
	Errors          []string                      `json:"errors"`
	Warnings        []string                      `json:"warnings"`
	ConfidenceScore float64                       `json:"confidence_score"`
	Results         map[string]*ValidationOutcome `json:"results,omitempty"`
}

// AspectResult is one analysis aspect of a project-level run. When the
// aspect blew up instead of completing, Error carries the message and the
// confidence is zero.
type AspectResult struct {
	ConfidenceScore float64  `json:"confidence_score"`
	Valid           bool     `json:"valid"`
	Errors          []string `json:"errors,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// ProjectAnalysisResult blends the per-aspect confidences of a stored
// project into one score with aggregated recommendations.
type ProjectAnalysisResult struct {
	ProjectID       string                  `json:"project_id"`
	AnalysisType    string                  `json:"analysis_type"`
	Aspects         map[string]AspectResult `json:"aspects"`
	ConfidenceScore float64                 `json:"confidence_score"`
	Recommendations []string                `json:"recommendations"`
}
