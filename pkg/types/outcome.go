package types

// OutcomeStatus is the terminal state of one entry's reconciliation.
type OutcomeStatus string

const (
	// StatusConverged means the plan ran to completion.
	StatusConverged OutcomeStatus = "converged"

	// StatusSkipped means external already was a symlink and target existed.
	StatusSkipped OutcomeStatus = "skipped"

	// StatusFailed means an action failed; Stage names it.
	StatusFailed OutcomeStatus = "failed"

	// StatusInvalid means the entry cannot be reconciled from the observed
	// state. Nothing was touched.
	StatusInvalid OutcomeStatus = "invalid"
)

// Outcome is the result of reconciling one entry.
type Outcome struct {
	Entry       Entry
	Observation Observation
	Status      OutcomeStatus
	// Stage is the failing action kind, only meaningful when Status is
	// StatusFailed.
	Stage   ActionKind
	Message string
	Err     error
	Results []ActionResult
}

// OK reports whether the outcome counts as success.
func (o Outcome) OK() bool {
	return o.Status == StatusConverged || o.Status == StatusSkipped
}

// Summary aggregates the outcomes of a run, in input order.
type Summary struct {
	Outcomes  []Outcome
	Converged int
	Skipped   int
	Failed    int
	Invalid   int
}

// Add records an outcome.
func (s *Summary) Add(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
	switch o.Status {
	case StatusConverged:
		s.Converged++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	case StatusInvalid:
		s.Invalid++
	}
}

// HasErrors reports whether any entry failed or was invalid.
func (s Summary) HasErrors() bool {
	return s.Failed > 0 || s.Invalid > 0
}
