package model

// TryAllReport holds one outcome per dispatched candidate, in dispatch order.
type TryAllReport struct {
	Input    string
	Outcomes []Outcome
}

// Partition splits the outcomes into succeeded and failed groups, keeping
// dispatch order within each group.
func (r TryAllReport) Partition() ([]Outcome, []Outcome) {
	succeeded := make([]Outcome, 0, len(r.Outcomes))
	failed := make([]Outcome, 0)

	for _, outcome := range r.Outcomes {
		if outcome.Result.Succeeded() {
			succeeded = append(succeeded, outcome)
		} else {
			failed = append(failed, outcome)
		}
	}

	return succeeded, failed
}
