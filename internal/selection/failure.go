// Package selection ranks scored candidates, filters fairness risk, and
// produces the final auditable selection decision.
package selection

// FailureKind classifies degradations and terminal outcomes. Only
// ConstraintInfeasible and BiasFilterExhausted change what is returned to
// the caller; the rest are absorbed internally after being recorded.
type FailureKind string

const (
	// FailureDataUnavailable marks an unreachable catalog or scoring
	// collaborator; cached or default values were used instead.
	FailureDataUnavailable FailureKind = "data_unavailable"

	// FailureNumeric marks an optimizer non-convergence or NaN; the
	// deterministic fallback heuristic was applied.
	FailureNumeric FailureKind = "numeric_failure"

	// FailureConstraintInfeasible marks an empty pool after filtering.
	FailureConstraintInfeasible FailureKind = "constraint_infeasible"

	// FailureBiasExhausted marks a pool emptied by the bias filter even
	// after the one relaxation attempt.
	FailureBiasExhausted FailureKind = "bias_filter_exhausted"
)

// Outcome is what a selection call produced.
type Outcome string

const (
	// OutcomeSelected means a winner was chosen and a Result is present.
	OutcomeSelected Outcome = "selected"

	// OutcomeNoItemAvailable means the constraints left an empty pool.
	OutcomeNoItemAvailable Outcome = "no_item_available"

	// OutcomeBiasFilterExhausted means the bias filter emptied the pool
	// even after relaxation.
	OutcomeBiasFilterExhausted Outcome = "bias_filter_exhausted"
)
