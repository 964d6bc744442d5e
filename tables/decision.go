package tables

import "slices"

// Reason names the rule that settled a merge decision
type Reason int

const (
	// ReasonNotAtEnd: content follows the first fragment on its page
	ReasonNotAtEnd Reason = iota
	// ReasonNotAtStart: content precedes the second fragment on its page
	ReasonNotAtStart
	// ReasonColumnMismatch: both fragments have columns, but not the same number
	ReasonColumnMismatch
	// ReasonHeaderMismatch: the second fragment starts a different table
	ReasonHeaderMismatch
	// ReasonContinuation: the second fragment has no header of its own
	ReasonContinuation
	// ReasonRepeatedHeader: the second fragment repeats the first one's header
	ReasonRepeatedHeader
)

func (r Reason) String() string {
	switch r {
	case ReasonNotAtEnd:
		return "not at end of page"
	case ReasonNotAtStart:
		return "not at start of page"
	case ReasonColumnMismatch:
		return "column count mismatch"
	case ReasonHeaderMismatch:
		return "header mismatch"
	case ReasonContinuation:
		return "headerless continuation"
	case ReasonRepeatedHeader:
		return "repeated header"
	default:
		return "unknown"
	}
}

// Decision is the outcome of comparing two fragments
type Decision struct {
	Merge  bool
	Reason Reason
}

// Explain applies the merge rules to first (trailing its page) and second
// (leading the next page) and reports which rule decided.
func Explain(first, second Fragment) Decision {
	if !first.AtContentEnd {
		return Decision{Reason: ReasonNotAtEnd}
	}
	if !second.AtContentStart {
		return Decision{Reason: ReasonNotAtStart}
	}

	// A zero count comes from a degenerate fragment and never blocks
	if first.ColumnCount != second.ColumnCount &&
		first.ColumnCount > 0 && second.ColumnCount > 0 {
		return Decision{Reason: ReasonColumnMismatch}
	}

	if !second.HasHeader {
		return Decision{Merge: true, Reason: ReasonContinuation}
	}

	if first.Headers != nil && second.Headers != nil &&
		slices.Equal(first.Headers, second.Headers) {
		return Decision{Merge: true, Reason: ReasonRepeatedHeader}
	}

	return Decision{Reason: ReasonHeaderMismatch}
}

// CanMerge reports whether second continues the table that first ends with.
func CanMerge(first, second Fragment) bool {
	return Explain(first, second).Merge
}
