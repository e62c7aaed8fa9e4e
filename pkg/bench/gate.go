package bench

// Verdict is the threshold gate outcome for a run.
type Verdict int

const (
	// VerdictSkipped means no latency target was supplied, so no
	// judgment was made.
	VerdictSkipped Verdict = iota
	// VerdictPass means the core encoder's mean latency met the target.
	VerdictPass
	// VerdictFail means the core encoder's mean latency exceeded the
	// target. Fail is an expected, reportable run outcome, not an error.
	VerdictFail
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictPass:
		return "pass"
	case VerdictFail:
		return "fail"
	default:
		return "skipped"
	}
}

// Evaluate compares the core encoder's mean latency against an optional
// target. A nil target yields Skipped. This result is the sole
// determinant of the process's success or failure signal.
func Evaluate(core Summary, targetMs *float64) Verdict {
	if targetMs == nil {
		return VerdictSkipped
	}
	if core.Mean <= *targetMs {
		return VerdictPass
	}
	return VerdictFail
}
