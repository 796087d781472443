package model

// Outcome reports what happened to a single termination request.
type Outcome int

const (
	// Sent means the termination signal was delivered.
	Sent Outcome = iota
	// Blocked means the target is essential; no signal was issued.
	Blocked
	// NotFound means the process was already gone. Treated as success.
	NotFound
	// PermissionDenied means the caller may not signal the target.
	PermissionDenied
)

func (o Outcome) String() string {
	switch o {
	case Sent:
		return "sent"
	case Blocked:
		return "blocked"
	case NotFound:
		return "not_found"
	case PermissionDenied:
		return "permission_denied"
	}
	return "unknown"
}

// SweepSummary aggregates the outcomes of one batch cleanup.
type SweepSummary struct {
	Sent    int
	Blocked int
	Denied  int
	Gone    int
}

// Attempts counts how many termination signals were actually issued.
func (s SweepSummary) Attempts() int {
	return s.Sent + s.Denied + s.Gone
}
