package checkout

// Status represents the phase a checkout run is in
type Status string

const (
	StatusStarted   Status = "STARTED"
	StatusValidated Status = "VALIDATED"
	StatusPriced    Status = "PRICED"
	StatusCommitted Status = "COMMITTED"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

var transitions = map[Status][]Status{
	StatusStarted:   {StatusValidated, StatusFailed},
	StatusValidated: {StatusPriced, StatusFailed},
	StatusPriced:    {StatusCommitted, StatusFailed},
	StatusCommitted: {StatusCompleted, StatusFailed},
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransitionTo reports whether next is a legal successor of s
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}
