// Package todo implements the typed task lifecycle: statuses, the Pending and
// Done task variants, the factory that builds them, and the capability
// interfaces that decide which operations each variant allows.
package todo

// Status is the lifecycle state of a task.
type Status int

const (
	// Pending is the state of every task that has not been finished.
	// It is also the state of a title that has never been recorded.
	Pending Status = iota

	// Done is the state of a finished task.
	Done
)

// Status tokens as they appear in the persisted collection.
const (
	PendingToken = "PENDING"
	DoneToken    = "DONE"
)

// ParseStatus converts a persisted token into a Status.
// Tokens are case-sensitive; anything other than "DONE" or "PENDING"
// yields an *InvalidStatusError.
func ParseStatus(token string) (Status, error) {
	switch token {
	case DoneToken:
		return Done, nil
	case PendingToken:
		return Pending, nil
	default:
		return 0, &InvalidStatusError{Token: token}
	}
}

// String returns the persisted token for s.
func (s Status) String() string {
	if s == Done {
		return DoneToken
	}
	return PendingToken
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
