package transform

import "fmt"

// InvariantError reports a journal whose legs cannot be split into a source
// and a destination side. Data in this state is structurally broken; the
// error is never retried.
type InvariantError struct {
	JournalID int64
	Missing   string // "source" or "destination"
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("journal #%d has no %s transaction", e.JournalID, e.Missing)
}

// GroupError is what callers see when any journal of a group fails to
// normalize. Its message carries only the group id; the underlying cause is
// written to the operator log and reachable through Unwrap, not through the
// message.
type GroupError struct {
	GroupID int64
	Err     error
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("transaction group #%d is broken", e.GroupID)
}

func (e *GroupError) Unwrap() error { return e.Err }
