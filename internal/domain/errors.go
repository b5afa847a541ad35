package domain

import "fmt"

// FetchError wraps a failed issue-source call. Status carries the HTTP status
// when the server answered, 0 otherwise. The pipeline recovers this error to
// an empty issue list; it never aborts a run.
type FetchError struct {
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch issues: status=%d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("fetch issues: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// WriteError wraps a failed report write. Fatal: the run aborts.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write report %s: %v", e.Path, e.Err) }

func (e *WriteError) Unwrap() error { return e.Err }

// DeliveryError wraps a failed delivery attempt for one recipient. Recovered:
// one recipient failing never blocks the others.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver report to %s: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
