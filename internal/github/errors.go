package github

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks client construction failures. Construction errors are
// reported before any network activity takes place.
var ErrInvalidConfig = errors.New("invalid client configuration")

// SubmissionError is the unified failure value for a creation call. Message is
// always set. StatusCode and ResponseBody are populated together when the
// failure originated from an HTTP response; both are zero for network-level
// failures where no response was obtained.
type SubmissionError struct {
	Message      string
	StatusCode   int
	ResponseBody string
}

func (e *SubmissionError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" | Status code: %d", e.StatusCode)
	}
	if e.ResponseBody != "" {
		msg += fmt.Sprintf(" | Response: %s", e.ResponseBody)
	}
	return msg
}

// FromResponse reports whether the error carries an HTTP response, as opposed
// to a transport failure that never produced one.
func (e *SubmissionError) FromResponse() bool {
	return e.StatusCode != 0
}
