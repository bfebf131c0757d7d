package gluster

import (
	"errors"
	"fmt"
)

// Remote outcome taxonomy. Classification is derived from the transport
// status code, never from message text.
var (
	// ErrUnauthorized marks a request the cluster rejected for a stale
	// or revoked token. It is recovered by a single re-authentication
	// inside the invoker and does not surface past it unless the retry
	// fails too.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict marks a remote resource that already exists.
	ErrConflict = errors.New("remote resource already exists")

	// ErrNotFound marks a missing remote resource or local tenant record.
	ErrNotFound = errors.New("not found")

	// ErrAuthFailed marks a failed identity-service authentication.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrAuthRejected marks a request still unauthorized after the one
	// permitted re-authentication. It is fatal; the invoker never
	// retries past it.
	ErrAuthRejected = errors.New("request unauthorized after re-authentication")

	// ErrQuotaNotSet marks a project that was created remotely but left
	// without a quota. No compensating rollback is performed; the
	// inconsistent state is surfaced to the caller.
	ErrQuotaNotSet = errors.New("project created but quota not applied")
)

// StatusError carries any other non-success remote status.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status %d", e.Status)
}

// classify maps a response status to the outcome taxonomy. Statuses in
// ok are success.
func classify(status int, ok ...int) error {
	for _, s := range ok {
		if status == s {
			return nil
		}
	}
	switch status {
	case 401:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	case 409:
		return ErrConflict
	default:
		return &StatusError{Status: status}
	}
}
