package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")

	// ErrTransport is the base error for any non-2xx response or network
	// failure. Wrapped errors carry "status" and "body" values.
	ErrTransport = goerr.New("github api transport error")

	// ErrIterationDone is returned by Cursor.Next after the last record.
	ErrIterationDone = goerr.New("no more items in iteration")

	// ErrNotBound means a method requiring an owning context was called on a
	// record that was never bound to one.
	ErrNotBound = goerr.New("resource is not bound to an owning context")

	// ErrNotOwner means a mutation requiring ownership was attempted by an
	// identity that does not own the repository. Checked locally, before any
	// request is sent.
	ErrNotOwner = goerr.New("operation requires repository ownership")

	// ErrForkNotVisible means the fork poll budget was exhausted before the
	// forked repository became visible in the target organization.
	ErrForkNotVisible = goerr.New("forked repository is not visible yet")
)
