package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . Transport

import (
	"context"
)

// Transport performs authenticated HTTP requests against the GitHub API and
// decodes JSON responses into typed records. It is the only component that
// touches the network; everything above it works with decoded records.
type Transport interface {
	// FetchOne issues a single GET and decodes the response body into out.
	FetchOne(ctx context.Context, path string, out any) error

	// FetchPage issues a GET against locator (an API path for the first page,
	// or the absolute "next" URL afterwards), decodes the array response into
	// out, and returns the locator of the next page. An empty next locator
	// means no further pages exist.
	FetchPage(ctx context.Context, locator string, out any) (next string, err error)

	// Send issues a write request (POST/PATCH/PUT/DELETE) with body serialized
	// as JSON. When out is non-nil and the server returns a body, the response
	// is decoded into out.
	Send(ctx context.Context, method string, path string, body any, out any) error

	// Login returns the authenticated user's login, or an empty string when
	// the identity is unknown. Used for local ownership checks.
	Login() string
}
