package github

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/m-mizutani/ghrepo/pkg/domain/interfaces"
	"github.com/m-mizutani/ghrepo/pkg/domain/types"
	"github.com/m-mizutani/ghrepo/pkg/infra/transport"
	"github.com/m-mizutani/goerr/v2"
)

// User is a fully resolved GitHub user record.
type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Email       string `json:"email"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`

	t interfaces.Transport
}

func (x *User) bind(tp interfaces.Transport) *User {
	x.t = tp
	return x
}

// UserRef is a two-state user reference. API payloads embed user objects that
// carry little more than a login; UserRef keeps that key-only state explicit
// and requires a Resolve call to obtain the full record, so the network cost
// is visible at the call site. The resolved record is memoized.
type UserRef struct {
	login string
	t     interfaces.Transport

	mu   sync.Mutex
	user *User
}

// NewUserRef builds a key-only reference from a login without any fetch.
func NewUserRef(login string) *UserRef {
	return &UserRef{login: login}
}

func (x *UserRef) UnmarshalJSON(data []byte) error {
	var stub struct {
		Login string `json:"login"`
	}
	if err := json.Unmarshal(data, &stub); err != nil {
		return err
	}
	x.login = stub.Login
	return nil
}

func (x *UserRef) bind(tp interfaces.Transport) *UserRef {
	x.t = tp
	return x
}

func (x *UserRef) Login() string {
	return x.login
}

// Resolved reports whether the full record has already been fetched.
func (x *UserRef) Resolved() bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.user != nil
}

// Resolve fetches the full user record, once. Subsequent calls return the
// same instance without a network round-trip.
func (x *UserRef) Resolve(ctx context.Context) (*User, error) {
	if x.t == nil {
		return nil, goerr.Wrap(types.ErrNotBound, "user reference is not bound", goerr.V("login", x.login))
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if x.user != nil {
		return x.user, nil
	}

	var user User
	if err := x.t.FetchOne(ctx, transport.Path("users", x.login), &user); err != nil {
		return nil, goerr.Wrap(err, "failed to resolve user", goerr.V("login", x.login))
	}
	x.user = user.bind(x.t)
	return x.user, nil
}
