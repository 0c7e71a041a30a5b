package github

import (
	"context"
	"time"

	"github.com/m-mizutani/ghrepo/pkg/domain/interfaces"
	"github.com/m-mizutani/ghrepo/pkg/domain/types"
	"github.com/m-mizutani/ghrepo/pkg/infra/transport"
	"github.com/m-mizutani/goerr/v2"
)

const (
	defaultForkAttempts = 10
	defaultForkInterval = 3 * time.Second
)

// SleepFunc waits for d or until ctx is cancelled. Used between fork poll
// attempts; replaceable for testing.
type SleepFunc func(ctx context.Context, d time.Duration) error

func defaultSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "interrupted while waiting")
	}
}

// Client is the root handle to the GitHub API. Every fetched resource is
// bound to it (directly or through a Repository) before use.
type Client struct {
	t            interfaces.Transport
	forkAttempts int
	forkInterval time.Duration
	sleep        SleepFunc
}

type Option func(*Client) error

// WithForkPolling overrides how long ForkTo waits for an asynchronous fork to
// become visible. Defaults: 10 attempts, 3s apart.
func WithForkPolling(attempts int, interval time.Duration) Option {
	return func(x *Client) error {
		if attempts <= 0 {
			return goerr.Wrap(types.ErrInvalidOption, "fork poll attempts must be positive", goerr.V("attempts", attempts))
		}
		if interval < 0 {
			return goerr.Wrap(types.ErrInvalidOption, "fork poll interval must not be negative", goerr.V("interval", interval))
		}
		x.forkAttempts = attempts
		x.forkInterval = interval
		return nil
	}
}

// WithSleep replaces the wait between fork poll attempts. Mainly for testing.
func WithSleep(fn SleepFunc) Option {
	return func(x *Client) error {
		x.sleep = fn
		return nil
	}
}

func New(tp interfaces.Transport, options ...Option) (*Client, error) {
	if tp == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "transport is required")
	}

	client := &Client{
		t:            tp,
		forkAttempts: defaultForkAttempts,
		forkInterval: defaultForkInterval,
		sleep:        defaultSleep,
	}

	for _, opt := range options {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	return client, nil
}

// Login returns the authenticated user's login as known to the transport.
func (x *Client) Login() string {
	return x.t.Login()
}

func (x *Client) GetRepository(ctx context.Context, owner, name string) (*Repository, error) {
	var repo Repository
	if err := x.t.FetchOne(ctx, transport.Path("repos", owner, name), &repo); err != nil {
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("owner", owner),
			goerr.V("repo", name),
		)
	}
	return repo.bind(x), nil
}

func (x *Client) GetUser(ctx context.Context, login string) (*User, error) {
	var user User
	if err := x.t.FetchOne(ctx, transport.Path("users", login), &user); err != nil {
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("login", login))
	}
	return user.bind(x.t), nil
}

// GetMyself returns the authenticated user.
func (x *Client) GetMyself(ctx context.Context) (*User, error) {
	var user User
	if err := x.t.FetchOne(ctx, "user", &user); err != nil {
		return nil, goerr.Wrap(err, "failed to get authenticated user")
	}
	return user.bind(x.t), nil
}

// Organization returns a handle to an organization by login. No fetch is
// performed; the handle only carries the key needed for repository lookups.
func (x *Client) Organization(login string) *Organization {
	return &Organization{
		login:  login,
		client: x,
	}
}

// Organization is a key-only handle to a GitHub organization.
type Organization struct {
	login  string
	client *Client
}

func (x *Organization) Login() string {
	return x.login
}

func (x *Organization) Repository(ctx context.Context, name string) (*Repository, error) {
	return x.client.GetRepository(ctx, x.login, name)
}
