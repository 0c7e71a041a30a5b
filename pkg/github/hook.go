package github

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m-mizutani/ghrepo/pkg/domain/interfaces"
	"github.com/m-mizutani/ghrepo/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const webHookName = "web"

type Hook struct {
	ID     types.HookID      `json:"id"`
	Name   string            `json:"name"`
	Active bool              `json:"active"`
	Events []string          `json:"events"`
	Config map[string]string `json:"config"`

	t    interfaces.Transport
	repo *Repository
}

func (x *Hook) bind(repo *Repository) *Hook {
	x.t = repo.t
	x.repo = repo
	return x
}

func (x *Hook) Delete(ctx context.Context) error {
	if x.t == nil || x.repo == nil {
		return goerr.Wrap(types.ErrNotBound, "hook is not bound to a repository", goerr.V("id", x.ID))
	}
	if err := x.t.Send(ctx, http.MethodDelete, x.repo.path("hooks", strconv.FormatInt(int64(x.ID), 10)), nil, nil); err != nil {
		return goerr.Wrap(err, "failed to delete hook", goerr.V("id", x.ID))
	}
	return nil
}

// Hooks retrieves the currently configured hooks.
func (x *Repository) Hooks(ctx context.Context) ([]*Hook, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	var hooks []*Hook
	if err := x.t.FetchOne(ctx, x.path("hooks"), &hooks); err != nil {
		return nil, goerr.Wrap(err, "failed to list hooks", goerr.V("repo", x.FullName()))
	}
	for _, h := range hooks {
		h.bind(x)
	}
	return hooks, nil
}

func (x *Repository) GetHook(ctx context.Context, id types.HookID) (*Hook, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	var hook Hook
	if err := x.t.FetchOne(ctx, x.path("hooks", strconv.FormatInt(int64(id), 10)), &hook); err != nil {
		return nil, goerr.Wrap(err, "failed to get hook",
			goerr.V("repo", x.FullName()),
			goerr.V("id", id),
		)
	}
	return hook.bind(x), nil
}

// CreateHook creates a hook. events may be nil to accept the server default.
func (x *Repository) CreateHook(ctx context.Context, name string, config map[string]string, events []string, active bool) (*Hook, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	body := map[string]any{
		"name":   name,
		"active": active,
		"config": config,
	}
	if events != nil {
		body["events"] = events
	}

	var hook Hook
	if err := x.t.Send(ctx, http.MethodPost, x.path("hooks"), body, &hook); err != nil {
		return nil, goerr.Wrap(err, "failed to create hook",
			goerr.V("repo", x.FullName()),
			goerr.V("name", name),
		)
	}
	return hook.bind(x), nil
}

func (x *Repository) CreateWebHook(ctx context.Context, hookURL string, events ...string) (*Hook, error) {
	return x.CreateHook(ctx, webHookName, map[string]string{"url": hookURL}, events, true)
}

// PostCommitHooks returns a view over the web hook URLs of this repository.
//
// Deprecated: every call re-fetches the full hook list and every mutation
// issues a separate write. Kept for compatibility with older callers; use
// Hooks, CreateWebHook and Hook.Delete instead.
func (x *Repository) PostCommitHooks() *PostCommitHooks {
	return &PostCommitHooks{repo: x}
}

// PostCommitHooks is the deprecated uncached view over web hook URLs.
type PostCommitHooks struct {
	repo *Repository
}

// List returns the URLs of all web hooks, re-fetched from the server.
func (x *PostCommitHooks) List(ctx context.Context) ([]string, error) {
	hooks, err := x.repo.Hooks(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to retrieve post-commit hooks")
	}

	var urls []string
	for _, h := range hooks {
		if h.Name == webHookName {
			urls = append(urls, h.Config["url"])
		}
	}
	return urls, nil
}

// Add registers hookURL as a new web hook.
func (x *PostCommitHooks) Add(ctx context.Context, hookURL string) error {
	if _, err := x.repo.CreateWebHook(ctx, hookURL); err != nil {
		return goerr.Wrap(err, "failed to add post-commit hook", goerr.V("url", hookURL))
	}
	return nil
}

// Remove deletes the web hook pointing at hookURL. Returns false when no
// matching hook exists.
func (x *PostCommitHooks) Remove(ctx context.Context, hookURL string) (bool, error) {
	hooks, err := x.repo.Hooks(ctx)
	if err != nil {
		return false, goerr.Wrap(err, "failed to retrieve post-commit hooks")
	}

	for _, h := range hooks {
		if h.Name == webHookName && h.Config["url"] == hookURL {
			if err := h.Delete(ctx); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
