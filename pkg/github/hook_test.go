package github_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/m-mizutani/ghrepo/pkg/domain/types"
	"github.com/m-mizutani/ghrepo/pkg/github"
	"github.com/m-mizutani/gt"
)

func TestCreateHook(t *testing.T) {
	ctx := context.Background()

	tp := newRepoMock("octocat", "hello")
	tp.SendFunc = func(ctx context.Context, method, path string, body, out any) error {
		if hook, ok := out.(*github.Hook); ok {
			hook.ID = 42
			req := body.(map[string]any)
			hook.Name = req["name"].(string)
			hook.Config = req["config"].(map[string]string)
		}
		return nil
	}
	repo := getRepo(t, tp)

	t.Run("events are omitted when nil", func(t *testing.T) {
		hook := gt.R1(repo.CreateHook(ctx, "web", map[string]string{"url": "https://example.com/cb"}, nil, true)).NoError(t)
		gt.V(t, hook.ID).Equal(types.HookID(42))

		calls := tp.SendCalls()
		last := calls[len(calls)-1]
		gt.V(t, last.Method).Equal(http.MethodPost)
		gt.V(t, last.Path).Equal("repos/octocat/hello/hooks")

		body := last.Body.(map[string]any)
		_, ok := body["events"]
		gt.True(t, !ok)
	})

	t.Run("web hook carries url config and requested events", func(t *testing.T) {
		hook := gt.R1(repo.CreateWebHook(ctx, "https://example.com/cb", "push", "pull_request")).NoError(t)
		gt.V(t, hook.Name).Equal("web")
		gt.V(t, hook.Config["url"]).Equal("https://example.com/cb")

		calls := tp.SendCalls()
		body := calls[len(calls)-1].Body.(map[string]any)
		gt.V(t, body["events"]).Equal([]string{"push", "pull_request"})
		gt.V(t, body["active"]).Equal(true)
	})
}

func TestPostCommitHooks(t *testing.T) {
	ctx := context.Background()

	// mutable server-side hook list
	serverHooks := func() []*github.Hook {
		return []*github.Hook{
			{ID: 1, Name: "web", Config: map[string]string{"url": "https://a.example.com"}},
			{ID: 2, Name: "slack", Config: map[string]string{"url": "https://slack.example.com"}},
			{ID: 3, Name: "web", Config: map[string]string{"url": "https://b.example.com"}},
		}
	}
	hooks := serverHooks()

	var listFetches int
	tp := newRepoMock("octocat", "hello")
	base := tp.FetchOneFunc
	tp.FetchOneFunc = func(ctx context.Context, path string, out any) error {
		if path == "repos/octocat/hello/hooks" {
			listFetches++
			*out.(*[]*github.Hook) = hooks
			return nil
		}
		return base(ctx, path, out)
	}
	tp.SendFunc = func(ctx context.Context, method, path string, body, out any) error {
		return nil
	}

	repo := getRepo(t, tp)
	view := repo.PostCommitHooks()

	t.Run("lists only web hook urls", func(t *testing.T) {
		urls := gt.R1(view.List(ctx)).NoError(t)
		gt.V(t, urls).Equal([]string{"https://a.example.com", "https://b.example.com"})
	})

	t.Run("every list re-fetches", func(t *testing.T) {
		before := listFetches
		gt.R1(view.List(ctx)).NoError(t)
		gt.R1(view.List(ctx)).NoError(t)
		gt.V(t, listFetches).Equal(before + 2)
	})

	t.Run("add creates a web hook", func(t *testing.T) {
		gt.NoError(t, view.Add(ctx, "https://c.example.com"))

		calls := tp.SendCalls()
		last := calls[len(calls)-1]
		gt.V(t, last.Method).Equal(http.MethodPost)
		body := last.Body.(map[string]any)
		gt.V(t, body["name"]).Equal("web")
		gt.V(t, body["config"]).Equal(map[string]string{"url": "https://c.example.com"})
	})

	t.Run("remove deletes only the matching web hook", func(t *testing.T) {
		removed := gt.R1(view.Remove(ctx, "https://b.example.com")).NoError(t)
		gt.True(t, removed)

		calls := tp.SendCalls()
		last := calls[len(calls)-1]
		gt.V(t, last.Method).Equal(http.MethodDelete)
		gt.V(t, last.Path).Equal("repos/octocat/hello/hooks/3")
	})

	t.Run("remove of unknown url reports false without a delete", func(t *testing.T) {
		before := len(tp.SendCalls())
		removed := gt.R1(view.Remove(ctx, "https://nowhere.example.com")).NoError(t)
		gt.True(t, !removed)
		gt.V(t, len(tp.SendCalls())).Equal(before)
	})

	t.Run("non-web hook with the same url is not removed", func(t *testing.T) {
		before := len(tp.SendCalls())
		removed := gt.R1(view.Remove(ctx, "https://slack.example.com")).NoError(t)
		gt.True(t, !removed)
		gt.V(t, len(tp.SendCalls())).Equal(before)
	})
}

func TestGetHook(t *testing.T) {
	ctx := context.Background()

	tp := newRepoMock("octocat", "hello")
	base := tp.FetchOneFunc
	tp.FetchOneFunc = func(ctx context.Context, path string, out any) error {
		if strings.HasPrefix(path, "repos/octocat/hello/hooks/") {
			hook := out.(*github.Hook)
			hook.ID = 7
			hook.Name = "web"
			hook.Active = true
			return nil
		}
		return base(ctx, path, out)
	}
	tp.SendFunc = func(ctx context.Context, method, path string, body, out any) error {
		return nil
	}

	repo := getRepo(t, tp)
	hook := gt.R1(repo.GetHook(ctx, 7)).NoError(t)
	gt.V(t, hook.ID).Equal(types.HookID(7))
	gt.True(t, hook.Active)

	// the returned hook is bound and deletable
	gt.NoError(t, hook.Delete(ctx))
	calls := tp.SendCalls()
	gt.V(t, calls[len(calls)-1].Path).Equal("repos/octocat/hello/hooks/7")
}
