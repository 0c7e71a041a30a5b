package github

import (
	"context"
	"net/url"
	"time"

	"github.com/m-mizutani/ghrepo/pkg/domain/interfaces"
	"github.com/m-mizutani/ghrepo/pkg/domain/types"
	"github.com/m-mizutani/ghrepo/pkg/infra/transport"
	"github.com/m-mizutani/goerr/v2"
)

type Issue struct {
	Number    int       `json:"number"`
	State     string    `json:"state"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	HTMLURL   string    `json:"html_url"`
	User      *UserRef  `json:"user"`
	CreatedAt time.Time `json:"created_at"`

	t    interfaces.Transport
	repo *Repository
}

func (x *Issue) bind(repo *Repository) *Issue {
	x.t = repo.t
	x.repo = repo
	if x.User != nil {
		x.User.bind(repo.t)
	}
	return x
}

// Issues retrieves all issues of a particular state.
func (x *Repository) Issues(ctx context.Context, state types.IssueState) ([]*Issue, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	path := transport.WithQuery(x.path("issues"), url.Values{"state": {string(state)}})
	var issues []*Issue
	if err := x.t.FetchOne(ctx, path, &issues); err != nil {
		return nil, goerr.Wrap(err, "failed to list issues",
			goerr.V("repo", x.FullName()),
			goerr.V("state", state),
		)
	}
	for _, issue := range issues {
		issue.bind(x)
	}
	return issues, nil
}
