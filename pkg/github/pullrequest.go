package github

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/m-mizutani/ghrepo/pkg/domain/interfaces"
	"github.com/m-mizutani/ghrepo/pkg/domain/types"
	"github.com/m-mizutani/ghrepo/pkg/infra/transport"
	"github.com/m-mizutani/goerr/v2"
)

type PullRequest struct {
	Number   int             `json:"number"`
	State    string          `json:"state"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	HTMLURL  string          `json:"html_url"`
	User     *UserRef        `json:"user"`
	MergedAt *time.Time      `json:"merged_at"`
	Head     PullRequestHead `json:"head"`
	Base     PullRequestHead `json:"base"`

	t    interfaces.Transport
	repo *Repository
}

type PullRequestHead struct {
	Ref string          `json:"ref"`
	SHA types.CommitSHA `json:"sha"`
}

func (x *PullRequest) bind(repo *Repository) *PullRequest {
	x.t = repo.t
	x.repo = repo
	if x.User != nil {
		x.User.bind(repo.t)
	}
	return x
}

// GetPullRequest retrieves one pull request by number.
func (x *Repository) GetPullRequest(ctx context.Context, number int) (*PullRequest, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	var pr PullRequest
	if err := x.t.FetchOne(ctx, x.path("pulls", strconv.Itoa(number)), &pr); err != nil {
		return nil, goerr.Wrap(err, "failed to get pull request",
			goerr.V("repo", x.FullName()),
			goerr.V("number", number),
		)
	}
	return pr.bind(x), nil
}

// PullRequests retrieves all pull requests of a particular state.
func (x *Repository) PullRequests(ctx context.Context, state types.IssueState) ([]*PullRequest, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	path := transport.WithQuery(x.path("pulls"), url.Values{"state": {string(state)}})
	var prs []*PullRequest
	if err := x.t.FetchOne(ctx, path, &prs); err != nil {
		return nil, goerr.Wrap(err, "failed to list pull requests",
			goerr.V("repo", x.FullName()),
			goerr.V("state", state),
		)
	}
	for _, pr := range prs {
		pr.bind(x)
	}
	return prs, nil
}
