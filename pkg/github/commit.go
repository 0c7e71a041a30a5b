package github

import (
	"context"
	"time"

	"github.com/m-mizutani/ghrepo/pkg/domain/interfaces"
	"github.com/m-mizutani/ghrepo/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type Commit struct {
	SHA       types.CommitSHA `json:"sha"`
	HTMLURL   string          `json:"html_url"`
	Author    *UserRef        `json:"author"`
	Committer *UserRef        `json:"committer"`
	Detail    CommitDetail    `json:"commit"`

	t    interfaces.Transport
	repo *Repository
}

type CommitDetail struct {
	Message   string   `json:"message"`
	Author    GitActor `json:"author"`
	Committer GitActor `json:"committer"`
}

type GitActor struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

func (x *Commit) bind(repo *Repository) *Commit {
	x.t = repo.t
	x.repo = repo
	if x.Author != nil {
		x.Author.bind(repo.t)
	}
	if x.Committer != nil {
		x.Committer.bind(repo.t)
	}
	return x
}

func (x *Commit) requireBound() error {
	if x.t == nil || x.repo == nil {
		return goerr.Wrap(types.ErrNotBound, "commit is not bound to a repository", goerr.V("sha", x.SHA))
	}
	return nil
}

// Comments lists the comments attached to this commit.
func (x *Commit) Comments(ctx context.Context) ([]*CommitComment, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	var comments []*CommitComment
	if err := x.t.FetchOne(ctx, x.repo.path("commits", string(x.SHA), "comments"), &comments); err != nil {
		return nil, goerr.Wrap(err, "failed to list commit comments", goerr.V("sha", x.SHA))
	}
	for _, c := range comments {
		c.bind(x.repo)
	}
	return comments, nil
}

type CommitComment struct {
	ID       int64           `json:"id"`
	Body     string          `json:"body"`
	Path     string          `json:"path"`
	CommitID types.CommitSHA `json:"commit_id"`
	User     *UserRef        `json:"user"`

	t    interfaces.Transport
	repo *Repository
}

func (x *CommitComment) bind(repo *Repository) *CommitComment {
	x.t = repo.t
	x.repo = repo
	if x.User != nil {
		x.User.bind(repo.t)
	}
	return x
}

// GetCommit returns the commit addressed by its owning repository; one fetch
// per comment at most, through the repository's commit cache.
func (x *CommitComment) GetCommit(ctx context.Context) (*Commit, error) {
	if x.repo == nil {
		return nil, goerr.Wrap(types.ErrNotBound, "commit comment is not bound to a repository", goerr.V("id", x.ID))
	}
	return x.repo.GetCommit(ctx, x.CommitID)
}

// ListCommits walks all commits of the repository, newest first, one page at
// a time. Every yielded commit is bound to this repository.
func (x *Repository) ListCommits() *Cursor[Commit] {
	return newCursor(
		repoPageFunc[Commit](x),
		x.path("commits"),
		func(page []*Commit) {
			for _, c := range page {
				c.bind(x)
			}
		},
	)
}

// ListCommitComments walks all commit comments in the repository.
func (x *Repository) ListCommitComments() *Cursor[CommitComment] {
	return newCursor(
		repoPageFunc[CommitComment](x),
		x.path("comments"),
		func(page []*CommitComment) {
			for _, c := range page {
				c.bind(x)
			}
		},
	)
}

// GetCommit fetches a commit by SHA through the per-repository cache: a SHA
// already seen by this Repository instance is returned without a round-trip.
func (x *Repository) GetCommit(ctx context.Context, sha types.CommitSHA) (*Commit, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	return x.commits.getOrFetch(sha, func() (*Commit, error) {
		var commit Commit
		if err := x.t.FetchOne(ctx, x.path("commits", string(sha)), &commit); err != nil {
			return nil, goerr.Wrap(err, "failed to get commit",
				goerr.V("repo", x.FullName()),
				goerr.V("sha", sha),
			)
		}
		return commit.bind(x), nil
	})
}
