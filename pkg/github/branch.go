package github

import (
	"context"
	"sort"

	"github.com/m-mizutani/ghrepo/pkg/domain/interfaces"
	"github.com/m-mizutani/ghrepo/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type Branch struct {
	Name   types.BranchName `json:"name"`
	Commit BranchCommit     `json:"commit"`

	t    interfaces.Transport
	repo *Repository
}

type BranchCommit struct {
	SHA types.CommitSHA `json:"sha"`
	URL string          `json:"url"`
}

func (x *Branch) bind(repo *Repository) *Branch {
	x.t = repo.t
	x.repo = repo
	return x
}

// GetCommit resolves the branch head through the repository's commit cache.
func (x *Branch) GetCommit(ctx context.Context) (*Commit, error) {
	if x.repo == nil {
		return nil, goerr.Wrap(types.ErrNotBound, "branch is not bound to a repository", goerr.V("branch", x.Name))
	}
	return x.repo.GetCommit(ctx, x.Commit.SHA)
}

// Branches fetches all branches in one shot and returns them sorted by name.
// Not lazy: the endpoint returns the full list in a single response.
func (x *Repository) Branches(ctx context.Context) ([]*Branch, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	var branches []*Branch
	if err := x.t.FetchOne(ctx, x.path("branches"), &branches); err != nil {
		return nil, goerr.Wrap(err, "failed to list branches", goerr.V("repo", x.FullName()))
	}

	for _, b := range branches {
		b.bind(x)
	}
	sort.Slice(branches, func(i, j int) bool {
		return branches[i].Name < branches[j].Name
	})
	return branches, nil
}
