package github_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/ghrepo/pkg/domain/types"
	"github.com/m-mizutani/ghrepo/pkg/github"
	"github.com/m-mizutani/ghrepo/pkg/infra/transport"
	"github.com/m-mizutani/ghrepo/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

// Requires GHREPO_TEST_GITHUB_TOKEN with read access to public repositories.
func TestLiveRepository(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "GHREPO_TEST_GITHUB_TOKEN")
	ctx := context.Background()

	tp := gt.R1(transport.New(
		transport.WithToken(types.GitHubToken(token)),
	)).NoError(t)
	client := gt.R1(github.New(tp)).NoError(t)

	repo := gt.R1(client.GetRepository(ctx, "octocat", "Hello-World")).NoError(t)
	gt.V(t, repo.Name).Equal("Hello-World")
	gt.V(t, repo.OwnerName()).Equal("octocat")

	t.Run("branches", func(t *testing.T) {
		branches := gt.R1(repo.Branches(ctx)).NoError(t)
		gt.A(t, branches).Longer(0)
	})

	t.Run("commits", func(t *testing.T) {
		cursor := repo.ListCommits()
		ok := gt.R1(cursor.HasNext(ctx)).NoError(t)
		gt.True(t, ok)

		commit := gt.R1(cursor.Next(ctx)).NoError(t)
		gt.V(t, string(commit.SHA)).NotEqual("")

		// the same SHA through the cache yields the identical instance data
		cached := gt.R1(repo.GetCommit(ctx, commit.SHA)).NoError(t)
		gt.V(t, cached.SHA).Equal(commit.SHA)
	})
}
