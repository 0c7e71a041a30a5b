package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/ghrepo/pkg/cli/config"
	"github.com/m-mizutani/ghrepo/pkg/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// target identifies the repository a command operates on. When the flags are
// omitted, the owner/name pair is auto-detected from the origin remote of the
// current directory's git checkout.
type target struct {
	Owner string
	Name  string
}

func (x *target) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner (auto-detect from git if not specified)",
			Sources:     cli.EnvVars("GHREPO_OWNER"),
			Destination: &x.Owner,
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name (auto-detect from git if not specified)",
			Sources:     cli.EnvVars("GHREPO_REPO"),
			Destination: &x.Name,
		},
	}
}

func (x *target) resolve() error {
	if x.Owner != "" && x.Name != "" {
		return nil
	}

	repo, err := git.PlainOpen(".")
	if err != nil {
		return goerr.Wrap(err, "owner/repo not specified and failed to open git repository")
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return goerr.Wrap(err, "failed to get remote origin")
	}
	if len(remote.Config().URLs) == 0 {
		return goerr.New("no remote URL found")
	}

	owner, name, err := parseGitHubRemote(remote.Config().URLs[0])
	if err != nil {
		return err
	}

	if x.Owner == "" {
		x.Owner = owner
	}
	if x.Name == "" {
		x.Name = name
	}
	return nil
}

// parseGitHubRemote extracts owner/repo from a git remote URL, e.g.
// git@github.com:owner/repo.git or https://github.com/owner/repo.git
func parseGitHubRemote(remoteURL string) (string, string, error) {
	var ownerRepo string

	if rest, ok := strings.CutPrefix(remoteURL, "git@github.com:"); ok {
		ownerRepo = rest
	} else if _, rest, ok := strings.Cut(remoteURL, "github.com/"); ok {
		ownerRepo = rest
	} else {
		return "", "", goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", remoteURL))
	}

	ownerRepo = strings.TrimSuffix(ownerRepo, ".git")
	parts := strings.Split(ownerRepo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", remoteURL))
	}
	return parts[0], parts[1], nil
}

func newClient(auth *config.Auth, options ...github.Option) (*github.Client, error) {
	tp, err := auth.NewTransport()
	if err != nil {
		return nil, err
	}
	return github.New(tp, options...)
}
