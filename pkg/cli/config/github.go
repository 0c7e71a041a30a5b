package config

import (
	"log/slog"

	"github.com/m-mizutani/ghrepo/pkg/domain/types"
	"github.com/m-mizutani/ghrepo/pkg/infra/transport"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Auth holds GitHub credentials, either a personal access token or a GitHub
// App installation.
type Auth struct {
	token      types.GitHubToken         `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	login      string
	baseURL    string
}

func (x *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GHREPO_GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("GHREPO_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("GHREPO_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("GHREPO_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "login",
			Usage:       "Login of the authenticated user, required for ownership-checked operations",
			Category:    "GitHub",
			Destination: &x.login,
			Sources:     cli.EnvVars("GHREPO_LOGIN"),
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise Server)",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("GHREPO_BASE_URL"),
		},
	}
}

// NewTransport builds the authenticated transport from the configured
// credentials. A token takes precedence over GitHub App credentials.
func (x *Auth) NewTransport() (*transport.Client, error) {
	var options []transport.Option

	switch {
	case x.token != "":
		options = append(options, transport.WithToken(x.token))
	case x.appID != 0:
		options = append(options, transport.WithAppInstallation(x.appID, x.installID, x.privateKey))
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "either --github-token or GitHub App credentials are required")
	}

	if x.login != "" {
		options = append(options, transport.WithLogin(x.login))
	}
	if x.baseURL != "" {
		options = append(options, transport.WithBaseURL(x.baseURL))
	}

	return transport.New(options...)
}

func (x Auth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("login", x.login),
		slog.String("baseURL", x.baseURL),
	)
}
