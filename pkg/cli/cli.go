package cli

import (
	"context"

	"github.com/m-mizutani/ghrepo/pkg/cli/config"
	"github.com/m-mizutani/ghrepo/pkg/utils/errutil"
	"github.com/m-mizutani/ghrepo/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
		sentryCfg config.Sentry
	)

	app := &cli.Command{
		Name:  "ghrepo",
		Usage: "Client-side mirror of GitHub repositories",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("GHREPO_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("GHREPO_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("GHREPO_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "-",
			},
		}, sentryCfg.Flags()...),
		Commands: []*cli.Command{
			infoCommand(),
			commitsCommand(),
			branchesCommand(),
			milestonesCommand(),
			pullsCommand(),
			hooksCommand(),
			forkCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			if err := sentryCfg.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	ctx := context.Background()
	if err := app.Run(ctx, argv); err != nil {
		errutil.HandleError(ctx, "fatal error", err)
		return err
	}

	return nil
}
