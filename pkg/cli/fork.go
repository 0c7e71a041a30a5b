package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/ghrepo/pkg/cli/config"
	"github.com/m-mizutani/ghrepo/pkg/github"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func forkCommand() *cli.Command {
	var (
		auth     config.Auth
		tgt      target
		org      string
		attempts int64
		interval time.Duration
	)

	return &cli.Command{
		Name:  "fork",
		Usage: "Fork the repository, optionally into an organization",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "org",
				Usage:       "Target organization (fork under the authenticated user if not specified)",
				Destination: &org,
			},
			&cli.Int64Flag{
				Name:        "fork-poll-attempts",
				Usage:       "How many times to poll for the forked repository to become visible",
				Value:       10,
				Destination: &attempts,
			},
			&cli.DurationFlag{
				Name:        "fork-poll-interval",
				Usage:       "Delay between fork poll attempts",
				Value:       3 * time.Second,
				Destination: &interval,
			},
		}, tgt.Flags(), auth.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := tgt.resolve(); err != nil {
				return err
			}
			client, err := newClient(&auth, github.WithForkPolling(int(attempts), interval))
			if err != nil {
				return err
			}

			repo, err := client.GetRepository(ctx, tgt.Owner, tgt.Name)
			if err != nil {
				return err
			}

			var forked *github.Repository
			if org == "" {
				forked, err = repo.Fork(ctx)
			} else {
				forked, err = repo.ForkTo(ctx, client.Organization(org))
			}
			if err != nil {
				return err
			}

			fmt.Printf("Forked to %s\n", forked.FullName())
			return nil
		},
	}
}
