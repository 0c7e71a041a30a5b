package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ghrepo/pkg/cli/config"
	"github.com/m-mizutani/ghrepo/pkg/domain/types"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func pullsCommand() *cli.Command {
	var (
		auth  config.Auth
		tgt   target
		state string
	)

	return &cli.Command{
		Name:  "pulls",
		Usage: "List pull requests",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "state",
				Usage:       "Pull request state [open|closed]",
				Value:       "open",
				Destination: &state,
			},
		}, tgt.Flags(), auth.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := tgt.resolve(); err != nil {
				return err
			}
			client, err := newClient(&auth)
			if err != nil {
				return err
			}

			repo, err := client.GetRepository(ctx, tgt.Owner, tgt.Name)
			if err != nil {
				return err
			}

			prs, err := repo.PullRequests(ctx, types.IssueState(state))
			if err != nil {
				return err
			}
			for _, pr := range prs {
				fmt.Printf("#%d [%s] %s (@%s)\n", pr.Number, pr.State, pr.Title, pr.User.Login())
			}
			return nil
		},
	}
}
