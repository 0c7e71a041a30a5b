package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ghrepo/pkg/cli/config"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func milestonesCommand() *cli.Command {
	var (
		auth config.Auth
		tgt  target
	)

	return &cli.Command{
		Name:  "milestones",
		Usage: "List milestones sorted by number",
		Flags: slice.Flatten(tgt.Flags(), auth.Flags()),
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

			milestones, err := repo.Milestones(ctx)
			if err != nil {
				return err
			}
			for _, m := range milestones {
				fmt.Printf("#%d [%s] %s (%d open / %d closed)\n",
					m.Number, m.State, m.Title, m.OpenIssues, m.ClosedIssues)
			}
			return nil
		},
	}
}
