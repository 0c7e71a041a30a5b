package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ghrepo/pkg/cli/config"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func branchesCommand() *cli.Command {
	var (
		auth config.Auth
		tgt  target
	)

	return &cli.Command{
		Name:  "branches",
		Usage: "List branches sorted by name",
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

			branches, err := repo.Branches(ctx)
			if err != nil {
				return err
			}
			for _, b := range branches {
				fmt.Printf("%s %s\n", b.Commit.SHA, b.Name)
			}
			return nil
		},
	}
}
