package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/ghrepo/pkg/cli/config"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func commitsCommand() *cli.Command {
	var (
		auth  config.Auth
		tgt   target
		limit int64
	)

	return &cli.Command{
		Name:  "commits",
		Usage: "List commits, newest first",
		Flags: slice.Flatten([]cli.Flag{
			&cli.Int64Flag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "Maximum number of commits to print (0 for all)",
				Value:       20,
				Destination: &limit,
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

			cursor := repo.ListCommits()
			var count int64
			for {
				if limit > 0 && count >= limit {
					break
				}
				ok, err := cursor.HasNext(ctx)
				if err != nil {
					return err
				}
				if !ok {
					break
				}

				commit, err := cursor.Next(ctx)
				if err != nil {
					return err
				}
				subject, _, _ := strings.Cut(commit.Detail.Message, "\n")
				fmt.Printf("%s %s\n", commit.SHA, subject)
				count++
			}
			return nil
		},
	}
}
