package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/ghrepo/pkg/cli/config"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func hooksCommand() *cli.Command {
	var (
		auth config.Auth
		tgt  target
	)

	return &cli.Command{
		Name:  "hooks",
		Usage: "List configured hooks",
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

			hooks, err := repo.Hooks(ctx)
			if err != nil {
				return err
			}
			for _, h := range hooks {
				fmt.Printf("%d %s active=%v events=[%s] url=%s\n",
					h.ID, h.Name, h.Active, strings.Join(h.Events, ","), h.Config["url"])
			}
			return nil
		},
	}
}
