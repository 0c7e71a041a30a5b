package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ghrepo/pkg/cli/config"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func infoCommand() *cli.Command {
	var (
		auth config.Auth
		tgt  target
	)

	return &cli.Command{
		Name:  "info",
		Usage: "Show the repository metadata snapshot",
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

			fmt.Printf("Repository:     %s\n", repo.FullName())
			fmt.Printf("Description:    %s\n", repo.Description)
			fmt.Printf("Homepage:       %s\n", repo.Homepage)
			fmt.Printf("URL:            %s\n", repo.HTMLURL)
			fmt.Printf("Clone (git):    %s\n", repo.GitTransportURL())
			fmt.Printf("Clone (https):  %s\n", repo.HTTPTransportURL())
			fmt.Printf("Language:       %s\n", repo.Language)
			fmt.Printf("Default branch: %s\n", repo.DefaultBranch)
			fmt.Printf("Private:        %v\n", repo.Private)
			fmt.Printf("Fork:           %v\n", repo.IsFork)
			fmt.Printf("Watchers:       %d\n", repo.Watchers)
			fmt.Printf("Forks:          %d\n", repo.Forks)
			fmt.Printf("Open issues:    %d\n", repo.OpenIssues)
			fmt.Printf("Size:           %d\n", repo.Size)
			fmt.Printf("Created at:     %s\n", repo.CreatedAt)
			if repo.PushedAt != nil {
				fmt.Printf("Pushed at:      %s\n", repo.PushedAt)
			}
			return nil
		},
	}
}
