package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/m-mizutani/ghrepo/pkg/domain/interfaces"
	"github.com/m-mizutani/ghrepo/pkg/domain/types"
	"github.com/m-mizutani/ghrepo/pkg/infra/transport"
	"github.com/m-mizutani/ghrepo/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Repository mirrors one remote repository. The scalar fields are a snapshot
// taken when the repository was fetched; mutations do not refresh them, the
// caller must re-fetch to observe server-side changes.
type Repository struct {
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Homepage      string      `json:"homepage"`
	HTMLURL       string      `json:"html_url"`
	APIURL        string      `json:"url"`
	Language      string      `json:"language"`
	HasIssues     bool        `json:"has_issues"`
	HasWiki       bool        `json:"has_wiki"`
	HasDownloads  bool        `json:"has_downloads"`
	IsFork        bool        `json:"fork"`
	Private       bool        `json:"private"`
	Watchers      int         `json:"watchers"`
	Forks         int         `json:"forks"`
	OpenIssues    int         `json:"open_issues"`
	Size          int         `json:"size"`
	DefaultBranch string      `json:"default_branch"`
	CreatedAt     time.Time   `json:"created_at"`
	PushedAt      *time.Time  `json:"pushed_at"`
	Owner         *UserRef    `json:"owner"`
	Permissions   Permissions `json:"permissions"`

	t          interfaces.Transport
	client     *Client
	commits    *keyedCache[types.CommitSHA, *Commit]
	milestones *keyedCache[int, *Milestone]
}

type Permissions struct {
	Pull  bool `json:"pull"`
	Push  bool `json:"push"`
	Admin bool `json:"admin"`
}

// bind attaches the owning context. Identity-preserving and idempotent for
// the same client; caches survive re-binding.
func (x *Repository) bind(client *Client) *Repository {
	x.t = client.t
	x.client = client
	if x.Owner != nil {
		x.Owner.bind(client.t)
	}
	if x.commits == nil {
		x.commits = newKeyedCache[types.CommitSHA, *Commit]()
	}
	if x.milestones == nil {
		x.milestones = newKeyedCache[int, *Milestone]()
	}
	return x
}

func (x *Repository) requireBound() error {
	if x.t == nil || x.client == nil {
		return goerr.Wrap(types.ErrNotBound, "repository is not bound to a client", goerr.V("repo", x.Name))
	}
	return nil
}

// ID returns the natural key of this repository. Equality and map keying use
// only this pair, never the snapshot fields.
func (x *Repository) ID() types.RepoID {
	return types.RepoID{Owner: x.OwnerName(), Name: x.Name}
}

func (x *Repository) OwnerName() string {
	if x.Owner == nil {
		return ""
	}
	return x.Owner.Login()
}

func (x *Repository) FullName() string {
	return x.OwnerName() + "/" + x.Name
}

func (x *Repository) Equal(other *Repository) bool {
	return other != nil && x.ID() == other.ID()
}

func (x *Repository) String() string {
	return "Repository:" + x.OwnerName() + ":" + x.Name
}

// GitTransportURL returns the read-only git:// URL of this repository.
func (x *Repository) GitTransportURL() string {
	return "git://github.com/" + x.FullName() + ".git"
}

// HTTPTransportURL returns the HTTPS clone URL of this repository.
func (x *Repository) HTTPTransportURL() string {
	return "https://github.com/" + x.FullName() + ".git"
}

func (x *Repository) HasPullAccess() bool  { return x.Permissions.Pull }
func (x *Repository) HasPushAccess() bool  { return x.Permissions.Push }
func (x *Repository) HasAdminAccess() bool { return x.Permissions.Admin }

func (x *Repository) path(parts ...string) string {
	return transport.Path(append([]string{"repos", x.OwnerName(), x.Name}, parts...)...)
}

// verifyMine checks locally that the authenticated identity owns this
// repository, so an unauthorized mutation fails before any round-trip.
func (x *Repository) verifyMine() error {
	login := x.t.Login()
	if login == "" || login != x.OwnerName() {
		return goerr.Wrap(types.ErrNotOwner, "repository is owned by someone else",
			goerr.V("owner", x.OwnerName()),
			goerr.V("login", login),
		)
	}
	return nil
}

// edit sends a single-field PATCH. The current name is always included, the
// API requires it even when it does not change.
func (x *Repository) edit(ctx context.Context, key string, value any) error {
	if err := x.requireBound(); err != nil {
		return err
	}

	body := map[string]any{"name": x.Name}
	body[key] = value
	if err := x.t.Send(ctx, http.MethodPatch, x.path(), body, nil); err != nil {
		return goerr.Wrap(err, "failed to edit repository",
			goerr.V("repo", x.FullName()),
			goerr.V("key", key),
		)
	}
	return nil
}

// RenameTo renames this repository. The local snapshot keeps the old name;
// re-fetch to get an updated handle.
func (x *Repository) RenameTo(ctx context.Context, name string) error {
	return x.edit(ctx, "name", name)
}

func (x *Repository) SetDescription(ctx context.Context, value string) error {
	return x.edit(ctx, "description", value)
}

func (x *Repository) SetHomepage(ctx context.Context, value string) error {
	return x.edit(ctx, "homepage", value)
}

// EnableIssueTracker enables or disables the issue tracker.
func (x *Repository) EnableIssueTracker(ctx context.Context, v bool) error {
	return x.edit(ctx, "has_issues", v)
}

func (x *Repository) EnableWiki(ctx context.Context, v bool) error {
	return x.edit(ctx, "has_wiki", v)
}

func (x *Repository) EnableDownloads(ctx context.Context, v bool) error {
	return x.edit(ctx, "has_downloads", v)
}

// Delete deletes this repository on the server. The local handle becomes
// meaningless afterwards.
func (x *Repository) Delete(ctx context.Context) error {
	if err := x.requireBound(); err != nil {
		return err
	}
	if err := x.t.Send(ctx, http.MethodDelete, x.path(), nil, nil); err != nil {
		return goerr.Wrap(err, "failed to delete repository", goerr.V("repo", x.FullName()))
	}
	return nil
}

// Fork forks this repository under the authenticated user.
func (x *Repository) Fork(ctx context.Context) (*Repository, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	var forked Repository
	if err := x.t.Send(ctx, http.MethodPost, x.path("forks"), nil, &forked); err != nil {
		return nil, goerr.Wrap(err, "failed to fork repository", goerr.V("repo", x.FullName()))
	}
	return forked.bind(x.client), nil
}

// ForkTo forks this repository into an organization. Forking is asynchronous
// on the server side, so the new repository is polled by name until it
// becomes visible, bounded by the client's fork polling settings.
func (x *Repository) ForkTo(ctx context.Context, org *Organization) (*Repository, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	path := transport.WithQuery(x.path("forks"), url.Values{"org": {org.Login()}})
	if err := x.t.Send(ctx, http.MethodPost, path, nil, nil); err != nil {
		return nil, goerr.Wrap(err, "failed to request fork",
			goerr.V("repo", x.FullName()),
			goerr.V("org", org.Login()),
		)
	}

	for i := 0; i < x.client.forkAttempts; i++ {
		if i > 0 {
			if err := x.client.sleep(ctx, x.client.forkInterval); err != nil {
				return nil, err
			}
		}

		forked, err := org.Repository(ctx, x.Name)
		if err == nil {
			return forked, nil
		}
		if !errors.Is(err, types.ErrTransport) {
			return nil, err
		}
		logging.From(ctx).Debug("forked repository is not visible yet",
			slog.String("repo", x.FullName()),
			slog.String("org", org.Login()),
			slog.Int("attempt", i+1),
		)
	}

	return nil, goerr.Wrap(types.ErrForkNotVisible, "fork did not become visible within the poll budget",
		goerr.V("owner", x.OwnerName()),
		goerr.V("repo", x.Name),
		goerr.V("org", org.Login()),
		goerr.V("attempts", x.client.forkAttempts),
	)
}

// Collaborators lists the collaborators on this repository. The result
// always appears to include the owner.
func (x *Repository) Collaborators(ctx context.Context) ([]*User, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	var users []*User
	if err := x.t.FetchOne(ctx, x.path("collaborators"), &users); err != nil {
		return nil, goerr.Wrap(err, "failed to list collaborators", goerr.V("repo", x.FullName()))
	}
	for _, u := range users {
		u.bind(x.t)
	}
	return users, nil
}

// CollaboratorNames returns only the collaborator logins, sorted. Cheaper
// than Collaborators when the full user records are not needed.
func (x *Repository) CollaboratorNames(ctx context.Context) ([]string, error) {
	users, err := x.Collaborators(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Login)
	}
	sort.Strings(names)
	return names, nil
}

func (x *Repository) AddCollaborators(ctx context.Context, logins ...string) error {
	return x.modifyCollaborators(ctx, http.MethodPut, logins)
}

func (x *Repository) RemoveCollaborators(ctx context.Context, logins ...string) error {
	return x.modifyCollaborators(ctx, http.MethodDelete, logins)
}

func (x *Repository) modifyCollaborators(ctx context.Context, method string, logins []string) error {
	if err := x.requireBound(); err != nil {
		return err
	}
	if err := x.verifyMine(); err != nil {
		return err
	}

	for _, login := range logins {
		if err := x.t.Send(ctx, method, x.path("collaborators", login), nil, nil); err != nil {
			return goerr.Wrap(err, "failed to modify collaborator",
				goerr.V("repo", x.FullName()),
				goerr.V("collaborator", login),
			)
		}
	}
	return nil
}

// Teams lists the teams of the owning organization that have access to this
// repository.
func (x *Repository) Teams(ctx context.Context) ([]*Team, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	var teams []*Team
	if err := x.t.FetchOne(ctx, x.path("teams"), &teams); err != nil {
		return nil, goerr.Wrap(err, "failed to list teams", goerr.V("repo", x.FullName()))
	}
	return teams, nil
}

type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
