package github

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/m-mizutani/ghrepo/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// Milestone is treated as immutable once fetched; server-side edits are not
// reflected in cached instances.
type Milestone struct {
	Number       int        `json:"number"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	State        string     `json:"state"`
	OpenIssues   int        `json:"open_issues"`
	ClosedIssues int        `json:"closed_issues"`
	DueOn        *time.Time `json:"due_on"`

	t    interfaces.Transport
	repo *Repository
}

func (x *Milestone) bind(repo *Repository) *Milestone {
	x.t = repo.t
	x.repo = repo
	return x
}

// Milestones fetches all milestones in one shot, sorted by number ascending.
// Fetched instances also populate the per-repository milestone cache so that
// a later Milestone(n) lookup returns the same instance.
func (x *Repository) Milestones(ctx context.Context) ([]*Milestone, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	var fetched []*Milestone
	if err := x.t.FetchOne(ctx, x.path("milestones"), &fetched); err != nil {
		return nil, goerr.Wrap(err, "failed to list milestones", goerr.V("repo", x.FullName()))
	}

	milestones := make([]*Milestone, 0, len(fetched))
	for _, m := range fetched {
		// putIfAbsent keeps the first-seen instance canonical
		milestones = append(milestones, x.milestones.putIfAbsent(m.Number, m.bind(x)))
	}
	sort.Slice(milestones, func(i, j int) bool {
		return milestones[i].Number < milestones[j].Number
	})
	return milestones, nil
}

// Milestone fetches a milestone by number through the per-repository cache.
func (x *Repository) Milestone(ctx context.Context, number int) (*Milestone, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	return x.milestones.getOrFetch(number, func() (*Milestone, error) {
		var milestone Milestone
		if err := x.t.FetchOne(ctx, x.path("milestones", strconv.Itoa(number)), &milestone); err != nil {
			return nil, goerr.Wrap(err, "failed to get milestone",
				goerr.V("repo", x.FullName()),
				goerr.V("number", number),
			)
		}
		return milestone.bind(x), nil
	})
}

func (x *Repository) CreateMilestone(ctx context.Context, title, description string) (*Milestone, error) {
	if err := x.requireBound(); err != nil {
		return nil, err
	}

	body := map[string]string{
		"title":       title,
		"description": description,
	}
	var milestone Milestone
	if err := x.t.Send(ctx, http.MethodPost, x.path("milestones"), body, &milestone); err != nil {
		return nil, goerr.Wrap(err, "failed to create milestone",
			goerr.V("repo", x.FullName()),
			goerr.V("title", title),
		)
	}
	return milestone.bind(x), nil
}
