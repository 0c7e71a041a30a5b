package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubToken         string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	CommitSHA           string
	BranchName          string
	HookID              int64
	IssueState          string
	RequestID           string
)

const (
	IssueStateOpen   IssueState = "open"
	IssueStateClosed IssueState = "closed"
)

// RepoID is the natural key of a repository. Two repository handles with the
// same RepoID refer to the same resource regardless of snapshot fields.
type RepoID struct {
	Owner string
	Name  string
}

func (x RepoID) String() string {
	return x.Owner + "/" + x.Name
}

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}
