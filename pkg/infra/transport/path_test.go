package transport

import (
	"net/url"
	"testing"

	"github.com/m-mizutani/gt"
)

func TestPath(t *testing.T) {
	gt.V(t, Path("repos", "octocat", "hello")).Equal("repos/octocat/hello")
	gt.V(t, Path("repos", "octocat", "a/b")).Equal("repos/octocat/a%2Fb")
	gt.V(t, Path("users", "hello world")).Equal("users/hello%20world")
}

func TestWithQuery(t *testing.T) {
	gt.V(t, WithQuery("repos/o/r/forks", url.Values{"org": {"myorg"}})).
		Equal("repos/o/r/forks?org=myorg")
	gt.V(t, WithQuery("repos/o/r/pulls", nil)).Equal("repos/o/r/pulls")
	gt.V(t, WithQuery("items", url.Values{"state": {"open"}, "page": {"2"}})).
		Equal("items?page=2&state=open")
}

func TestParseNextLink(t *testing.T) {
	t.Run("extracts rel next", func(t *testing.T) {
		header := `<https://api.github.com/repositories/1/commits?page=2>; rel="next", ` +
			`<https://api.github.com/repositories/1/commits?page=9>; rel="last"`
		gt.V(t, parseNextLink(header)).Equal("https://api.github.com/repositories/1/commits?page=2")
	})

	t.Run("last page has no next", func(t *testing.T) {
		header := `<https://api.github.com/repositories/1/commits?page=1>; rel="prev", ` +
			`<https://api.github.com/repositories/1/commits?page=1>; rel="first"`
		gt.V(t, parseNextLink(header)).Equal("")
	})

	t.Run("empty header", func(t *testing.T) {
		gt.V(t, parseNextLink("")).Equal("")
	})

	t.Run("malformed parts are skipped", func(t *testing.T) {
		gt.V(t, parseNextLink("nonsense")).Equal("")
		gt.V(t, parseNextLink(`<https://x.example.com>; rel="next"`)).Equal("https://x.example.com")
	})
}
