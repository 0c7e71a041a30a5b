package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/m-mizutani/ghrepo/pkg/domain/interfaces"
	"github.com/m-mizutani/ghrepo/pkg/domain/types"
	"github.com/m-mizutani/ghrepo/pkg/utils/logging"
	"github.com/m-mizutani/ghrepo/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const defaultBaseURL = "https://api.github.com"

// maxErrorBody limits how much of an error response is carried in the error value.
const maxErrorBody = 4 * 1024

type Client struct {
	baseURL    string
	httpClient *http.Client
	login      string
}

var _ interfaces.Transport = (*Client)(nil)

type Option func(*Client) error

// WithToken authenticates requests with a personal access token.
func WithToken(token types.GitHubToken) Option {
	return func(x *Client) error {
		if token == "" {
			return goerr.Wrap(types.ErrInvalidOption, "token is empty")
		}
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
		x.httpClient = oauth2.NewClient(context.Background(), src)
		return nil
	}
}

// WithAppInstallation authenticates requests as a GitHub App installation.
func WithAppInstallation(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey) Option {
	return func(x *Client) error {
		if appID == 0 {
			return goerr.Wrap(types.ErrInvalidOption, "appID is empty")
		}
		if pem == "" {
			return goerr.Wrap(types.ErrInvalidOption, "pem is empty")
		}
		itr, err := ghinstallation.New(http.DefaultTransport, int64(appID), int64(installID), []byte(pem))
		if err != nil {
			return goerr.Wrap(err, "failed to create installation transport")
		}
		x.httpClient = &http.Client{Transport: itr}
		return nil
	}
}

// WithHTTPClient replaces the underlying HTTP client. Mainly for testing.
func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) error {
		x.httpClient = client
		return nil
	}
}

// WithBaseURL changes the API endpoint, e.g. for GitHub Enterprise Server.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) error {
		x.baseURL = strings.TrimSuffix(baseURL, "/")
		return nil
	}
}

// WithLogin sets the authenticated user's login. Required for operations that
// check repository ownership locally.
func WithLogin(login string) Option {
	return func(x *Client) error {
		x.login = login
		return nil
	}
}

func New(options ...Option) (*Client, error) {
	client := &Client{
		baseURL: defaultBaseURL,
	}

	for _, opt := range options {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	if client.httpClient == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "authentication is not configured")
	}

	return client, nil
}

func (x *Client) Login() string {
	return x.login
}

func (x *Client) resolve(locator string) string {
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return locator
	}
	return x.baseURL + "/" + strings.TrimPrefix(locator, "/")
}

func (x *Client) do(ctx context.Context, method, rawURL string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request", goerr.V("url", rawURL))
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	reqID, ctx := logging.CtxRequestID(ctx)
	logging.From(ctx).Debug("github api request",
		slog.String("request_id", string(reqID)),
		slog.String("method", method),
		slog.String("url", rawURL),
	)

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(types.ErrTransport, "request failed",
			goerr.V("url", rawURL),
			goerr.V("cause", err.Error()),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		safe.Close(resp.Body)
		return nil, goerr.Wrap(types.ErrTransport, "unexpected status code",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(raw)),
			goerr.V("url", rawURL),
		)
	}

	return resp, nil
}

func (x *Client) FetchOne(ctx context.Context, path string, out any) error {
	resp, err := x.do(ctx, http.MethodGet, x.resolve(path), nil)
	if err != nil {
		return err
	}
	defer safe.Close(resp.Body)

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode response", goerr.V("path", path))
	}
	return nil
}

func (x *Client) FetchPage(ctx context.Context, locator string, out any) (string, error) {
	resp, err := x.do(ctx, http.MethodGet, x.resolve(locator), nil)
	if err != nil {
		return "", err
	}
	defer safe.Close(resp.Body)

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return "", goerr.Wrap(err, "failed to decode page", goerr.V("locator", locator))
	}
	return parseNextLink(resp.Header.Get("Link")), nil
}

func (x *Client) Send(ctx context.Context, method string, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to marshal request body", goerr.V("path", path))
		}
		reader = bytes.NewReader(raw)
	}

	resp, err := x.do(ctx, method, x.resolve(path), reader)
	if err != nil {
		return err
	}
	defer safe.Close(resp.Body)

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode response", goerr.V("path", path))
	}
	return nil
}

// parseNextLink extracts the rel="next" URL from a Link header per the GitHub
// pagination contract. Returns an empty string when there is no next page.
func parseNextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		section := strings.Split(part, ";")
		if len(section) < 2 {
			continue
		}
		target := strings.Trim(strings.TrimSpace(section[0]), "<>")
		for _, param := range section[1:] {
			if strings.TrimSpace(param) == `rel="next"` {
				return target
			}
		}
	}
	return ""
}
