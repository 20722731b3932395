package gateways

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/ochairo/pyapp-maint/internal/domain/interfaces"
	"github.com/ochairo/pyapp-maint/internal/domain/interfaces/gateways"
	"github.com/ochairo/pyapp-maint/internal/domain/services"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	defaultAPIURL     = "https://api.github.com"
	defaultAPIVersion = "2022-11-28"
	defaultTimeout    = 60 * time.Second
	userAgent         = "pyapp-maint/1.0"

	// rateLimitWarnThreshold is the remaining quota below which a warning is logged
	rateLimitWarnThreshold = 10
)

// HTTPGitHubGateway implements ReleaseGateway against the GitHub REST API
type HTTPGitHubGateway struct {
	client     *http.Client
	apiURL     string
	apiVersion string
	timeout    time.Duration
	logger     interfaces.Logger
}

// GatewayOption customizes an HTTPGitHubGateway
type GatewayOption func(*HTTPGitHubGateway)

// WithAPIURL points the gateway at another API root (e.g. a test server)
func WithAPIURL(apiURL string) GatewayOption {
	return func(g *HTTPGitHubGateway) {
		g.apiURL = strings.TrimSuffix(apiURL, "/")
	}
}

// WithAPIVersion sets the X-GitHub-Api-Version header value
func WithAPIVersion(version string) GatewayOption {
	return func(g *HTTPGitHubGateway) {
		g.apiVersion = version
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) GatewayOption {
	return func(g *HTTPGitHubGateway) {
		g.timeout = timeout
	}
}

// WithLogger sets the logger used for rate limit warnings
func WithLogger(logger interfaces.Logger) GatewayOption {
	return func(g *HTTPGitHubGateway) {
		g.logger = logger
	}
}

// NewHTTPGitHubGateway creates a GitHub gateway authenticating with a bearer token.
// An empty token is a configuration error.
func NewHTTPGitHubGateway(token string, opts ...GatewayOption) (*HTTPGitHubGateway, error) {
	if token == "" {
		return nil, services.ErrConfig.New("GitHub token not set")
	}

	g := &HTTPGitHubGateway{
		apiURL:     defaultAPIURL,
		apiVersion: defaultAPIVersion,
		timeout:    defaultTimeout,
		logger:     &interfaces.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(g)
	}

	base := &http.Client{Timeout: g.timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	g.client = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	g.client.Timeout = g.timeout

	return g, nil
}

// githubRelease represents the GitHub API release format
type githubRelease struct {
	ID         int64         `json:"id"`
	TagName    string        `json:"tag_name"`
	Name       string        `json:"name"`
	Draft      bool          `json:"draft"`
	Prerelease bool          `json:"prerelease"`
	Assets     []githubAsset `json:"assets"`
}

// githubAsset represents a GitHub release asset
type githubAsset struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Size               int64  `json:"size"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// ListReleases returns one page of releases with their assets
func (g *HTTPGitHubGateway) ListReleases(ctx context.Context, owner, repo string, page int) ([]*gateways.GitHubRelease, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases?%s", g.apiURL, url.PathEscape(owner), url.PathEscape(repo),
		url.Values{"page": {strconv.Itoa(page)}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", g.apiVersion)
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list releases")
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if err := g.checkRateLimit(resp); err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Errorf("failed to list releases: status %d (failed to read response)", resp.StatusCode)
		}
		return nil, errors.Errorf("failed to list releases: status %d: %s", resp.StatusCode, strings.TrimSpace(string(bodyBytes)))
	}

	var apiReleases []githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&apiReleases); err != nil {
		return nil, errors.Wrap(err, "failed to decode releases")
	}

	releases := make([]*gateways.GitHubRelease, len(apiReleases))
	for i, r := range apiReleases {
		assets := make([]*gateways.GitHubAsset, len(r.Assets))
		for j, a := range r.Assets {
			assets[j] = &gateways.GitHubAsset{
				ID:                 a.ID,
				Name:               a.Name,
				Size:               a.Size,
				BrowserDownloadURL: a.BrowserDownloadURL,
			}
		}
		releases[i] = &gateways.GitHubRelease{
			ID:         r.ID,
			TagName:    r.TagName,
			Name:       r.Name,
			Draft:      r.Draft,
			Prerelease: r.Prerelease,
			Assets:     assets,
		}
	}

	g.logger.Debug("Listed releases",
		interfaces.F("page", page),
		interfaces.F("releases", len(releases)))

	return releases, nil
}

// checkRateLimit checks GitHub API rate limit headers and returns error if exhausted
func (g *HTTPGitHubGateway) checkRateLimit(resp *http.Response) error {
	remaining := resp.Header.Get("X-RateLimit-Remaining")
	if remaining == "" {
		return nil
	}

	remainingInt, err := strconv.Atoi(remaining)
	if err != nil {
		return nil
	}

	if remainingInt == 0 && resp.StatusCode != http.StatusOK {
		resetTime := resp.Header.Get("X-RateLimit-Reset")
		if resetUnix, err := strconv.ParseInt(resetTime, 10, 64); err == nil {
			resetAt := time.Unix(resetUnix, 0).UTC()
			return errors.Errorf("GitHub API rate limit exceeded (0 remaining), resets at %s", resetAt.Format(time.RFC3339))
		}
		return errors.New("GitHub API rate limit exceeded (0 remaining)")
	}

	if remainingInt <= rateLimitWarnThreshold {
		g.logger.Warn("GitHub API rate limit low", interfaces.F("remaining", remainingInt))
	}

	return nil
}
