// Package registry looks up starter-template repositories before they are cloned.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.github.com"

// Repo describes a starter-template repository.
type Repo struct {
	// FullName is the owner/repo slug.
	FullName string `json:"full_name"`
	// DefaultBranch is the branch a clone will check out.
	DefaultBranch string `json:"default_branch"`
	// CloneURL is the HTTPS clone URL.
	CloneURL string `json:"clone_url"`
}

// NotFoundError indicates the starter repository does not exist or is not visible.
type NotFoundError struct {
	// Slug is the owner/repo that was looked up.
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("starter repository %q not found", e.Slug)
}

// IsNotFound reports whether err indicates a missing starter repository.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// Client queries the template registry.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient constructs a registry Client. A nil httpClient gets a default
// with a short timeout; the lookup is advisory and must not stall the wizard.
func NewClient(logger *slog.Logger, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: defaultBaseURL, http: httpClient, logger: logger}
}

// WithBaseURL overrides the registry endpoint, for tests and mirrors.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// Lookup fetches repository metadata for an owner/repo slug.
func (c *Client) Lookup(ctx context.Context, slug string) (*Repo, error) {
	slug = strings.TrimSpace(slug)
	parts := strings.Split(slug, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid repository slug %q, expected owner/repo", slug)
	}

	url := fmt.Sprintf("%s/repos/%s", c.baseURL, slug)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build registry request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	if c.logger != nil {
		c.logger.Debug("registry lookup", "slug", slug, "url", url)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry lookup %q: %w", slug, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, &NotFoundError{Slug: slug}
	default:
		return nil, fmt.Errorf("registry lookup %q: unexpected status %s", slug, resp.Status)
	}

	var repo Repo
	if err := json.NewDecoder(resp.Body).Decode(&repo); err != nil {
		return nil, fmt.Errorf("decode registry response for %q: %w", slug, err)
	}
	return &repo, nil
}
