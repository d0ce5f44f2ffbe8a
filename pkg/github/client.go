package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/devpulse-team/devpulse/errors"
	"github.com/devpulse-team/devpulse/pkg/config"
	"github.com/devpulse-team/devpulse/pkg/retry"
)

// Commit is a repository commit with optional file detail
type Commit struct {
	SHA     string       `json:"sha"`
	Message string       `json:"message"`
	Author  string       `json:"author"`
	Date    time.Time    `json:"date"`
	URL     string       `json:"url"`
	Branch  string       `json:"branch,omitempty"`
	Files   []CommitFile `json:"files,omitempty"`
}

// CommitFile is one changed file within a commit or pull request
type CommitFile struct {
	Filename  string `json:"filename"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Patch     string `json:"patch,omitempty"`
	Language  string `json:"language,omitempty"`
}

// PullRequest is the subset of PR data the analysis layer needs
type PullRequest struct {
	Number int          `json:"number"`
	Title  string       `json:"title"`
	Author string       `json:"author"`
	State  string       `json:"state"`
	Files  []CommitFile `json:"files,omitempty"`
}

// Repository is basic repo metadata
type Repository struct {
	FullName      string `json:"full_name"`
	Description   string `json:"description"`
	DefaultBranch string `json:"default_branch"`
	Language      string `json:"language"`
	OpenIssues    int    `json:"open_issues_count"`
}

// Client is a read-only GitHub REST client scoped to one repository
type Client struct {
	baseURL string
	owner   string
	repo    string
	auth    tokenSource
	client  *http.Client
}

// NewClient creates a client from config, preferring a PAT and falling back
// to GitHub App installation-token auth when an app key pair is supplied.
func NewClient(cfg *config.GitHubConfig) (*Client, error) {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	var auth tokenSource
	switch {
	case cfg.Token != "":
		auth = staticToken(cfg.Token)
	case cfg.AppID != "" && cfg.AppPrivateKey != "" && cfg.InstallationID != "":
		source, err := newAppTokenSource(cfg, httpClient)
		if err != nil {
			return nil, err
		}
		auth = source
	default:
		return nil, apperrors.ErrConfigMissing("GITHUB_TOKEN or GitHub App credentials")
	}

	return &Client{
		baseURL: cfg.BaseURL,
		owner:   cfg.Owner,
		repo:    cfg.Repo,
		auth:    auth,
		client:  httpClient,
	}, nil
}

// ListRecentCommits returns the most recent commits on the default branch
func (c *Client) ListRecentCommits(ctx context.Context, count int) ([]Commit, error) {
	if count <= 0 {
		count = 10
	}

	var raw []struct {
		SHA    string `json:"sha"`
		Commit struct {
			Message string `json:"message"`
			Author  struct {
				Name string    `json:"name"`
				Date time.Time `json:"date"`
			} `json:"author"`
		} `json:"commit"`
		HTMLURL string `json:"html_url"`
	}

	path := fmt.Sprintf("/repos/%s/%s/commits?per_page=%d", c.owner, c.repo, count)
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, apperrors.ErrGitHubRequestFailed("list commits", err)
	}

	commits := make([]Commit, 0, len(raw))
	for _, r := range raw {
		commits = append(commits, Commit{
			SHA:     r.SHA,
			Message: r.Commit.Message,
			Author:  r.Commit.Author.Name,
			Date:    r.Commit.Author.Date,
			URL:     r.HTMLURL,
		})
	}
	return commits, nil
}

// GetCommit returns one commit with its full file diffs. Files in languages
// outside the review allow-list are excluded.
func (c *Client) GetCommit(ctx context.Context, sha string) (*Commit, error) {
	var raw struct {
		SHA    string `json:"sha"`
		Commit struct {
			Message string `json:"message"`
			Author  struct {
				Name string    `json:"name"`
				Date time.Time `json:"date"`
			} `json:"author"`
		} `json:"commit"`
		HTMLURL string `json:"html_url"`
		Files   []struct {
			Filename  string `json:"filename"`
			Additions int    `json:"additions"`
			Deletions int    `json:"deletions"`
			Patch     string `json:"patch"`
		} `json:"files"`
	}

	path := fmt.Sprintf("/repos/%s/%s/commits/%s", c.owner, c.repo, url.PathEscape(sha))
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, apperrors.ErrGitHubRequestFailed("get commit", err)
	}

	commit := &Commit{
		SHA:     raw.SHA,
		Message: raw.Commit.Message,
		Author:  raw.Commit.Author.Name,
		Date:    raw.Commit.Author.Date,
		URL:     raw.HTMLURL,
	}
	for _, f := range raw.Files {
		lang := LanguageForFile(f.Filename)
		if !IsReviewableLanguage(lang) {
			continue
		}
		commit.Files = append(commit.Files, CommitFile{
			Filename:  f.Filename,
			Additions: f.Additions,
			Deletions: f.Deletions,
			Patch:     f.Patch,
			Language:  lang,
		})
	}
	return commit, nil
}

// ListRecentPullRequests returns the most recently updated pull requests,
// open and closed. These stand in for the period's code reviews.
func (c *Client) ListRecentPullRequests(ctx context.Context, count int) ([]PullRequest, error) {
	if count <= 0 {
		count = 10
	}

	var raw []struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
		State  string `json:"state"`
		User   struct {
			Login string `json:"login"`
		} `json:"user"`
	}

	path := fmt.Sprintf("/repos/%s/%s/pulls?state=all&sort=updated&direction=desc&per_page=%d",
		c.owner, c.repo, count)
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, apperrors.ErrGitHubRequestFailed("list pull requests", err)
	}

	prs := make([]PullRequest, 0, len(raw))
	for _, r := range raw {
		prs = append(prs, PullRequest{
			Number: r.Number,
			Title:  r.Title,
			Author: r.User.Login,
			State:  r.State,
		})
	}
	return prs, nil
}

// GetPullRequest returns one pull request with its reviewable files
func (c *Client) GetPullRequest(ctx context.Context, number int) (*PullRequest, error) {
	var rawPR struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
		State  string `json:"state"`
		User   struct {
			Login string `json:"login"`
		} `json:"user"`
	}

	path := fmt.Sprintf("/repos/%s/%s/pulls/%d", c.owner, c.repo, number)
	if err := c.get(ctx, path, &rawPR); err != nil {
		return nil, apperrors.ErrGitHubRequestFailed("get pull request", err)
	}

	var rawFiles []struct {
		Filename  string `json:"filename"`
		Additions int    `json:"additions"`
		Deletions int    `json:"deletions"`
		Patch     string `json:"patch"`
	}
	if err := c.get(ctx, path+"/files", &rawFiles); err != nil {
		return nil, apperrors.ErrGitHubRequestFailed("get pull request files", err)
	}

	pr := &PullRequest{
		Number: rawPR.Number,
		Title:  rawPR.Title,
		Author: rawPR.User.Login,
		State:  rawPR.State,
	}
	for _, f := range rawFiles {
		lang := LanguageForFile(f.Filename)
		if !IsReviewableLanguage(lang) {
			continue
		}
		pr.Files = append(pr.Files, CommitFile{
			Filename:  f.Filename,
			Additions: f.Additions,
			Deletions: f.Deletions,
			Patch:     f.Patch,
			Language:  lang,
		})
	}
	return pr, nil
}

// GetRepository returns repository metadata
func (c *Client) GetRepository(ctx context.Context) (*Repository, error) {
	var repo Repository
	path := fmt.Sprintf("/repos/%s/%s", c.owner, c.repo)
	if err := c.get(ctx, path, &repo); err != nil {
		return nil, apperrors.ErrGitHubRequestFailed("get repository", err)
	}
	return &repo, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return retry.Do(ctx, func() error {
		token, err := c.auth.token(ctx)
		if err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/vnd.github+json")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return fmt.Errorf("github returned status %d for %s", resp.StatusCode, path)
		}

		return json.NewDecoder(resp.Body).Decode(out)
	})
}
