package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apperrors "github.com/devpulse-team/devpulse/errors"
	"github.com/devpulse-team/devpulse/internal/domain/entities"
	"github.com/devpulse-team/devpulse/pkg/config"
	"github.com/devpulse-team/devpulse/pkg/retry"
)

// Ticket is the subset of issue data the analysis layer needs
type Ticket struct {
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status,omitempty"`
	Priority    string    `json:"priority,omitempty"`
	Assignee    string    `json:"assignee,omitempty"`
	Created     time.Time `json:"created,omitempty"`
}

// Client is a Jira REST client scoped to one project. Priority and issue-type
// string→ID maps come from config because they are instance-specific.
type Client struct {
	baseURL      string
	email        string
	apiToken     string
	projectKey   string
	priorityIDs  map[string]string
	issueTypeIDs map[string]string
	limiter      *rate.Limiter
	client       *http.Client
	logger       *zap.Logger
}

// NewClient creates a Jira client from config
func NewClient(cfg *config.JiraConfig, logger *zap.Logger) *Client {
	perSec := cfg.CreateRatePerSec
	if perSec <= 0 {
		perSec = 2
	}

	return &Client{
		baseURL:      cfg.BaseURL,
		email:        cfg.Email,
		apiToken:     cfg.APIToken,
		projectKey:   cfg.ProjectKey,
		priorityIDs:  cfg.PriorityIDs,
		issueTypeIDs: cfg.IssueTypeIDs,
		limiter:      rate.NewLimiter(rate.Limit(perSec), 1),
		client:       &http.Client{Timeout: 30 * time.Second},
		logger:       logger,
	}
}

// CreateTicket creates one issue and returns its key and browse URL
func (c *Client) CreateTicket(ctx context.Context, req entities.TicketCreationRequest) (*Ticket, error) {
	fields := map[string]interface{}{
		"project": map[string]string{"key": c.projectKey},
		"summary": req.Title,
		"description": map[string]interface{}{
			"type":    "doc",
			"version": 1,
			"content": []map[string]interface{}{
				{
					"type":    "paragraph",
					"content": []map[string]string{{"type": "text", "text": descriptionOrDefault(req)}},
				},
			},
		},
	}
	if id, ok := c.issueTypeIDs[req.IssueType]; ok {
		fields["issuetype"] = map[string]string{"id": id}
	} else {
		fields["issuetype"] = map[string]string{"name": req.IssueType}
	}
	if id, ok := c.priorityIDs[req.Priority]; ok {
		fields["priority"] = map[string]string{"id": id}
	}
	if len(req.Labels) > 0 {
		fields["labels"] = req.Labels
	}

	var created struct {
		Key string `json:"key"`
	}
	if err := c.do(ctx, http.MethodPost, "/rest/api/3/issue", map[string]interface{}{"fields": fields}, &created); err != nil {
		return nil, apperrors.ErrJiraRequestFailed("create ticket", err)
	}

	return &Ticket{
		Key:     created.Key,
		URL:     fmt.Sprintf("%s/browse/%s", c.baseURL, created.Key),
		Summary: req.Title,
	}, nil
}

// CreateTicketsFromActionItems converts action items into tickets one by one.
// Creation is throttled with a rate limiter to respect the tracker's API
// limits; one failed item does not stop the rest.
func (c *Client) CreateTicketsFromActionItems(ctx context.Context, items []*entities.ActionItem) ([]*Ticket, error) {
	tickets := make([]*Ticket, 0, len(items))

	for _, item := range items {
		if err := c.limiter.Wait(ctx); err != nil {
			return tickets, apperrors.ErrJiraRequestFailed("rate limit wait", err)
		}

		req := entities.TicketCreationRequest{}.FromActionItem(item)
		ticket, err := c.CreateTicket(ctx, req)
		if err != nil {
			if c.logger != nil {
				c.logger.Warn("⚠️ Failed to create ticket for action item",
					zap.String("description", item.Description),
					zap.Error(err),
				)
			}
			continue
		}

		if c.logger != nil {
			c.logger.Info("✅ Ticket created",
				zap.String("key", ticket.Key),
				zap.String("url", ticket.URL),
			)
		}
		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

// AddComment appends a comment to an existing ticket
func (c *Client) AddComment(ctx context.Context, key, comment string) error {
	body := map[string]interface{}{
		"body": map[string]interface{}{
			"type":    "doc",
			"version": 1,
			"content": []map[string]interface{}{
				{
					"type":    "paragraph",
					"content": []map[string]string{{"type": "text", "text": comment}},
				},
			},
		},
	}

	path := fmt.Sprintf("/rest/api/3/issue/%s/comment", url.PathEscape(key))
	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return apperrors.ErrJiraRequestFailed("add comment", err)
	}
	return nil
}

// UpdateTicket updates the summary of an existing ticket
func (c *Client) UpdateTicket(ctx context.Context, key, summary string) error {
	body := map[string]interface{}{
		"fields": map[string]string{"summary": summary},
	}

	path := fmt.Sprintf("/rest/api/3/issue/%s", url.PathEscape(key))
	if err := c.do(ctx, http.MethodPut, path, body, nil); err != nil {
		return apperrors.ErrJiraRequestFailed("update ticket", err)
	}
	return nil
}

// GetTicket fetches one ticket by key
func (c *Client) GetTicket(ctx context.Context, key string) (*Ticket, error) {
	var raw issueResponse
	path := fmt.Sprintf("/rest/api/3/issue/%s", url.PathEscape(key))
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, apperrors.ErrJiraRequestFailed("get ticket", err)
	}

	ticket := raw.toTicket(c.baseURL)
	return &ticket, nil
}

// SearchTickets searches project tickets matching a keyword. An empty
// keyword lists the most recently created tickets.
func (c *Client) SearchTickets(ctx context.Context, keyword string, limit int) ([]Ticket, error) {
	if limit <= 0 {
		limit = 20
	}

	jql := fmt.Sprintf(`project = %q ORDER BY created DESC`, c.projectKey)
	if keyword != "" {
		jql = fmt.Sprintf(`project = %q AND text ~ %q ORDER BY created DESC`, c.projectKey, keyword)
	}
	path := fmt.Sprintf("/rest/api/3/search?jql=%s&maxResults=%d", url.QueryEscape(jql), limit)

	var raw struct {
		Issues []issueResponse `json:"issues"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, apperrors.ErrJiraRequestFailed("search tickets", err)
	}

	tickets := make([]Ticket, 0, len(raw.Issues))
	for _, issue := range raw.Issues {
		tickets = append(tickets, issue.toTicket(c.baseURL))
	}
	return tickets, nil
}

type issueResponse struct {
	Key    string `json:"key"`
	Fields struct {
		Summary string `json:"summary"`
		Status  struct {
			Name string `json:"name"`
		} `json:"status"`
		Priority struct {
			Name string `json:"name"`
		} `json:"priority"`
		Assignee struct {
			DisplayName string `json:"displayName"`
		} `json:"assignee"`
		Created string `json:"created"`
	} `json:"fields"`
}

func (i issueResponse) toTicket(baseURL string) Ticket {
	created, _ := time.Parse("2006-01-02T15:04:05.000-0700", i.Fields.Created)
	return Ticket{
		Key:      i.Key,
		URL:      fmt.Sprintf("%s/browse/%s", baseURL, i.Key),
		Summary:  i.Fields.Summary,
		Status:   i.Fields.Status.Name,
		Priority: i.Fields.Priority.Name,
		Assignee: i.Fields.Assignee.DisplayName,
		Created:  created,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	return retry.Do(ctx, func() error {
		var reader *bytes.Reader
		if body != nil {
			b, err := json.Marshal(body)
			if err != nil {
				return err
			}
			reader = bytes.NewReader(b)
		} else {
			reader = bytes.NewReader(nil)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return err
		}
		req.SetBasicAuth(c.email, c.apiToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return fmt.Errorf("jira returned status %d for %s %s", resp.StatusCode, method, path)
		}

		if out == nil {
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	})
}

func descriptionOrDefault(req entities.TicketCreationRequest) string {
	if req.Description != "" {
		return req.Description
	}
	return req.Title
}
