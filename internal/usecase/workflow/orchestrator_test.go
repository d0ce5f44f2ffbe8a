package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
	"github.com/devpulse-team/devpulse/pkg/github"
	"github.com/devpulse-team/devpulse/pkg/jira"
)

func meetingResult(title, summary string) *entities.MeetingAnalysisResult {
	transcript := entities.NewTranscript(title, "Alice: content")
	result := entities.NewMeetingAnalysisResult(transcript)
	result.Summary = summary
	result.ConfidenceScore = 80
	return result
}

func TestCommitEntity(t *testing.T) {
	commit := github.Commit{
		SHA:     "abc123",
		Message: "fix payment timeout\n\nlonger body text",
		Author:  "alice",
		Date:    time.Now(),
	}

	e := CommitEntity(commit)

	assert.Equal(t, "commit-abc123", e.ID)
	assert.Equal(t, entities.EntityTypeCodeReview, e.EntityType)
	assert.Equal(t, "fix payment timeout", e.Title)
	assert.Equal(t, "alice", e.Owner)
}

func TestMeetingEntity(t *testing.T) {
	result := meetingResult("sprint review", "we discussed the payment timeout")
	result.KeyTopics = []string{"payment timeout"}
	result.Participants = []*entities.Participant{
		{Name: "Bob"},
		{Name: "Alice", IsOrganizer: true},
	}

	e := MeetingEntity(result)

	assert.Equal(t, entities.EntityTypeMeeting, e.EntityType)
	assert.Equal(t, "sprint review", e.Title)
	assert.Equal(t, "Alice", e.Owner)
	assert.Contains(t, e.Description, "payment timeout")
	assert.InDelta(t, 0.8, e.RelevanceScore, 1e-9)
}

func TestTicketEntity(t *testing.T) {
	ticket := jira.Ticket{
		Key:      "DEV-42",
		Summary:  "payment timeout follow-up",
		Status:   "To Do",
		Assignee: "alice",
	}

	e := TicketEntity(ticket)

	assert.Equal(t, "ticket-DEV-42", e.ID)
	assert.Equal(t, entities.EntityTypeJiraTicket, e.EntityType)
	assert.Equal(t, "alice", e.Owner)
}

func TestBuildSummary(t *testing.T) {
	o := NewOrchestrator(zap.NewNop())

	m := meetingResult("planning", "planned the payment timeout fix")
	m.ActionItems = []*entities.ActionItem{
		entities.NewActionItem("fix payment timeout"),
	}
	completed := entities.NewActionItem("write the postmortem")
	completed.Status = entities.ActionItemStatusCompleted
	m.ActionItems = append(m.ActionItems, completed)

	input := PeriodInput{
		PeriodStart: time.Now().AddDate(0, 0, -14),
		PeriodEnd:   time.Now(),
		Commits: []github.Commit{
			{SHA: "abc", Message: "fix payment timeout handling", Author: "alice", Date: time.Now()},
		},
		Meetings: []*entities.MeetingAnalysisResult{m},
		Tickets: []jira.Ticket{
			{Key: "DEV-1", Summary: "payment timeout fix", Created: time.Now()},
		},
	}

	summary, correlation := o.BuildSummary(context.Background(), input)

	require.NotNil(t, summary)
	require.NotNil(t, correlation)

	assert.Equal(t, 1, summary.Metrics.TotalCommits)
	assert.Equal(t, 1, summary.Metrics.TotalMeetings)
	assert.Equal(t, 1, summary.Metrics.TotalTickets)
	assert.Equal(t, 2, summary.Metrics.ActionItemsCreated)
	assert.Equal(t, 1, summary.Metrics.ActionItemsCompleted)

	assert.Len(t, correlation.Entities, 3)
	assert.NotEmpty(t, correlation.Connections)
	assert.GreaterOrEqual(t, summary.OverallHealthScore, 50)
}

func TestBuildSummaryCountsReviewsFromPullRequests(t *testing.T) {
	o := NewOrchestrator(zap.NewNop())

	commits := make([]github.Commit, 12)
	for i := range commits {
		commits[i] = github.Commit{SHA: string(rune('a' + i)), Message: "change", Date: time.Now()}
	}

	input := PeriodInput{
		PeriodStart: time.Now().AddDate(0, 0, -14),
		PeriodEnd:   time.Now(),
		Commits:     commits,
		PullRequests: []github.PullRequest{
			{Number: 1, Title: "refactor parser", State: "closed"},
			{Number: 2, Title: "add retry", State: "open"},
		},
	}

	summary, _ := o.BuildSummary(context.Background(), input)

	assert.Equal(t, 12, summary.Metrics.TotalCommits)
	assert.Equal(t, 2, summary.Metrics.TotalCodeReviews)

	// 12 commits with only 2 reviews should trip the coverage-gap rule
	var titles []string
	for _, p := range summary.Predictions {
		titles = append(titles, p.Title)
	}
	assert.Contains(t, titles, "Increase code review coverage")
}
