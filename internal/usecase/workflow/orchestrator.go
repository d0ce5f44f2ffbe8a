package workflow

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
	"github.com/devpulse-team/devpulse/internal/usecase/crossref"
	"github.com/devpulse-team/devpulse/internal/usecase/recommend"
	"github.com/devpulse-team/devpulse/internal/usecase/report"
	"github.com/devpulse-team/devpulse/pkg/github"
	"github.com/devpulse-team/devpulse/pkg/jira"
)

// Orchestrator runs the cross-source analysis pipeline: it normalizes
// commits, meeting results, and tickets into correlator entities, correlates
// them, generates recommendations from the period metrics, and assembles the
// development summary.
type Orchestrator struct {
	correlator *crossref.Correlator
	generator  *recommend.Generator
	assembler  *report.Assembler
	logger     *zap.Logger
}

// NewOrchestrator wires the analysis pipeline
func NewOrchestrator(logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		correlator: crossref.NewCorrelator(logger),
		generator:  recommend.NewGenerator(logger),
		assembler:  report.NewAssembler(logger),
		logger:     logger,
	}
}

// PeriodInput collects everything gathered for one reporting period
type PeriodInput struct {
	PeriodStart  time.Time
	PeriodEnd    time.Time
	Commits      []github.Commit
	PullRequests []github.PullRequest
	Meetings     []*entities.MeetingAnalysisResult
	Tickets      []jira.Ticket
	ReviewScore  float64
}

// BuildSummary runs the full pipeline over one period's inputs
func (o *Orchestrator) BuildSummary(ctx context.Context, input PeriodInput) (*entities.DevelopmentSummary, *entities.CrossReferenceResult) {
	ents := o.CollectEntities(input)
	correlation := o.correlator.AnalyzeAll(ents)

	metrics := o.aggregateMetrics(input)
	predictions := o.generator.Generate(metrics)

	summary := o.assembler.Assemble(input.PeriodStart, input.PeriodEnd, metrics, correlation.Insights, predictions)

	if o.logger != nil {
		o.logger.Info("🧩 Period analysis complete",
			zap.Int("entities", len(ents)),
			zap.Int("connections", len(correlation.Connections)),
			zap.Int("health_score", summary.OverallHealthScore),
		)
	}

	return summary, correlation
}

// CollectEntities normalizes all period sources into correlator entities
func (o *Orchestrator) CollectEntities(input PeriodInput) []entities.CrossReferenceEntity {
	ents := make([]entities.CrossReferenceEntity, 0,
		len(input.Commits)+len(input.Meetings)+len(input.Tickets))

	for _, commit := range input.Commits {
		ents = append(ents, CommitEntity(commit))
	}
	for _, meeting := range input.Meetings {
		ents = append(ents, MeetingEntity(meeting))
	}
	for _, ticket := range input.Tickets {
		ents = append(ents, TicketEntity(ticket))
	}
	return ents
}

// CommitEntity converts one commit into a correlator entity
func CommitEntity(c github.Commit) entities.CrossReferenceEntity {
	title := c.Message
	if idx := strings.Index(title, "\n"); idx != -1 {
		title = title[:idx]
	}

	return entities.CrossReferenceEntity{
		ID:             "commit-" + c.SHA,
		EntityType:     entities.EntityTypeCodeReview,
		Title:          title,
		Description:    c.Message,
		CreatedAt:      c.Date,
		Owner:          c.Author,
		Status:         "committed",
		RelevanceScore: 0.8,
	}
}

// MeetingEntity converts one meeting analysis result into a correlator
// entity. Topics and decisions feed the description so text similarity has
// material to work with.
func MeetingEntity(m *entities.MeetingAnalysisResult) entities.CrossReferenceEntity {
	var description strings.Builder
	description.WriteString(m.Summary)
	for _, topic := range m.KeyTopics {
		description.WriteString(" ")
		description.WriteString(topic)
	}
	for _, decision := range m.Decisions {
		description.WriteString(" ")
		description.WriteString(decision)
	}

	owner := ""
	for _, p := range m.Participants {
		if p.IsOrganizer {
			owner = p.Name
			break
		}
	}

	return entities.CrossReferenceEntity{
		ID:             "meeting-" + m.Transcript.ID.String(),
		EntityType:     entities.EntityTypeMeeting,
		Title:          m.Transcript.Title,
		Description:    description.String(),
		CreatedAt:      m.Transcript.CreatedAt,
		Owner:          owner,
		Status:         string(m.Transcript.Status),
		RelevanceScore: float64(m.ConfidenceScore) / 100,
	}
}

// TicketEntity converts one ticket into a correlator entity
func TicketEntity(t jira.Ticket) entities.CrossReferenceEntity {
	return entities.CrossReferenceEntity{
		ID:             "ticket-" + t.Key,
		EntityType:     entities.EntityTypeJiraTicket,
		Title:          t.Summary,
		Description:    t.Description,
		CreatedAt:      t.Created,
		Owner:          t.Assignee,
		Status:         t.Status,
		RelevanceScore: 0.7,
	}
}

func (o *Orchestrator) aggregateMetrics(input PeriodInput) entities.DevelopmentMetrics {
	metrics := entities.DevelopmentMetrics{
		TotalCommits:       len(input.Commits),
		TotalCodeReviews:   len(input.PullRequests),
		TotalMeetings:      len(input.Meetings),
		TotalTickets:       len(input.Tickets),
		AverageReviewScore: input.ReviewScore,
	}

	for _, m := range input.Meetings {
		metrics.ActionItemsCreated += len(m.ActionItems)
		for _, item := range m.ActionItems {
			if item.Status == entities.ActionItemStatusCompleted {
				metrics.ActionItemsCompleted++
			}
		}
	}

	return metrics
}
