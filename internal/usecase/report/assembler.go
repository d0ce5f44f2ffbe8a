package report

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
)

// Assembler combines metrics, correlation insights, and recommendations
// into one development summary for a reporting period.
type Assembler struct {
	logger *zap.Logger
}

// NewAssembler creates a report assembler
func NewAssembler(logger *zap.Logger) *Assembler {
	return &Assembler{logger: logger}
}

// Assemble builds the summary document. Insights and predictions pass
// through unchanged; the health score and sub-assessments are derived here.
func (a *Assembler) Assemble(
	periodStart, periodEnd time.Time,
	metrics entities.DevelopmentMetrics,
	insights []string,
	predictions []entities.PredictiveRecommendation,
) *entities.DevelopmentSummary {
	summary := &entities.DevelopmentSummary{
		PeriodStart:        periodStart,
		PeriodEnd:          periodEnd,
		OverallHealthScore: CalculateHealthScore(metrics),
		Metrics:            metrics,
		Insights:           insights,
		Predictions:        predictions,
		QualityAssessment:  assessQuality(metrics),
		PerformanceNotes:   assessPerformance(metrics),
		CollaborationNotes: assessCollaboration(metrics),
		GeneratedAt:        time.Now(),
	}

	summary.LeadershipActions = leadershipActions(predictions)

	if a.logger != nil {
		a.logger.Info("📊 Development summary assembled",
			zap.Int("health_score", summary.OverallHealthScore),
			zap.Int("insights", len(insights)),
			zap.Int("predictions", len(predictions)),
		)
	}

	return summary
}

// CalculateHealthScore derives the 0-100 health score from threshold rules:
// base 50, +15 for more than 10 commits, +15 for more than 5 code reviews,
// +20 for an action-item completion rate above 70 percent.
func CalculateHealthScore(m entities.DevelopmentMetrics) int {
	score := 50

	if m.TotalCommits > 10 {
		score += 15
	}
	if m.TotalCodeReviews > 5 {
		score += 15
	}
	if m.ActionItemCompletionRate() > 70 {
		score += 20
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

func assessQuality(m entities.DevelopmentMetrics) string {
	switch {
	case m.AverageReviewScore >= 80:
		return fmt.Sprintf("Code quality is strong with an average review score of %.0f.", m.AverageReviewScore)
	case m.AverageReviewScore >= 60:
		return fmt.Sprintf("Code quality is acceptable at an average review score of %.0f, with room to improve.", m.AverageReviewScore)
	case m.AverageReviewScore > 0:
		return fmt.Sprintf("Code quality needs attention: the average review score is %.0f.", m.AverageReviewScore)
	default:
		return "No review score data available for this period."
	}
}

func assessPerformance(m entities.DevelopmentMetrics) string {
	if m.TotalCommits > 10 {
		return fmt.Sprintf("Delivery pace is healthy with %d commits this period.", m.TotalCommits)
	}
	return fmt.Sprintf("Delivery pace is low with %d commits this period.", m.TotalCommits)
}

func assessCollaboration(m entities.DevelopmentMetrics) string {
	rate := m.ActionItemCompletionRate()
	if m.ActionItemsCreated == 0 {
		return fmt.Sprintf("%d meetings held; no action items were recorded.", m.TotalMeetings)
	}
	return fmt.Sprintf("%d meetings produced %d action items with a %.0f%% completion rate.",
		m.TotalMeetings, m.ActionItemsCreated, rate)
}

// leadershipActions lifts high-priority recommendation titles into a short
// action list for the report header.
func leadershipActions(predictions []entities.PredictiveRecommendation) []string {
	actions := make([]string, 0)
	for _, p := range predictions {
		if p.Priority == entities.RecommendationPriorityHigh || p.Priority == entities.RecommendationPriorityCritical {
			actions = append(actions, p.Title)
		}
	}
	return actions
}
