package entities

import (
	"time"
)

// DevelopmentMetrics holds period counts and derived rates for a team
type DevelopmentMetrics struct {
	TotalCommits         int     `json:"total_commits"`
	TotalCodeReviews     int     `json:"total_code_reviews"`
	TotalMeetings        int     `json:"total_meetings"`
	TotalTickets         int     `json:"total_tickets"`
	ActionItemsCreated   int     `json:"action_items_created"`
	ActionItemsCompleted int     `json:"action_items_completed"`
	AverageReviewScore   float64 `json:"average_review_score,omitempty"`
}

// ActionItemCompletionRate returns the completed/created percentage, defined
// as 0 when nothing was created.
func (m DevelopmentMetrics) ActionItemCompletionRate() float64 {
	if m.ActionItemsCreated == 0 {
		return 0
	}
	return float64(m.ActionItemsCompleted) / float64(m.ActionItemsCreated) * 100
}

// DevelopmentSummary is the top-level report combining metrics, insights,
// recommendations, and sub-assessments for one period.
type DevelopmentSummary struct {
	PeriodStart        time.Time                  `json:"period_start"`
	PeriodEnd          time.Time                  `json:"period_end"`
	OverallHealthScore int                        `json:"overall_health_score"`
	Metrics            DevelopmentMetrics         `json:"metrics"`
	Insights           []string                   `json:"insights,omitempty"`
	Predictions        []PredictiveRecommendation `json:"predictions,omitempty"`
	QualityAssessment  string                     `json:"quality_assessment,omitempty"`
	PerformanceNotes   string                     `json:"performance_notes,omitempty"`
	CollaborationNotes string                     `json:"collaboration_notes,omitempty"`
	ExecutiveSummary   string                     `json:"executive_summary,omitempty"`
	LeadershipActions  []string                   `json:"leadership_actions,omitempty"`
	GeneratedAt        time.Time                  `json:"generated_at"`
}
