package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
)

// FocusSummarizer produces a short area-scoped summary from a metrics
// snapshot, typically via an LLM call.
type FocusSummarizer interface {
	FocusSummary(ctx context.Context, area, metricsSnapshot string) (string, error)
}

// Render produces the full structured text dump of a development summary
func Render(s *entities.DevelopmentSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "DEVELOPMENT SUMMARY %s - %s\n",
		s.PeriodStart.Format("2006-01-02"), s.PeriodEnd.Format("2006-01-02"))
	fmt.Fprintf(&b, "Overall health score: %d/100\n\n", s.OverallHealthScore)

	b.WriteString("METRICS\n")
	fmt.Fprintf(&b, "  Commits:          %d\n", s.Metrics.TotalCommits)
	fmt.Fprintf(&b, "  Code reviews:     %d\n", s.Metrics.TotalCodeReviews)
	fmt.Fprintf(&b, "  Meetings:         %d\n", s.Metrics.TotalMeetings)
	fmt.Fprintf(&b, "  Tickets:          %d\n", s.Metrics.TotalTickets)
	fmt.Fprintf(&b, "  Action items:     %d created, %d completed (%.0f%%)\n",
		s.Metrics.ActionItemsCreated, s.Metrics.ActionItemsCompleted,
		s.Metrics.ActionItemCompletionRate())
	if s.Metrics.AverageReviewScore > 0 {
		fmt.Fprintf(&b, "  Avg review score: %.1f\n", s.Metrics.AverageReviewScore)
	}
	b.WriteString("\n")

	if len(s.Insights) > 0 {
		b.WriteString("INSIGHTS\n")
		for _, insight := range s.Insights {
			fmt.Fprintf(&b, "  • %s\n", insight)
		}
		b.WriteString("\n")
	}

	if len(s.Predictions) > 0 {
		b.WriteString("RECOMMENDATIONS\n")
		for _, p := range s.Predictions {
			fmt.Fprintf(&b, "  [%s/%s] %s (confidence %.0f%%, %s)\n",
				p.Category, p.Priority, p.Title, p.Confidence*100, p.TimeFrame)
			fmt.Fprintf(&b, "      %s\n", p.Description)
			for _, step := range p.ActionSteps {
				fmt.Fprintf(&b, "      - %s\n", step)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("ASSESSMENTS\n")
	fmt.Fprintf(&b, "  Quality:       %s\n", s.QualityAssessment)
	fmt.Fprintf(&b, "  Performance:   %s\n", s.PerformanceNotes)
	fmt.Fprintf(&b, "  Collaboration: %s\n", s.CollaborationNotes)

	if len(s.LeadershipActions) > 0 {
		b.WriteString("\nLEADERSHIP ACTIONS\n")
		for _, action := range s.LeadershipActions {
			fmt.Fprintf(&b, "  → %s\n", action)
		}
	}

	if s.ExecutiveSummary != "" {
		b.WriteString("\nEXECUTIVE SUMMARY\n")
		fmt.Fprintf(&b, "  %s\n", s.ExecutiveSummary)
	}

	return b.String()
}

// RenderFocused re-derives a shorter executive summary scoped to one area
// ("Security", "Performance", "Risks") from the summary's metrics snapshot.
func RenderFocused(ctx context.Context, summarizer FocusSummarizer, s *entities.DevelopmentSummary, area string) (string, error) {
	snapshot := MetricsSnapshot(s)

	focused, err := summarizer.FocusSummary(ctx, area, snapshot)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s FOCUS - %s to %s\n\n", strings.ToUpper(area),
		s.PeriodStart.Format("2006-01-02"), s.PeriodEnd.Format("2006-01-02"))
	b.WriteString(focused)
	b.WriteString("\n")
	return b.String(), nil
}

// MetricsSnapshot serializes the summary's metrics and assessments into the
// plain-text form fed to the focus-summary prompt.
func MetricsSnapshot(s *entities.DevelopmentSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "health score: %d/100\n", s.OverallHealthScore)
	fmt.Fprintf(&b, "commits: %d, code reviews: %d, meetings: %d, tickets: %d\n",
		s.Metrics.TotalCommits, s.Metrics.TotalCodeReviews, s.Metrics.TotalMeetings, s.Metrics.TotalTickets)
	fmt.Fprintf(&b, "action items: %d created, %d completed (%.0f%% completion)\n",
		s.Metrics.ActionItemsCreated, s.Metrics.ActionItemsCompleted, s.Metrics.ActionItemCompletionRate())
	fmt.Fprintf(&b, "quality: %s\n", s.QualityAssessment)
	fmt.Fprintf(&b, "performance: %s\n", s.PerformanceNotes)
	fmt.Fprintf(&b, "collaboration: %s\n", s.CollaborationNotes)
	for _, insight := range s.Insights {
		fmt.Fprintf(&b, "insight: %s\n", insight)
	}
	return b.String()
}
