package recommend

import (
	"github.com/devpulse-team/devpulse/internal/domain/entities"
)

// rule pairs a condition over observed metrics with a recommendation
// template. Rules are evaluated independently; every matching rule yields
// one recommendation.
type rule struct {
	name      string
	condition func(m entities.DevelopmentMetrics) bool
	template  entities.PredictiveRecommendation
}

// defaultRules is the declarative rule table driving recommendation
// generation. Conditions read real aggregated counts, so the output varies
// with the team's actual activity for the period.
var defaultRules = []rule{
	{
		name: "low-commit-velocity",
		condition: func(m entities.DevelopmentMetrics) bool {
			return m.TotalCommits > 0 && m.TotalCommits < 5
		},
		template: entities.PredictiveRecommendation{
			Title:       "Investigate low commit velocity",
			Description: "Commit activity this period is well below a healthy baseline. Look for blocked work, oversized changes waiting in branches, or unplanned interruptions.",
			Category:    entities.CategoryProcessImprovement,
			Priority:    entities.RecommendationPriorityMedium,
			Confidence:  0.72,
			TimeFrame:   entities.TimeFrameThisSprint,
			ActionSteps: []string{
				"Review in-progress branches for work stuck without a merge",
				"Check the sprint board for blocked or unassigned tasks",
				"Discuss interruptions and unplanned work at the next standup",
			},
			SuccessMetrics: []string{"Commit count returns above 10 per period"},
		},
	},
	{
		name: "review-coverage-gap",
		condition: func(m entities.DevelopmentMetrics) bool {
			return m.TotalCommits > 10 && m.TotalCodeReviews*3 < m.TotalCommits
		},
		template: entities.PredictiveRecommendation{
			Title:       "Increase code review coverage",
			Description: "Commits are landing much faster than reviews are happening. Unreviewed changes accumulate risk and make regressions harder to trace.",
			Category:    entities.CategoryCodeQuality,
			Priority:    entities.RecommendationPriorityHigh,
			Confidence:  0.78,
			TimeFrame:   entities.TimeFrameThisSprint,
			ActionSteps: []string{
				"Require a review on every change to the main branch",
				"Rotate a daily reviewer so review load is shared",
			},
			SuccessMetrics: []string{"At least one review per three commits"},
		},
	},
	{
		name: "low-review-score",
		condition: func(m entities.DevelopmentMetrics) bool {
			return m.AverageReviewScore > 0 && m.AverageReviewScore < 60
		},
		template: entities.PredictiveRecommendation{
			Title:       "Address recurring code quality findings",
			Description: "The average automated review score is low, which usually points to repeated issues of the same kind. Identify the most frequent finding categories and fix them at the source.",
			Category:    entities.CategoryCodeQuality,
			Priority:    entities.RecommendationPriorityHigh,
			Confidence:  0.74,
			TimeFrame:   entities.TimeFrameThisSprint,
			ActionSteps: []string{
				"Group recent review findings by category and count them",
				"Add a linter or static-analysis rule for the top category",
			},
			SuccessMetrics: []string{"Average review score above 70"},
		},
	},
	{
		name: "action-item-backlog",
		condition: func(m entities.DevelopmentMetrics) bool {
			return m.ActionItemsCreated >= 5 && m.ActionItemCompletionRate() < 50
		},
		template: entities.PredictiveRecommendation{
			Title:       "Reduce the open action item backlog",
			Description: "Less than half of the action items created this period were completed. Meeting follow-ups are being generated faster than the team can absorb them.",
			Category:    entities.CategoryTeamCollaboration,
			Priority:    entities.RecommendationPriorityMedium,
			Confidence:  0.76,
			TimeFrame:   entities.TimeFrameNextSprint,
			ActionSteps: []string{
				"Review open action items and close or re-scope stale ones",
				"Assign an owner and due date to every new action item",
			},
			SuccessMetrics: []string{"Action item completion rate above 70%"},
		},
	},
	{
		name: "meeting-heavy-period",
		condition: func(m entities.DevelopmentMetrics) bool {
			return m.TotalMeetings > 8 && m.TotalMeetings > m.TotalCommits
		},
		template: entities.PredictiveRecommendation{
			Title:       "Rebalance meeting load against delivery time",
			Description: "Meetings outnumbered commits this period. Heavy synchronous load leaves little focused time for implementation work.",
			Category:    entities.CategoryProcessImprovement,
			Priority:    entities.RecommendationPriorityLow,
			Confidence:  0.68,
			TimeFrame:   entities.TimeFrameThisQuarter,
			ActionSteps: []string{
				"Audit recurring meetings for ones that can become async updates",
				"Protect at least two meeting-free blocks per week",
			},
			SuccessMetrics: []string{"Commit count exceeds meeting count per period"},
		},
	},
	{
		name: "no-ticket-tracking",
		condition: func(m entities.DevelopmentMetrics) bool {
			return m.TotalCommits > 10 && m.TotalTickets == 0
		},
		template: entities.PredictiveRecommendation{
			Title:       "Track delivery work in the ticket system",
			Description: "A full period of commit activity produced no tracked tickets. Untracked work is invisible to planning and makes throughput impossible to measure.",
			Category:    entities.CategoryProcessImprovement,
			Priority:    entities.RecommendationPriorityMedium,
			Confidence:  0.70,
			TimeFrame:   entities.TimeFrameNextSprint,
			ActionSteps: []string{
				"Create tickets for the current in-flight work streams",
				"Link commits to tickets with the ticket key in commit messages",
			},
			SuccessMetrics: []string{"Every significant change maps to a ticket"},
		},
	},
	{
		name: "healthy-velocity-automation",
		condition: func(m entities.DevelopmentMetrics) bool {
			return m.TotalCommits > 20 && m.TotalCodeReviews > 5
		},
		template: entities.PredictiveRecommendation{
			Title:       "Invest freed capacity into automation",
			Description: "Delivery and review throughput are both healthy. This is the right moment to automate remaining manual steps before the next load increase.",
			Category:    entities.CategoryAutomation,
			Priority:    entities.RecommendationPriorityLow,
			Confidence:  0.82,
			TimeFrame:   entities.TimeFrameThisQuarter,
			ActionSteps: []string{
				"List the manual steps in the release process",
				"Automate the most frequent one first",
			},
			SuccessMetrics: []string{"One fewer manual release step per quarter"},
		},
	},
}
