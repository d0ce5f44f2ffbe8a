package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
)

func TestGenerate_EmptyMetricsFiresNothing(t *testing.T) {
	g := NewGenerator(zap.NewNop())

	recs := g.Generate(entities.DevelopmentMetrics{})

	require.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestGenerate_LowVelocity(t *testing.T) {
	g := NewGenerator(zap.NewNop())

	recs := g.Generate(entities.DevelopmentMetrics{TotalCommits: 3})

	require.Len(t, recs, 1)
	assert.Equal(t, "Investigate low commit velocity", recs[0].Title)
	assert.Equal(t, entities.CategoryProcessImprovement, recs[0].Category)
	assert.NotEmpty(t, recs[0].ActionSteps)
	assert.NotEqual(t, recs[0].ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestGenerate_ReviewCoverageGap(t *testing.T) {
	g := NewGenerator(zap.NewNop())

	recs := g.Generate(entities.DevelopmentMetrics{
		TotalCommits:     30,
		TotalCodeReviews: 2,
		TotalTickets:     5,
	})

	titles := make([]string, 0, len(recs))
	for _, r := range recs {
		titles = append(titles, r.Title)
	}
	assert.Contains(t, titles, "Increase code review coverage")
}

func TestGenerate_ActionItemBacklog(t *testing.T) {
	g := NewGenerator(zap.NewNop())

	recs := g.Generate(entities.DevelopmentMetrics{
		ActionItemsCreated:   10,
		ActionItemsCompleted: 2,
	})

	require.NotEmpty(t, recs)
	found := false
	for _, r := range recs {
		if r.Category == entities.CategoryTeamCollaboration {
			found = true
			assert.Equal(t, entities.TimeFrameNextSprint, r.TimeFrame)
		}
	}
	assert.True(t, found, "expected a team-collaboration recommendation")
}

func TestGenerate_ConfidenceInDocumentedRange(t *testing.T) {
	g := NewGenerator(zap.NewNop())

	recs := g.Generate(entities.DevelopmentMetrics{
		TotalCommits:         25,
		TotalCodeReviews:     8,
		TotalMeetings:        30,
		ActionItemsCreated:   10,
		ActionItemsCompleted: 1,
		AverageReviewScore:   40,
	})

	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.GreaterOrEqual(t, r.Confidence, 0.68)
		assert.LessOrEqual(t, r.Confidence, 0.82)
	}
}
