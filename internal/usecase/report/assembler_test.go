package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
)

func TestCalculateHealthScore_AllBonuses(t *testing.T) {
	m := entities.DevelopmentMetrics{
		TotalCommits:         15,
		TotalCodeReviews:     8,
		ActionItemsCreated:   10,
		ActionItemsCompleted: 9,
	}

	assert.Equal(t, 90.0, m.ActionItemCompletionRate())
	assert.Equal(t, 100, CalculateHealthScore(m))
}

func TestCalculateHealthScore_BaseOnly(t *testing.T) {
	assert.Equal(t, 50, CalculateHealthScore(entities.DevelopmentMetrics{}))
}

func TestCalculateHealthScore_ThresholdsAreStrict(t *testing.T) {
	// Exactly at thresholds earns no bonus
	m := entities.DevelopmentMetrics{
		TotalCommits:         10,
		TotalCodeReviews:     5,
		ActionItemsCreated:   10,
		ActionItemsCompleted: 7,
	}
	assert.Equal(t, 50, CalculateHealthScore(m))
}

func TestAssemble(t *testing.T) {
	a := NewAssembler(zap.NewNop())
	start := time.Now().AddDate(0, 0, -14)
	end := time.Now()

	predictions := []entities.PredictiveRecommendation{
		{Title: "Urgent thing", Priority: entities.RecommendationPriorityHigh},
		{Title: "Nice to have", Priority: entities.RecommendationPriorityLow},
	}

	summary := a.Assemble(start, end, entities.DevelopmentMetrics{
		TotalCommits:       20,
		TotalCodeReviews:   8,
		TotalMeetings:      3,
		ActionItemsCreated: 4,
	}, []string{"an insight"}, predictions)

	require.NotNil(t, summary)
	assert.Equal(t, 80, summary.OverallHealthScore)
	assert.Equal(t, []string{"an insight"}, summary.Insights)
	assert.Len(t, summary.Predictions, 2)
	assert.Equal(t, []string{"Urgent thing"}, summary.LeadershipActions)
	assert.NotEmpty(t, summary.QualityAssessment)
	assert.NotEmpty(t, summary.PerformanceNotes)
	assert.NotEmpty(t, summary.CollaborationNotes)
}

func TestRender(t *testing.T) {
	a := NewAssembler(zap.NewNop())
	summary := a.Assemble(time.Now().AddDate(0, 0, -7), time.Now(), entities.DevelopmentMetrics{
		TotalCommits:         15,
		TotalCodeReviews:     8,
		TotalMeetings:        2,
		ActionItemsCreated:   10,
		ActionItemsCompleted: 9,
	}, []string{"strong cross-team alignment"}, nil)

	text := Render(summary)

	assert.Contains(t, text, "Overall health score: 100/100")
	assert.Contains(t, text, "10 created, 9 completed (90%)")
	assert.Contains(t, text, "strong cross-team alignment")
}

type fakeSummarizer struct {
	gotArea     string
	gotSnapshot string
}

func (f *fakeSummarizer) FocusSummary(_ context.Context, area, snapshot string) (string, error) {
	f.gotArea = area
	f.gotSnapshot = snapshot
	return "Focused view of " + area + ".", nil
}

func TestRenderFocused(t *testing.T) {
	a := NewAssembler(zap.NewNop())
	summary := a.Assemble(time.Now().AddDate(0, 0, -7), time.Now(),
		entities.DevelopmentMetrics{TotalCommits: 12}, nil, nil)

	summarizer := &fakeSummarizer{}
	text, err := RenderFocused(context.Background(), summarizer, summary, "Security")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "SECURITY FOCUS"))
	assert.Contains(t, text, "Focused view of Security.")
	assert.Equal(t, "Security", summarizer.gotArea)
	assert.Contains(t, summarizer.gotSnapshot, "commits: 12")
}
