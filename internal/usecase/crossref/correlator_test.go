package crossref

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
)

func entity(id, entityType, title, owner string, createdAt time.Time) entities.CrossReferenceEntity {
	return entities.CrossReferenceEntity{
		ID:             id,
		EntityType:     entityType,
		Title:          title,
		CreatedAt:      createdAt,
		Owner:          owner,
		RelevanceScore: 0.8,
	}
}

func TestAnalyzeAll_NeverSelfConnects(t *testing.T) {
	now := time.Now()
	c := NewCorrelator(zap.NewNop())

	result := c.AnalyzeAll([]entities.CrossReferenceEntity{
		entity("a", entities.EntityTypeCodeReview, "fix login bug validation", "alice", now),
		entity("b", entities.EntityTypeMeeting, "discussed login bug validation", "alice", now),
		entity("c", entities.EntityTypeJiraTicket, "login bug validation ticket", "bob", now),
	})

	for _, conn := range result.Connections {
		assert.NotEqual(t, conn.SourceEntityID, conn.TargetEntityID)
	}
}

func TestAnalyzeAll_SameTypeNeverConnected(t *testing.T) {
	now := time.Now()
	c := NewCorrelator(zap.NewNop())

	result := c.AnalyzeAll([]entities.CrossReferenceEntity{
		entity("a", entities.EntityTypeCodeReview, "identical topic words here", "alice", now),
		entity("b", entities.EntityTypeCodeReview, "identical topic words here", "alice", now),
	})

	assert.Empty(t, result.Connections)
	assert.Zero(t, result.ConfidenceScore)
}

func TestAnalyzeCodeToMeeting_EndpointTypesRestricted(t *testing.T) {
	now := time.Now()
	c := NewCorrelator(zap.NewNop())

	ents := []entities.CrossReferenceEntity{
		entity("commit-1", entities.EntityTypeCodeReview, "payment gateway refactor", "alice", now),
		entity("meeting-1", entities.EntityTypeMeeting, "payment gateway refactor review", "alice", now),
		entity("ticket-1", entities.EntityTypeJiraTicket, "payment gateway refactor task", "alice", now),
	}

	result := c.AnalyzeCodeToMeeting(ents)

	byID := make(map[string]string)
	for _, e := range result.Entities {
		byID[e.ID] = e.EntityType
	}

	require.NotEmpty(t, result.Connections)
	for _, conn := range result.Connections {
		assert.Contains(t, []string{entities.EntityTypeCodeReview, entities.EntityTypeMeeting},
			byID[conn.SourceEntityID])
		assert.Contains(t, []string{entities.EntityTypeCodeReview, entities.EntityTypeMeeting},
			byID[conn.TargetEntityID])
	}
}

func TestConnect_StrengthTracksTextOverlap(t *testing.T) {
	now := time.Now()
	c := NewCorrelator(zap.NewNop())

	related := c.AnalyzeAll([]entities.CrossReferenceEntity{
		entity("a", entities.EntityTypeCodeReview, "refactor payment gateway timeout handling", "", now),
		entity("b", entities.EntityTypeMeeting, "payment gateway timeout discussion", "", now),
	})
	unrelated := c.AnalyzeAll([]entities.CrossReferenceEntity{
		entity("a", entities.EntityTypeCodeReview, "refactor payment gateway timeout handling", "", now),
		entity("b", entities.EntityTypeMeeting, "quarterly budget offsite planning", "", now),
	})

	require.Len(t, related.Connections, 1)
	if len(unrelated.Connections) == 1 {
		assert.Greater(t, related.Connections[0].Strength, unrelated.Connections[0].Strength)
	}
}

func TestConnect_SharedOwnerBecomesPersonInvolvement(t *testing.T) {
	now := time.Now()
	c := NewCorrelator(zap.NewNop())

	result := c.AnalyzeAll([]entities.CrossReferenceEntity{
		entity("a", entities.EntityTypeCodeReview, "cache invalidation rework", "Alice", now.Add(-30*24*time.Hour)),
		entity("b", entities.EntityTypeJiraTicket, "cache invalidation follow-up", "alice", now),
	})

	require.Len(t, result.Connections, 1)
	assert.Equal(t, entities.ConnectionPersonInvolved, result.Connections[0].Type)
}

func TestConnect_CloseTimestampsBecomeTimeCorrelation(t *testing.T) {
	now := time.Now()
	c := NewCorrelator(zap.NewNop())

	result := c.AnalyzeAll([]entities.CrossReferenceEntity{
		entity("a", entities.EntityTypeCodeReview, "search index tuning work", "", now),
		entity("b", entities.EntityTypeMeeting, "search index tuning sync", "", now.Add(2*time.Hour)),
	})

	require.Len(t, result.Connections, 1)
	assert.Equal(t, entities.ConnectionTimeCorrelation, result.Connections[0].Type)
}

func TestGenerateInsights(t *testing.T) {
	conns := []entities.EntityConnection{
		{Type: entities.ConnectionTopicSimilarity, Strength: 0.8, Confidence: 0.7},
		{Type: entities.ConnectionTopicSimilarity, Strength: 0.3, Confidence: 0.7},
		{Type: entities.ConnectionPersonInvolved, Strength: 0.9, Confidence: 0.7},
	}

	insights := generateInsights(conns)

	require.Len(t, insights, 2)
	assert.Contains(t, insights[0], "2 strong correlations")
	assert.Contains(t, insights[1], "2 topic-based connections")
}

func TestGenerateInsights_NoSignalsNoSentences(t *testing.T) {
	insights := generateInsights(nil)
	assert.Empty(t, insights)
}

func TestGeneratePatterns_RequiresRecurrence(t *testing.T) {
	conns := []entities.EntityConnection{
		{Type: entities.ConnectionTopicSimilarity, Confidence: 0.6},
		{Type: entities.ConnectionTopicSimilarity, Confidence: 0.8},
		{Type: entities.ConnectionPersonInvolved, Confidence: 0.9},
	}

	patterns := generatePatterns(conns)

	require.Len(t, patterns, 1)
	assert.Equal(t, 2, patterns[0].Frequency)
	assert.InDelta(t, 0.7, patterns[0].Confidence, 1e-9)
}

func TestConfidenceScore_MeanOfConnections(t *testing.T) {
	now := time.Now()
	c := NewCorrelator(zap.NewNop())

	result := c.AnalyzeAll([]entities.CrossReferenceEntity{
		entity("a", entities.EntityTypeCodeReview, "billing export pipeline rewrite", "carol", now),
		entity("b", entities.EntityTypeMeeting, "billing export pipeline rewrite kickoff", "carol", now),
	})

	require.Len(t, result.Connections, 1)
	assert.Equal(t, result.Connections[0].Confidence, result.ConfidenceScore)
}
