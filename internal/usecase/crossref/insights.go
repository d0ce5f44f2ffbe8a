package crossref

import (
	"fmt"
	"sort"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
)

// generateInsights emits one descriptive sentence per non-zero signal:
// strong correlations (strength above 0.7) and topic-similarity links.
func generateInsights(conns []entities.EntityConnection) []string {
	insights := make([]string, 0, 2)

	strong := 0
	topical := 0
	for _, c := range conns {
		if c.Strength > 0.7 {
			strong++
		}
		if c.Type == entities.ConnectionTopicSimilarity {
			topical++
		}
	}

	if strong > 0 {
		insights = append(insights, fmt.Sprintf(
			"Found %d strong correlations between development activities", strong))
	}
	if topical > 0 {
		insights = append(insights, fmt.Sprintf(
			"Identified %d topic-based connections across different work streams", topical))
	}

	return insights
}

// generatePatterns groups connections by type; any group with more than one
// member becomes a pattern with frequency equal to the group size and
// confidence equal to the group mean.
func generatePatterns(conns []entities.EntityConnection) []entities.CrossReferencePattern {
	groups := make(map[entities.ConnectionType][]entities.EntityConnection)
	for _, c := range conns {
		groups[c.Type] = append(groups[c.Type], c)
	}

	patterns := make([]entities.CrossReferencePattern, 0)
	for connType, group := range groups {
		if len(group) < 2 {
			continue
		}
		patterns = append(patterns, entities.CrossReferencePattern{
			Name:        fmt.Sprintf("Recurring %s connections", connType),
			Description: fmt.Sprintf("%d connections of type %s detected in this analysis", len(group), connType),
			Frequency:   len(group),
			Confidence:  meanConfidence(group),
		})
	}

	sort.Slice(patterns, func(i, j int) bool {
		return patterns[i].Frequency > patterns[j].Frequency
	})
	return patterns
}
