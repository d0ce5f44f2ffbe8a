package recommend

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
)

// Generator evaluates the declarative rule table against observed metrics
// and emits the matching recommendations.
type Generator struct {
	rules  []rule
	logger *zap.Logger
}

// NewGenerator creates a generator with the default rule table
func NewGenerator(logger *zap.Logger) *Generator {
	return &Generator{
		rules:  defaultRules,
		logger: logger,
	}
}

// Generate returns one recommendation per matching rule. The list is empty,
// never nil, when no rule fires.
func (g *Generator) Generate(metrics entities.DevelopmentMetrics) []entities.PredictiveRecommendation {
	recommendations := make([]entities.PredictiveRecommendation, 0)

	for _, r := range g.rules {
		if !r.condition(metrics) {
			continue
		}
		rec := r.template
		rec.ID = uuid.New()
		recommendations = append(recommendations, rec)

		if g.logger != nil {
			g.logger.Debug("💡 Recommendation rule fired",
				zap.String("rule", r.name),
				zap.String("category", string(rec.Category)),
			)
		}
	}

	if g.logger != nil {
		g.logger.Info("💡 Recommendations generated",
			zap.Int("count", len(recommendations)),
		)
	}

	return recommendations
}
