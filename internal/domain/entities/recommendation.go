package entities

import (
	"github.com/google/uuid"
)

// RecommendationCategory groups recommendations by concern
type RecommendationCategory string

const (
	CategoryPerformance        RecommendationCategory = "performance"
	CategorySecurity           RecommendationCategory = "security"
	CategoryCodeQuality        RecommendationCategory = "code_quality"
	CategoryProcessImprovement RecommendationCategory = "process_improvement"
	CategoryTesting            RecommendationCategory = "testing"
	CategoryDocumentation      RecommendationCategory = "documentation"
	CategoryArchitecture       RecommendationCategory = "architecture"
	CategoryTeamCollaboration  RecommendationCategory = "team_collaboration"
	CategoryAutomation         RecommendationCategory = "automation"
	CategoryMonitoring         RecommendationCategory = "monitoring"
	CategoryDeployment         RecommendationCategory = "deployment"
	CategoryMaintenance        RecommendationCategory = "maintenance"
)

// RecommendationPriority ranks how urgently a recommendation should be acted on
type RecommendationPriority string

const (
	RecommendationPriorityLow      RecommendationPriority = "low"
	RecommendationPriorityMedium   RecommendationPriority = "medium"
	RecommendationPriorityHigh     RecommendationPriority = "high"
	RecommendationPriorityCritical RecommendationPriority = "critical"
)

// RecommendationTimeFrame suggests when to act
type RecommendationTimeFrame string

const (
	TimeFrameImmediate   RecommendationTimeFrame = "immediate"
	TimeFrameThisSprint  RecommendationTimeFrame = "this_sprint"
	TimeFrameNextSprint  RecommendationTimeFrame = "next_sprint"
	TimeFrameThisQuarter RecommendationTimeFrame = "this_quarter"
	TimeFrameLongTerm    RecommendationTimeFrame = "long_term"
)

// PredictiveRecommendation is a forward-looking suggestion derived from
// observed development metrics.
type PredictiveRecommendation struct {
	ID             uuid.UUID               `json:"id"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	Category       RecommendationCategory  `json:"category"`
	Priority       RecommendationPriority  `json:"priority"`
	Confidence     float64                 `json:"confidence"`
	TimeFrame      RecommendationTimeFrame `json:"time_frame"`
	ActionSteps    []string                `json:"action_steps,omitempty"`
	SuccessMetrics []string                `json:"success_metrics,omitempty"`
	Dependencies   []string                `json:"dependencies,omitempty"`
}
