package entities

import (
	"time"
)

// Entity type tags used by the cross-reference correlator
const (
	EntityTypeCodeReview = "CodeReview"
	EntityTypeMeeting    = "Meeting"
	EntityTypeJiraTicket = "JiraTicket"
)

// CrossReferenceEntity is the correlator's atomic unit: any analyzable item
// (commit, meeting, ticket) normalized into a common shape. Synthesized from
// source data on demand, never independently persisted.
type CrossReferenceEntity struct {
	ID             string    `json:"id"`
	EntityType     string    `json:"entity_type"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	Owner          string    `json:"owner,omitempty"`
	Status         string    `json:"status,omitempty"`
	RelevanceScore float64   `json:"relevance_score"`
}

// ConnectionType classifies the relationship between two entities
type ConnectionType string

const (
	ConnectionDirectReference ConnectionType = "direct_reference"
	ConnectionTopicSimilarity ConnectionType = "topic_similarity"
	ConnectionPersonInvolved  ConnectionType = "person_involvement"
	ConnectionTimeCorrelation ConnectionType = "time_correlation"
	ConnectionImpactRelation  ConnectionType = "impact_relation"
	ConnectionDependency      ConnectionType = "dependency_relation"
	ConnectionCausation       ConnectionType = "causation_relation"
	ConnectionCompletion      ConnectionType = "completion_relation"
	ConnectionDiscussion      ConnectionType = "discussion_relation"
	ConnectionImplementation  ConnectionType = "implementation_relation"
)

// ConnectionDirection indicates which way a connection points
type ConnectionDirection string

const (
	DirectionBidirectional  ConnectionDirection = "bidirectional"
	DirectionSourceToTarget ConnectionDirection = "source_to_target"
	DirectionTargetToSource ConnectionDirection = "target_to_source"
)

// EntityConnection is a scored, typed relationship between two entities of
// different kinds. Whole-system analysis never links two entities that share
// an entity type.
type EntityConnection struct {
	SourceEntityID string              `json:"source_entity_id"`
	TargetEntityID string              `json:"target_entity_id"`
	Type           ConnectionType      `json:"type"`
	Strength       float64             `json:"strength"`
	Confidence     float64             `json:"confidence"`
	Direction      ConnectionDirection `json:"direction"`
	Description    string              `json:"description,omitempty"`
	Evidence       []string            `json:"evidence,omitempty"`
}

// CrossReferencePattern is a recurring group of connections sharing a type
type CrossReferencePattern struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Frequency   int     `json:"frequency"`
	Confidence  float64 `json:"confidence"`
}

// CrossReferenceResult aggregates one correlation run
type CrossReferenceResult struct {
	AnalysisType    string                  `json:"analysis_type"`
	Entities        []CrossReferenceEntity  `json:"entities"`
	Connections     []EntityConnection      `json:"connections"`
	ConfidenceScore float64                 `json:"confidence_score"`
	Insights        []string                `json:"insights,omitempty"`
	Patterns        []CrossReferencePattern `json:"patterns,omitempty"`
	Summary         string                  `json:"summary,omitempty"`
}
