package dto

import (
	"time"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
)

// AnalyzeTranscriptRequest is the request body for ad-hoc transcript analysis
type AnalyzeTranscriptRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required,min=50"`
}

// AnalyzeTranscriptResponse carries the analysis result back to the caller
type AnalyzeTranscriptResponse struct {
	TranscriptID    string                 `json:"transcript_id"`
	Summary         string                 `json:"summary,omitempty"`
	KeyTopics       []string               `json:"key_topics,omitempty"`
	Decisions       []string               `json:"decisions,omitempty"`
	OpenQuestions   []string               `json:"open_questions,omitempty"`
	Participants    []string               `json:"participants,omitempty"`
	ActionItems     []*entities.ActionItem `json:"action_items,omitempty"`
	Sentiment       string                 `json:"sentiment"`
	ConfidenceScore int                    `json:"confidence_score"`
	Quality         int                    `json:"transcript_quality"`
	Warnings        []string               `json:"warnings,omitempty"`
}

// FromAnalysisResult builds the response DTO from a domain result
func FromAnalysisResult(r *entities.MeetingAnalysisResult) AnalyzeTranscriptResponse {
	names := make([]string, 0, len(r.Participants))
	for _, p := range r.Participants {
		names = append(names, p.Name)
	}

	return AnalyzeTranscriptResponse{
		TranscriptID:    r.Transcript.ID.String(),
		Summary:         r.Summary,
		KeyTopics:       r.KeyTopics,
		Decisions:       r.Decisions,
		OpenQuestions:   r.OpenQuestions,
		Participants:    names,
		ActionItems:     r.ActionItems,
		Sentiment:       r.Sentiment.String(),
		ConfidenceScore: r.ConfidenceScore,
		Quality:         r.TranscriptQuality,
		Warnings:        r.Warnings,
	}
}

// LatestReportResponse wraps the most recent development summary
type LatestReportResponse struct {
	GeneratedAt time.Time                    `json:"generated_at"`
	Summary     *entities.DevelopmentSummary `json:"summary"`
	Rendered    string                       `json:"rendered"`
}
