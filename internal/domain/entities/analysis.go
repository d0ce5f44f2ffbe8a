package entities

import (
	"strings"
	"time"
)

// Sentiment represents the overall tone of a meeting on an ordinal scale
// from -2 (very negative) to +2 (very positive).
type Sentiment int

const (
	SentimentVeryNegative Sentiment = -2
	SentimentNegative     Sentiment = -1
	SentimentNeutral      Sentiment = 0
	SentimentPositive     Sentiment = 1
	SentimentVeryPositive Sentiment = 2
)

// String returns the token form used in prompts and reports
func (s Sentiment) String() string {
	switch s {
	case SentimentVeryNegative:
		return "very_negative"
	case SentimentNegative:
		return "negative"
	case SentimentPositive:
		return "positive"
	case SentimentVeryPositive:
		return "very_positive"
	default:
		return "neutral"
	}
}

// ParseSentiment maps an LLM response token to a Sentiment. Anything
// unrecognized, including empty output, falls back to neutral. The fallback
// is a fail-safe, not an error condition.
func ParseSentiment(s string) Sentiment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "very_negative":
		return SentimentVeryNegative
	case "negative":
		return SentimentNegative
	case "positive":
		return SentimentPositive
	case "very_positive":
		return SentimentVeryPositive
	default:
		return SentimentNeutral
	}
}

// MeetingAnalysisResult aggregates everything extracted from one transcript.
// ConfidenceScore and TranscriptQuality are heuristics computed locally from
// the result's own fields, never LLM outputs.
type MeetingAnalysisResult struct {
	Transcript         *Transcript    `json:"transcript"`
	Summary            string         `json:"summary,omitempty"`
	KeyTopics          []string       `json:"key_topics,omitempty"`
	Decisions          []string       `json:"decisions,omitempty"`
	OpenQuestions      []string       `json:"open_questions,omitempty"`
	Quotes             []string       `json:"quotes,omitempty"`
	Participants       []*Participant `json:"participants,omitempty"`
	ActionItems        []*ActionItem  `json:"action_items,omitempty"`
	Sentiment          Sentiment      `json:"sentiment"`
	ConfidenceScore    int            `json:"confidence_score"`
	TranscriptQuality  int            `json:"transcript_quality"`
	ProcessingDuration time.Duration  `json:"processing_duration"`
	Warnings           []string       `json:"warnings,omitempty"`
}

// NewMeetingAnalysisResult creates an empty result for a transcript
func NewMeetingAnalysisResult(t *Transcript) *MeetingAnalysisResult {
	return &MeetingAnalysisResult{
		Transcript:    t,
		KeyTopics:     []string{},
		Decisions:     []string{},
		OpenQuestions: []string{},
		Participants:  []*Participant{},
		ActionItems:   []*ActionItem{},
		Sentiment:     SentimentNeutral,
	}
}

// AddWarning records a degradation note on the result
func (r *MeetingAnalysisResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
