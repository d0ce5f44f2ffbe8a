package meeting

import (
	"github.com/devpulse-team/devpulse/internal/domain/entities"
)

// CalculateConfidenceScore averages four independently bucketed factors into
// a 0-100 score: content length, participant count, action-item presence,
// and structural completeness. Deterministic over the result's own fields.
func CalculateConfidenceScore(result *entities.MeetingAnalysisResult) int {
	contentLength := 0
	if result.Transcript != nil {
		contentLength = len(result.Transcript.Content)
	}

	lengthScore := lengthBucket(contentLength)
	participantScore := participantBucket(len(result.Participants))

	actionItemScore := 60
	if len(result.ActionItems) > 0 {
		actionItemScore = 80
	}

	structureScore := 70
	if len(result.KeyTopics) > 0 && len(result.Decisions) > 0 {
		structureScore = 85
	}

	return (lengthScore + participantScore + actionItemScore + structureScore) / 4
}

func lengthBucket(length int) int {
	switch {
	case length < 500:
		return 40
	case length < 2000:
		return 70
	case length < 10000:
		return 90
	default:
		return 95
	}
}

// participantBucket rewards a normal-sized meeting; a crowd of speakers
// makes attribution less reliable, so large counts score lower.
func participantBucket(count int) int {
	switch {
	case count == 0:
		return 20
	case count == 1:
		return 50
	case count <= 8:
		return 90
	default:
		return 70
	}
}
