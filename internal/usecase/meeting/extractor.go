package meeting

import (
	"regexp"
	"strings"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
)

// Speaker-prefix patterns, tried in priority order per line. The first match
// wins: "Name: utterance", "[Name]: utterance", "Name - utterance".
var speakerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([A-Za-z][A-Za-z\s.]*):\s*(.+)$`),
	regexp.MustCompile(`^\[([^\]]+)\]:\s*(.+)$`),
	regexp.MustCompile(`^([A-Za-z][A-Za-z\s.]*)\s+-\s+(.+)$`),
}

// validName accepts letters, spaces and dots only
var validName = regexp.MustCompile(`^[A-Za-z\s.]+$`)

// nameDenylist holds transcript-artifact words that disqualify a candidate
// speaker name. A line like "Meeting: starts now" must not produce a
// participant named "Meeting".
var nameDenylist = []string{
	"meeting", "agenda", "moderator", "transcript", "recording",
	"notes", "note", "topic", "action", "date", "time", "location",
	"subject", "attendees", "participants", "summary",
}

var organizerKeywords = []string{
	"let's get started", "lets get started", "welcome everyone",
	"next on the agenda", "moving on to", "let's wrap up", "any other business",
}

var presenterKeywords = []string{
	"i'll present", "let me share my screen", "let me show you",
	"as you can see", "next slide", "let me walk you through",
}

// capitalizedLabel matches "Capitalized Word:" style speaker markup lines
var capitalizedLabel = regexp.MustCompile(`^[A-Z][A-Za-z]*\s*[A-Za-z]*:`)

// sentenceEnd splits text into rough sentences
var sentenceEnd = regexp.MustCompile(`[.!?]`)

// ExtractParticipants scans the transcript for speaker lines and builds the
// deduplicated participant list. Deterministic, no LLM call. Participation
// levels are assigned in a second pass once every speaker is known.
func ExtractParticipants(text string) []*entities.Participant {
	byName := make(map[string]*entities.Participant)
	ordered := make([]*entities.Participant, 0)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, utterance := matchSpeakerLine(line)
		if name == "" {
			continue
		}

		p, exists := byName[name]
		if !exists {
			p = entities.NewParticipant(name)
			byName[name] = p
			ordered = append(ordered, p)
		}
		p.AddContribution(utterance)

		lower := strings.ToLower(utterance)
		if containsAny(lower, organizerKeywords) {
			p.IsOrganizer = true
		}
		if containsAny(lower, presenterKeywords) {
			p.IsPresenter = true
		}
	}

	entities.ClassifyParticipation(ordered)
	return ordered
}

func matchSpeakerLine(line string) (name, utterance string) {
	for _, pattern := range speakerPatterns {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if !isValidSpeakerName(candidate) {
			return "", ""
		}
		return candidate, strings.TrimSpace(m[2])
	}
	return "", ""
}

func isValidSpeakerName(name string) bool {
	if len(name) < 2 || len(name) > 50 {
		return false
	}
	if !validName.MatchString(name) {
		return false
	}

	lower := strings.ToLower(name)
	for _, word := range nameDenylist {
		if strings.Contains(lower, word) {
			return false
		}
	}
	return true
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// AssessTranscriptQuality scores a transcript 0-100 from length, speaker
// markup, and sentence structure. Pure heuristic, independent of any LLM
// output, and monotonic non-decreasing in input length for fixed shape.
func AssessTranscriptQuality(text string) int {
	score := 50

	if len(text) > 1000 {
		score += 20
	}
	if len(text) > 5000 {
		score += 10
	}

	if strings.Contains(text, ":") {
		score += 15
	}

	labeled := 0
	for _, line := range strings.Split(text, "\n") {
		if capitalizedLabel.MatchString(strings.TrimSpace(line)) {
			labeled++
		}
	}
	if labeled > 2 {
		score += 15
	}

	sentences := 0
	for _, s := range sentenceEnd.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences > 10 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}
