package entities

// ParticipationLevel classifies how active a participant was relative to the
// rest of the group. Derived after all participants are known.
type ParticipationLevel string

const (
	ParticipationSilent       ParticipationLevel = "silent"
	ParticipationMinimal      ParticipationLevel = "minimal"
	ParticipationActive       ParticipationLevel = "active"
	ParticipationHighlyActive ParticipationLevel = "highly_active"
)

// Participant represents one speaker found in a transcript
type Participant struct {
	Name          string             `json:"name"`
	Role          string             `json:"role,omitempty"`
	SpeakingTurns int                `json:"speaking_turns"`
	Level         ParticipationLevel `json:"participation_level"`
	IsOrganizer   bool               `json:"is_organizer"`
	IsPresenter   bool               `json:"is_presenter"`
	Contributions []string           `json:"contributions,omitempty"`
}

// NewParticipant creates a participant with no recorded activity yet
func NewParticipant(name string) *Participant {
	return &Participant{
		Name:  name,
		Level: ParticipationActive,
	}
}

// AddContribution records one utterance and bumps the speaking-turn count
func (p *Participant) AddContribution(text string) {
	p.SpeakingTurns++
	p.Contributions = append(p.Contributions, text)
}

// ClassifyParticipation assigns the participation level relative to the group
// average speaking-turn count. Must run only after all participants are known.
func ClassifyParticipation(participants []*Participant) {
	if len(participants) == 0 {
		return
	}

	total := 0
	for _, p := range participants {
		total += p.SpeakingTurns
	}
	average := float64(total) / float64(len(participants))

	for _, p := range participants {
		p.Level = DetermineParticipationLevel(p.SpeakingTurns, average)
	}
}

// DetermineParticipationLevel maps a speaking-turn count to a level given the
// group average: 0 turns is silent, below half the average is minimal, above
// 1.5x the average is highly active, everything else is active.
func DetermineParticipationLevel(turns int, average float64) ParticipationLevel {
	switch {
	case turns == 0:
		return ParticipationSilent
	case average > 0 && float64(turns) < average*0.5:
		return ParticipationMinimal
	case average > 0 && float64(turns) > average*1.5:
		return ParticipationHighlyActive
	default:
		return ParticipationActive
	}
}
