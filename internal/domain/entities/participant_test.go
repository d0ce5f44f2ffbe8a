package entities

import (
	"testing"
)

func TestDetermineParticipationLevel(t *testing.T) {
	// Five speakers with turns [0, 2, 2, 2, 10], group average 3.2. The
	// minimal cutoff is half the average (1.6), so two turns is Active.
	turns := []int{0, 2, 2, 2, 10}
	average := 3.2

	expected := []ParticipationLevel{
		ParticipationSilent,
		ParticipationActive,
		ParticipationActive,
		ParticipationActive,
		ParticipationHighlyActive,
	}

	if got := DetermineParticipationLevel(1, average); got != ParticipationMinimal {
		t.Errorf("turns=1: got %s, want %s", got, ParticipationMinimal)
	}

	for i, n := range turns {
		if got := DetermineParticipationLevel(n, average); got != expected[i] {
			t.Errorf("turns=%d: got %s, want %s", n, got, expected[i])
		}
	}
}

func TestClassifyParticipation(t *testing.T) {
	participants := []*Participant{
		{Name: "Alice", SpeakingTurns: 0},
		{Name: "Bob", SpeakingTurns: 2},
		{Name: "Carol", SpeakingTurns: 10},
	}

	ClassifyParticipation(participants)

	if participants[0].Level != ParticipationSilent {
		t.Errorf("Alice: got %s, want silent", participants[0].Level)
	}
	if participants[2].Level != ParticipationHighlyActive {
		t.Errorf("Carol: got %s, want highly_active", participants[2].Level)
	}
}

func TestAddContribution(t *testing.T) {
	p := NewParticipant("Alice")
	p.AddContribution("first point")
	p.AddContribution("second point")

	if p.SpeakingTurns != 2 {
		t.Errorf("got %d speaking turns, want 2", p.SpeakingTurns)
	}
	if len(p.Contributions) != 2 {
		t.Errorf("got %d contributions, want 2", len(p.Contributions))
	}
}
