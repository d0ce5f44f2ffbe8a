package entities

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptStatus represents the processing state of a transcript
type TranscriptStatus string

const (
	TranscriptStatusPending    TranscriptStatus = "pending"
	TranscriptStatusProcessing TranscriptStatus = "processing"
	TranscriptStatusCompleted  TranscriptStatus = "completed"
	TranscriptStatusFailed     TranscriptStatus = "failed"
	TranscriptStatusArchived   TranscriptStatus = "archived"
)

// Transcript represents one meeting transcript submitted for analysis.
// Content is immutable once analysis starts; only status transitions after.
type Transcript struct {
	ID           uuid.UUID        `json:"id"`
	Title        string           `json:"title"`
	Content      string           `json:"content"`
	MeetingDate  time.Time        `json:"meeting_date"`
	Duration     time.Duration    `json:"duration,omitempty"`
	FilePath     string           `json:"file_path,omitempty"`
	Participants []string         `json:"participants,omitempty"`
	Status       TranscriptStatus `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// NewTranscript creates a new Transcript entity in pending state
func NewTranscript(title, content string) *Transcript {
	now := time.Now()
	return &Transcript{
		ID:          uuid.New(),
		Title:       title,
		Content:     content,
		MeetingDate: now,
		Status:      TranscriptStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MarkProcessing transitions the transcript to processing
func (t *Transcript) MarkProcessing() {
	t.Status = TranscriptStatusProcessing
	t.UpdatedAt = time.Now()
}

// MarkCompleted transitions the transcript to completed
func (t *Transcript) MarkCompleted() {
	t.Status = TranscriptStatusCompleted
	t.UpdatedAt = time.Now()
}

// MarkFailed transitions the transcript to failed
func (t *Transcript) MarkFailed() {
	t.Status = TranscriptStatusFailed
	t.UpdatedAt = time.Now()
}

// MarkArchived transitions the transcript to archived
func (t *Transcript) MarkArchived() {
	t.Status = TranscriptStatusArchived
	t.UpdatedAt = time.Now()
}
