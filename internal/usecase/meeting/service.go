package meeting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
	"github.com/devpulse-team/devpulse/pkg/llm"
)

// Service orchestrates the full extraction pipeline for one transcript
type Service struct {
	llm    llm.Completer
	parser *Parser
	logger *zap.Logger
}

// NewService constructs a meeting analysis service
func NewService(completer llm.Completer, logger *zap.Logger) *Service {
	return &Service{
		llm:    completer,
		parser: NewParser(),
		logger: logger,
	}
}

// AnalyzeTranscript runs the full pipeline and always returns a result,
// never an error: failed sub-extractions degrade to empty fields with a
// warning, and an unrecoverable failure yields a partial result with the
// confidence score forced to zero.
func (s *Service) AnalyzeTranscript(ctx context.Context, transcript *entities.Transcript) *entities.MeetingAnalysisResult {
	started := time.Now()
	result := entities.NewMeetingAnalysisResult(transcript)

	defer func() {
		if p := recover(); p != nil {
			result.AddWarning(fmt.Sprintf("analysis aborted: %v", p))
			result.ConfidenceScore = 0
			transcript.MarkFailed()
			if s.logger != nil {
				s.logger.Error("❌ Transcript analysis panicked",
					zap.String("transcript_id", transcript.ID.String()),
					zap.Any("panic", p),
				)
			}
		}
		result.ProcessingDuration = time.Since(started)
	}()

	transcript.MarkProcessing()

	if s.logger != nil {
		s.logger.Info("🔍 Analyzing transcript",
			zap.String("transcript_id", transcript.ID.String()),
			zap.String("title", transcript.Title),
			zap.Int("content_length", len(transcript.Content)),
		)
	}

	// Deterministic passes first: no LLM involved
	result.Participants = ExtractParticipants(transcript.Content)
	result.TranscriptQuality = AssessTranscriptQuality(transcript.Content)

	names := make([]string, 0, len(result.Participants))
	for _, p := range result.Participants {
		names = append(names, p.Name)
	}
	transcript.Participants = names

	result.Summary = s.extractSummary(ctx, transcript.Content, result)
	result.ActionItems = s.extractActionItems(ctx, transcript.Content, result)
	for _, item := range result.ActionItems {
		item.TranscriptID = transcript.ID
	}

	// Topics, decisions, questions, quotes, and sentiment are independent
	// reads of the same transcript; fan them out and keep field ordering
	// fixed regardless of completion order.
	s.extractIndependentFields(ctx, transcript.Content, result)

	result.ConfidenceScore = CalculateConfidenceScore(result)
	transcript.MarkCompleted()

	if s.logger != nil {
		s.logger.Info("✅ Transcript analysis complete",
			zap.String("transcript_id", transcript.ID.String()),
			zap.Int("participants", len(result.Participants)),
			zap.Int("action_items", len(result.ActionItems)),
			zap.Int("confidence", result.ConfidenceScore),
			zap.Int("quality", result.TranscriptQuality),
			zap.Duration("took", time.Since(started)),
		)
	}

	return result
}

func (s *Service) extractSummary(ctx context.Context, content string, result *entities.MeetingAnalysisResult) string {
	response, err := s.llm.Complete(ctx, fmt.Sprintf(summaryPrompt, content))
	if err != nil {
		result.AddWarning(fmt.Sprintf("summary extraction failed: %v", err))
		return ""
	}
	return stripCodeFences(response)
}

func (s *Service) extractActionItems(ctx context.Context, content string, result *entities.MeetingAnalysisResult) []*entities.ActionItem {
	response, err := s.llm.Complete(ctx, fmt.Sprintf(actionItemsPrompt, content))
	if err != nil {
		result.AddWarning(fmt.Sprintf("action item extraction failed: %v", err))
		return []*entities.ActionItem{}
	}
	return s.parser.ParseActionItems(response)
}

// fieldResult carries one independent extraction back to the aggregator
type fieldResult struct {
	field     string
	list      []string
	sentiment entities.Sentiment
	err       error
}

func (s *Service) extractIndependentFields(ctx context.Context, content string, result *entities.MeetingAnalysisResult) {
	type job struct {
		field    string
		prompt   string
		sentinel string
		cap      int
	}

	jobs := []job{
		{field: "key_topics", prompt: keyTopicsPrompt, cap: 10},
		{field: "decisions", prompt: decisionsPrompt, sentinel: SentinelNoDecisions, cap: 10},
		{field: "open_questions", prompt: openQuestionsPrompt, sentinel: SentinelNoQuestions, cap: 10},
		{field: "quotes", prompt: quotesPrompt, sentinel: SentinelNoQuotes, cap: 5},
		{field: "sentiment", prompt: sentimentPrompt},
	}

	results := make(chan fieldResult, len(jobs))
	var wg sync.WaitGroup

	for _, j := range jobs {
		wg.Add(1)
		go func(j job) {
			defer wg.Done()

			response, err := s.llm.Complete(ctx, fmt.Sprintf(j.prompt, content))
			if err != nil {
				results <- fieldResult{field: j.field, err: err}
				return
			}

			if j.field == "sentiment" {
				results <- fieldResult{field: j.field, sentiment: s.parser.ParseSentiment(response)}
				return
			}
			results <- fieldResult{field: j.field, list: s.parser.ParseList(response, j.sentinel, j.cap)}
		}(j)
	}

	wg.Wait()
	close(results)

	for r := range results {
		if r.err != nil {
			result.AddWarning(fmt.Sprintf("%s extraction failed: %v", r.field, r.err))
			continue
		}
		switch r.field {
		case "key_topics":
			result.KeyTopics = r.list
		case "decisions":
			result.Decisions = r.list
		case "open_questions":
			result.OpenQuestions = r.list
		case "quotes":
			result.Quotes = r.list
		case "sentiment":
			result.Sentiment = r.sentiment
		}
	}
}

// FocusSummary re-derives a shorter leadership summary scoped to one area
// (for example "Security" or "Performance") from a metrics snapshot.
func (s *Service) FocusSummary(ctx context.Context, area, metricsSnapshot string) (string, error) {
	response, err := s.llm.Complete(ctx, fmt.Sprintf(focusSummaryPrompt, area, metricsSnapshot))
	if err != nil {
		return "", err
	}
	return stripCodeFences(response), nil
}
