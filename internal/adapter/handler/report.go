package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/devpulse-team/devpulse/internal/adapter/dto"
	"github.com/devpulse-team/devpulse/internal/domain/entities"
	"github.com/devpulse-team/devpulse/internal/usecase/meeting"
	"github.com/devpulse-team/devpulse/internal/usecase/report"
)

// Report serves the latest development summary and ad-hoc transcript
// analysis over the optional local API.
type Report struct {
	analyzer *meeting.Service
	logger   *zap.Logger

	mu          sync.RWMutex
	latest      *entities.DevelopmentSummary
	generatedAt time.Time
}

// NewReport creates the report handler
func NewReport(analyzer *meeting.Service, logger *zap.Logger) *Report {
	return &Report{
		analyzer: analyzer,
		logger:   logger,
	}
}

// SetLatest publishes a freshly assembled summary to API readers
func (h *Report) SetLatest(summary *entities.DevelopmentSummary) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = summary
	h.generatedAt = time.Now()
}

// Latest returns the most recent development summary
func (h *Report) Latest(c echo.Context) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.latest == nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "no report has been generated in this session",
		})
	}

	return c.JSON(http.StatusOK, dto.LatestReportResponse{
		GeneratedAt: h.generatedAt,
		Summary:     h.latest,
		Rendered:    report.Render(h.latest),
	})
}

// AnalyzeTranscript runs the extraction pipeline over a posted transcript
func (h *Report) AnalyzeTranscript(c echo.Context) error {
	var req dto.AnalyzeTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	transcript := entities.NewTranscript(req.Title, req.Content)
	result := h.analyzer.AnalyzeTranscript(c.Request().Context(), transcript)

	if h.logger != nil {
		h.logger.Info("📄 API transcript analysis served",
			zap.String("transcript_id", transcript.ID.String()),
			zap.Int("confidence", result.ConfidenceScore),
		)
	}

	return c.JSON(http.StatusOK, dto.FromAnalysisResult(result))
}
