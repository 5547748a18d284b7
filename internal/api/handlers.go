package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maktabah/rijal/internal/domain"
	"github.com/maktabah/rijal/internal/extractor"
	"github.com/maktabah/rijal/internal/processor"
	"github.com/maktabah/rijal/internal/telemetry"
)

// Handler handles HTTP requests for the extraction API
type Handler struct {
	extractor   *extractor.Extractor
	startVolume int
	telemetry   *telemetry.Provider
	logger      Logger
}

// Logger defines the logging interface
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// NewHandler creates a new API handler. telemetryProvider may be nil.
func NewHandler(ex *extractor.Extractor, startVolume int, telemetryProvider *telemetry.Provider, logger Logger) *Handler {
	return &Handler{
		extractor:   ex,
		startVolume: startVolume,
		telemetry:   telemetryProvider,
		logger:      logger,
	}
}

// ExtractRequest represents a single-page extraction request
type ExtractRequest struct {
	Text   string `json:"text" binding:"required"`
	Volume int    `json:"vol"`
	Page   int    `json:"page"`
}

// ExtractResponse represents a single-page extraction response
type ExtractResponse struct {
	Records []domain.NarratorRecord `json:"records"`
	Total   int                     `json:"total"`
}

// ExtractCorpusRequest represents a multi-page extraction request
type ExtractCorpusRequest struct {
	Pages []domain.Page `json:"pages" binding:"required,min=1"`
}

// ExtractCorpusResponse represents a multi-page extraction response
type ExtractCorpusResponse struct {
	Records []domain.NarratorRecord `json:"records"`
	Stats   *processor.Stats        `json:"stats"`
}

// LexiconsResponse lists the active extraction lexicons
type LexiconsResponse struct {
	Taadil      []domain.LexiconEntry `json:"taadil"`
	Jarh        []domain.LexiconEntry `json:"jarh"`
	StopPhrases []string              `json:"stop_phrases"`
}

// Extract handles POST /api/v1/extract.
// Narrator ids restart at N00001 for every request; the request is its own
// corpus. No volume filtering is applied to a single page.
func (h *Handler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid extract request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seq := extractor.NewSequence(1)
	src := domain.Source{Volume: req.Volume, Page: req.Page}
	records := h.extractor.ProcessPage(req.Text, src, seq)

	h.logger.Info("page extracted",
		"volume", req.Volume,
		"page", req.Page,
		"records", len(records),
	)

	c.JSON(http.StatusOK, ExtractResponse{
		Records: records,
		Total:   len(records),
	})
}

// ExtractCorpus handles POST /api/v1/extract/corpus.
// Pages run through the same sequential pipeline as a file-based run,
// including the volume threshold.
func (h *Handler) ExtractCorpus(c *gin.Context) {
	var req ExtractCorpusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid corpus request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proc := processor.New(h.extractor, processor.Options{
		StartVolume: h.startVolume,
		Telemetry:   h.telemetry,
	}, h.logger)

	records, stats, err := proc.Run(c.Request.Context(), req.Pages)
	if err != nil {
		h.logger.Error("corpus extraction failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ExtractCorpusResponse{
		Records: records,
		Stats:   stats,
	})
}

// GetLexicons handles GET /api/v1/lexicons
func (h *Handler) GetLexicons(c *gin.Context) {
	c.JSON(http.StatusOK, LexiconsResponse{
		Taadil:      h.extractor.TaadilLexicon().Entries(),
		Jarh:        h.extractor.JarhLexicon().Entries(),
		StopPhrases: h.extractor.StopPhrases(),
	})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ReadyCheck handles GET /ready
func (h *Handler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
