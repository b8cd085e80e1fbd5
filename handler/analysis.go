package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/akhil-bm/legal-doc-analyzer/analyzer"
	"github.com/akhil-bm/legal-doc-analyzer/middleware"
	"github.com/akhil-bm/legal-doc-analyzer/pkg/logger"
	"github.com/akhil-bm/legal-doc-analyzer/model"
	"github.com/akhil-bm/legal-doc-analyzer/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 32 << 20 // 32 MB

type AnalysisHandler struct {
	analyzer     *analyzer.Analyzer
	minioService *service.MinioService
	store        *service.AnalysisStore
}

func NewAnalysisHandler(an *analyzer.Analyzer, minioSvc *service.MinioService) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer:     an,
		minioService: minioSvc,
		store:        service.GetAnalysisStore(),
	}
}

type AnalyzeRequest struct {
	Text     string `json:"text" binding:"required"`
	Filename string `json:"filename"`
}

type CompareRequest struct {
	TextA string `json:"text_a" binding:"required"`
	TextB string `json:"text_b" binding:"required"`
}

// Analyze runs the full pipeline on plain text submitted as JSON
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	analysis := &model.Analysis{
		ID:         uuid.New().String(),
		Filename:   req.Filename,
		Tenant:     tenant,
		SourceKind: model.SourceText,
		Status:     model.StatusPending,
		CreatedAt:  time.Now(),
	}

	h.runPipeline(c, analysis, req.Text, nil)
}

// Upload accepts a PDF file, archives it and runs the pipeline on the
// extracted text
func (h *AnalysisHandler) Upload(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed"})
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	pdfBytes, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	analysis := &model.Analysis{
		ID:         uuid.New().String(),
		Filename:   header.Filename,
		Tenant:     tenant,
		SourceKind: model.SourcePDF,
		Status:     model.StatusPending,
		CreatedAt:  time.Now(),
	}

	// Archiving the original is best-effort: the analysis runs from the
	// bytes already in hand, so storage trouble never blocks it.
	objectName := fmt.Sprintf("%s/%s/%s", tenant, analysis.ID, header.Filename)
	if err := h.minioService.UploadDocument(c.Request.Context(), objectName, bytes.NewReader(pdfBytes), int64(len(pdfBytes)), "application/pdf"); err != nil {
		slog.Warn("failed to archive uploaded document",
			"analysis_id", analysis.ID,
			"error", err,
		)
	} else if url, err := h.minioService.GetPresignedURL(c.Request.Context(), objectName); err != nil {
		slog.Warn("failed to generate presigned URL",
			"analysis_id", analysis.ID,
			"error", err,
		)
	} else {
		analysis.PDFURL = url
	}

	h.runPipeline(c, analysis, "", pdfBytes)
}

// runPipeline runs the analyzer, stores the outcome and writes the response
func (h *AnalysisHandler) runPipeline(c *gin.Context, analysis *model.Analysis, rawText string, pdfBytes []byte) {
	ctx := context.WithValue(c.Request.Context(), logger.AnalysisIDKey, analysis.ID)
	c.Request = c.Request.WithContext(ctx)

	extraction, assessment, report, err := h.analyzer.Analyze(ctx, rawText, pdfBytes)
	if err != nil {
		analysis.Status = model.StatusFailed
		analysis.ErrorMsg = err.Error()
		analysis.Report = report
		h.store.Save(analysis)

		logger.Warn(ctx, "analysis failed", "error", err)

		status := http.StatusInternalServerError
		var docErr *analyzer.DocumentError
		if errors.As(err, &docErr) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{
			"id":     analysis.ID,
			"status": analysis.Status,
			"error":  err.Error(),
			"report": report,
		})
		return
	}

	analysis.Status = model.StatusCompleted
	analysis.Extraction = extraction
	analysis.Assessment = assessment
	analysis.Report = report
	h.store.Save(analysis)

	logger.Info(ctx, "analysis completed",
		"document_type", extraction.DocumentType,
		"risk_score", assessment.RiskScore,
		"risk_level", assessment.RiskLevel,
	)

	h.archiveReport(c, analysis)

	c.JSON(http.StatusOK, analysis)
}

// archiveReport stores the rendered report next to the source document.
// Failures are logged and ignored.
func (h *AnalysisHandler) archiveReport(c *gin.Context, analysis *model.Analysis) {
	objectName := fmt.Sprintf("%s/%s/report.md", analysis.Tenant, analysis.ID)
	if err := h.minioService.UploadReport(c.Request.Context(), objectName, analysis.Report); err != nil {
		slog.Warn("failed to archive report",
			"analysis_id", analysis.ID,
			"error", err,
		)
	}
}

// List returns all analyses for the current tenant
func (h *AnalysisHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	analyses := h.store.GetByTenant(tenant)

	// Summary view only; the full record is a separate fetch
	result := make([]gin.H, len(analyses))
	for i, a := range analyses {
		entry := gin.H{
			"id":          a.ID,
			"filename":    a.Filename,
			"source_kind": a.SourceKind,
			"status":      a.Status,
			"created_at":  a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			"updated_at":  a.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if a.Assessment != nil {
			entry["risk_level"] = a.Assessment.RiskLevel
			entry["risk_score"] = a.Assessment.RiskScore
		}
		result[i] = entry
	}

	c.JSON(http.StatusOK, gin.H{"analyses": result})
}

// Get returns a single analysis with extraction and assessment data
func (h *AnalysisHandler) Get(c *gin.Context) {
	analysis := h.findForTenant(c)
	if analysis == nil {
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// GetReport returns the rendered report as plain text
func (h *AnalysisHandler) GetReport(c *gin.Context) {
	analysis := h.findForTenant(c)
	if analysis == nil {
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(analysis.Report))
}

// Delete removes an analysis and its archived objects
func (h *AnalysisHandler) Delete(c *gin.Context) {
	analysis := h.findForTenant(c)
	if analysis == nil {
		return
	}

	h.store.Delete(analysis.ID)

	prefix := fmt.Sprintf("%s/%s", analysis.Tenant, analysis.ID)
	for _, objectName := range []string{
		prefix + "/" + analysis.Filename,
		prefix + "/report.md",
	} {
		if err := h.minioService.DeleteObject(c.Request.Context(), objectName); err != nil {
			slog.Warn("failed to delete archived object",
				"analysis_id", analysis.ID,
				"object", objectName,
				"error", err,
			)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Analysis deleted"})
}

// Compare runs the pipeline on two documents and returns the
// side-by-side report
func (h *AnalysisHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	report, err := h.analyzer.Compare(c.Request.Context(), req.TextA, req.TextB)
	if err != nil {
		status := http.StatusInternalServerError
		var docErr *analyzer.DocumentError
		if errors.As(err, &docErr) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// findForTenant fetches the analysis in the :id param, enforcing tenant
// ownership. Writes the 404 response itself when not found.
func (h *AnalysisHandler) findForTenant(c *gin.Context) *model.Analysis {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	analysis := h.store.Get(id)
	if analysis == nil || analysis.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return nil
	}
	return analysis
}
