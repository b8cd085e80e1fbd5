package analyzer

import (
	"context"
	"time"

	"github.com/akhil-bm/legal-doc-analyzer/model"
)

// PDFTextExtractor converts raw PDF bytes into concatenated page text.
// Any error it returns is treated as a decode failure: the normalizer
// falls back to directly supplied plain text instead of failing.
type PDFTextExtractor interface {
	ExtractText(ctx context.Context, pdf []byte) (string, error)
}

// Analyzer runs the normalize -> extract -> assess -> render pipeline.
// It holds no per-document state; every call works on its own values.
type Analyzer struct {
	pdf PDFTextExtractor
	now func() time.Time
}

type Option func(*Analyzer)

// WithPDFExtractor wires the external PDF-to-text collaborator
func WithPDFExtractor(p PDFTextExtractor) Option {
	return func(a *Analyzer) { a.pdf = p }
}

// WithClock overrides the wall clock, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the full single-document pipeline. On failure the returned
// report is the single-line error rendering, never a partial report.
func (a *Analyzer) Analyze(ctx context.Context, rawText string, pdfBytes []byte) (*model.ExtractionResult, *model.RiskAssessment, string, error) {
	norm, err := a.Normalize(ctx, rawText, pdfBytes)
	if err != nil {
		return nil, nil, RenderError(err), err
	}

	extraction := Extract(norm)
	assessment := AssessRisk(extraction)
	report := RenderReport(assessment, extraction)

	return &extraction, &assessment, report, nil
}
