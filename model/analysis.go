package model

import (
	"time"
)

// Analysis represents one stored document analysis
type Analysis struct {
	ID         string            `json:"id"`
	Filename   string            `json:"filename,omitempty"`
	Tenant     string            `json:"tenant"`
	SourceKind SourceKind        `json:"source_kind"`
	Status     string            `json:"status"` // pending, completed, failed
	PDFURL     string            `json:"pdf_url,omitempty"`
	Extraction *ExtractionResult `json:"extraction,omitempty"`
	Assessment *RiskAssessment   `json:"assessment,omitempty"`
	Report     string            `json:"report,omitempty"`
	ErrorMsg   string            `json:"error_msg,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// AnalysisStatus constants
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)
