package model

import (
	"time"
)

// SourceKind identifies where the analyzed text came from
type SourceKind string

const (
	SourceText SourceKind = "text"
	SourcePDF  SourceKind = "pdf"
)

// NormalizedText is the cleaned document text plus extraction metadata.
// The timestamp is captured once per pipeline run and reused by the
// report renderer so a single analysis never shows two different times.
type NormalizedText struct {
	Text        string     `json:"text"`
	SourceKind  SourceKind `json:"source_kind"`
	ExtractedAt time.Time  `json:"extracted_at"`
	CharCount   int        `json:"char_count"`
	WordCount   int        `json:"word_count"`
}

// ClauseType is one of the fixed taxonomy of legally significant clauses
type ClauseType string

const (
	ClauseTermination          ClauseType = "Termination"
	ClauseLiability            ClauseType = "Liability"
	ClauseConfidentiality      ClauseType = "Confidentiality"
	ClausePayment              ClauseType = "Payment"
	ClauseIntellectualProperty ClauseType = "Intellectual Property"
	ClauseDisputeResolution    ClauseType = "Dispute Resolution"
	ClauseForceMajeure         ClauseType = "Force Majeure"
	ClauseNonCompete           ClauseType = "Non-Compete"
	ClauseWarranty             ClauseType = "Warranty"
)

// ClauseTypes lists the taxonomy in its canonical order. Set operations
// over clause types iterate this slice so output ordering stays stable.
var ClauseTypes = []ClauseType{
	ClauseTermination,
	ClauseLiability,
	ClauseConfidentiality,
	ClausePayment,
	ClauseIntellectualProperty,
	ClauseDisputeResolution,
	ClauseForceMajeure,
	ClauseNonCompete,
	ClauseWarranty,
}

// ClauseMatch records that a clause type was detected and which keyword
// variant hit first. A clause type with no match is simply absent.
type ClauseMatch struct {
	Type    ClauseType `json:"type"`
	Keyword string     `json:"keyword"`
}

// DateKind distinguishes plain dates from deadline-style mentions
type DateKind string

const (
	DateKindDate     DateKind = "date"
	DateKindDeadline DateKind = "deadline"
)

// DateMention is a literal matched date substring. Dates are not parsed
// into calendar types.
type DateMention struct {
	Text    string   `json:"text"`
	Kind    DateKind `json:"kind"`
	Context string   `json:"context"`
}

// FinancialTerm is a literal matched amount substring
type FinancialTerm struct {
	Amount  string `json:"amount"`
	Context string `json:"context"`
}

// ExtractionResult is everything the extractor found in one document.
// The *Count fields carry true uncapped totals; the slices are capped
// for display (5 parties, 10 dates, 10 financial terms), so risk logic
// must consult the counts, never the slice lengths.
type ExtractionResult struct {
	Source         NormalizedText  `json:"source"`
	Parties        []string        `json:"parties"`
	PartyCount     int             `json:"party_count"`
	Dates          []DateMention   `json:"dates"`
	DateCount      int             `json:"date_count"`
	FinancialTerms []FinancialTerm `json:"financial_terms"`
	FinancialCount int             `json:"financial_count"`
	Clauses        []ClauseMatch   `json:"clauses"`
	DocumentType   string          `json:"document_type"`
}

// HasClause reports whether the given clause type was detected
func (r *ExtractionResult) HasClause(t ClauseType) bool {
	for _, c := range r.Clauses {
		if c.Type == t {
			return true
		}
	}
	return false
}

// Severity level for risk findings and the overall risk level
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// Obligation lists the duties derived for one party from the clauses present
type Obligation struct {
	Party  string   `json:"party"`
	Duties []string `json:"duties"`
}

// RiskFinding is a single detected risk condition
type RiskFinding struct {
	Type        string   `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
}

// RiskAssessment is the terminal structured artifact of the pipeline.
// The report renderer is a pure projection of it and introduces no new facts.
type RiskAssessment struct {
	Obligations     []Obligation  `json:"obligations"`
	Risks           []RiskFinding `json:"risks"`
	MissingClauses  []ClauseType  `json:"missing_clauses"`
	RiskScore       int           `json:"risk_score"`
	RiskLevel       Severity      `json:"risk_level"`
	Recommendations []string      `json:"recommendations"`
}
