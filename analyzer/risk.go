package analyzer

import (
	"fmt"
	"strings"

	"github.com/akhil-bm/legal-doc-analyzer/model"
)

// CriticalClauses are the clause types whose absence is weighted as high
// severity
var CriticalClauses = []model.ClauseType{
	model.ClauseTermination,
	model.ClauseLiability,
	model.ClauseDisputeResolution,
}

// Scoring weights. Each missing critical clause adds weightCriticalMissing;
// a missing Liability clause additionally fires its own standalone rule.
// That double count is deliberate cumulative-risk behavior carried over
// from the original scoring rules.
const (
	weightCriticalMissing = 3
	weightNoParties       = 3
	weightNoFinancial     = 2
	weightNoDates         = 2
	weightNoLiability     = 3

	maxRiskScore         = 10
	maxObligationParties = 3
)

// AssessRisk turns an extraction result into obligations, findings,
// a clamped 0-10 score and recommendations. Pure and deterministic.
func AssessRisk(ext model.ExtractionResult) model.RiskAssessment {
	missing := missingCriticalClauses(ext)

	var risks []model.RiskFinding
	score := 0

	if len(missing) > 0 {
		score += weightCriticalMissing * len(missing)
		risks = append(risks, model.RiskFinding{
			Type:        "Missing Critical Clauses",
			Severity:    model.SeverityHigh,
			Description: "The following critical clauses were not found: " + joinClauseTypes(missing),
			Impact:      "Key protections may be absent if the relationship breaks down",
		})
	}

	if ext.PartyCount == 0 {
		score += weightNoParties
		risks = append(risks, model.RiskFinding{
			Type:        "Unidentified Parties",
			Severity:    model.SeverityHigh,
			Description: "No contracting parties could be identified in the document",
			Impact:      "Obligations cannot be attributed to anyone, making the agreement hard to enforce",
		})
	}

	if ext.FinancialCount == 0 {
		score += weightNoFinancial
		risks = append(risks, model.RiskFinding{
			Type:        "No Financial Terms",
			Severity:    model.SeverityMedium,
			Description: "No amounts, fees or payment terms were identified",
			Impact:      "Compensation expectations are undefined and open to dispute",
		})
	}

	if ext.DateCount == 0 {
		score += weightNoDates
		risks = append(risks, model.RiskFinding{
			Type:        "No Dates or Deadlines",
			Severity:    model.SeverityMedium,
			Description: "No dates, deadlines or effective periods were identified",
			Impact:      "The term of the agreement and its milestones are unclear",
		})
	}

	if !ext.HasClause(model.ClauseLiability) {
		score += weightNoLiability
		risks = append(risks, model.RiskFinding{
			Type:        "No Limitation of Liability",
			Severity:    model.SeverityHigh,
			Description: "The document does not limit either party's liability",
			Impact:      "Exposure to damages is unbounded",
		})
	}

	if len(risks) == 0 {
		risks = append(risks, model.RiskFinding{
			Type:        "Standard Document",
			Severity:    model.SeverityLow,
			Description: "The document contains the expected critical clauses and key terms",
			Impact:      "Low risk under the heuristics applied",
		})
	}

	if score > maxRiskScore {
		score = maxRiskScore
	}
	if score < 0 {
		score = 0
	}
	level := RiskLevel(score)

	return model.RiskAssessment{
		Obligations:     buildObligations(ext),
		Risks:           risks,
		MissingClauses:  missing,
		RiskScore:       score,
		RiskLevel:       level,
		Recommendations: buildRecommendations(ext, missing, level),
	}
}

// RiskLevel maps a clamped score to its severity band
func RiskLevel(score int) model.Severity {
	switch {
	case score >= 7:
		return model.SeverityHigh
	case score >= 4:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}

func missingCriticalClauses(ext model.ExtractionResult) []model.ClauseType {
	var missing []model.ClauseType
	for _, c := range CriticalClauses {
		if !ext.HasClause(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// buildObligations derives duties for the first parties in the display
// list from the Payment, Confidentiality and Termination flags. When no
// real party was identified the list holds the sentinel placeholder, so
// the report still has an obligations section to show.
func buildObligations(ext model.ExtractionResult) []model.Obligation {
	parties := ext.Parties
	if len(parties) > maxObligationParties {
		parties = parties[:maxObligationParties]
	}

	var duties []string
	if ext.HasClause(model.ClausePayment) {
		duties = append(duties, "Meet the payment obligations set out in the agreement")
	}
	if ext.HasClause(model.ClauseConfidentiality) {
		duties = append(duties, "Maintain the confidentiality of proprietary information")
	}
	if ext.HasClause(model.ClauseTermination) {
		duties = append(duties, "Observe the termination notice and wind-down requirements")
	}
	if len(duties) == 0 {
		duties = []string{"Perform the contractual duties described in the agreement"}
	}

	obligations := make([]model.Obligation, 0, len(parties))
	for _, p := range parties {
		obligations = append(obligations, model.Obligation{Party: p, Duties: duties})
	}
	return obligations
}

// buildRecommendations emits advice in a fixed order: missing-clause
// remediation, level-based counsel advice, party advice, financial advice,
// then the invariant closing line.
func buildRecommendations(ext model.ExtractionResult, missing []model.ClauseType, level model.Severity) []string {
	var recs []string

	if len(missing) > 0 {
		recs = append(recs, fmt.Sprintf("Add the missing critical clauses before signing: %s.", joinClauseTypes(missing)))
	}

	switch level {
	case model.SeverityHigh:
		recs = append(recs, "Engage legal counsel to renegotiate the highest-risk terms before proceeding.")
	case model.SeverityMedium:
		recs = append(recs, "Have legal counsel review the flagged risks before signing.")
	default:
		recs = append(recs, "The document appears standard; a routine legal review is still recommended.")
	}

	if ext.PartyCount < 2 {
		recs = append(recs, "Clearly identify all contracting parties by their full legal names.")
	}
	if ext.FinancialCount == 0 {
		recs = append(recs, "Specify the financial terms, including amounts and the payment schedule.")
	}

	recs = append(recs, "Always have legal counsel review contracts before execution.")
	return recs
}

func joinClauseTypes(types []model.ClauseType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
