package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/akhil-bm/legal-doc-analyzer/model"
)

// Compare runs the full pipeline on two documents and renders a
// side-by-side differential report. The two runs are fully independent;
// if either side fails the error is returned tagged with its side.
// The runs are sequential on purpose: the pipeline is cheap and the
// correctness contract never depends on parallelism.
func (a *Analyzer) Compare(ctx context.Context, textA, textB string) (string, error) {
	extA, assessA, err := a.analyzeOne(ctx, textA)
	if err != nil {
		return "", fmt.Errorf("document A: %w", err)
	}
	extB, assessB, err := a.analyzeOne(ctx, textB)
	if err != nil {
		return "", fmt.Errorf("document B: %w", err)
	}
	return renderComparison(extA, assessA, extB, assessB), nil
}

func (a *Analyzer) analyzeOne(ctx context.Context, text string) (model.ExtractionResult, model.RiskAssessment, error) {
	norm, err := a.Normalize(ctx, text, nil)
	if err != nil {
		return model.ExtractionResult{}, model.RiskAssessment{}, err
	}
	ext := Extract(norm)
	return ext, AssessRisk(ext), nil
}

// clauseSets splits the taxonomy into both/only-A/only-B in canonical
// taxonomy order
func clauseSets(extA, extB model.ExtractionResult) (both, onlyA, onlyB []model.ClauseType) {
	for _, t := range model.ClauseTypes {
		inA := extA.HasClause(t)
		inB := extB.HasClause(t)
		switch {
		case inA && inB:
			both = append(both, t)
		case inA:
			onlyA = append(onlyA, t)
		case inB:
			onlyB = append(onlyB, t)
		}
	}
	return both, onlyA, onlyB
}

func renderComparison(extA model.ExtractionResult, assessA model.RiskAssessment, extB model.ExtractionResult, assessB model.RiskAssessment) string {
	var b strings.Builder

	b.WriteString(separator() + "\n")
	b.WriteString("CONTRACT COMPARISON REPORT\n")
	b.WriteString(separator() + "\n\n")

	b.WriteString("SIDE-BY-SIDE METRICS\n")
	b.WriteString(sectionRule() + "\n")
	row := func(metric, a, bb string) {
		fmt.Fprintf(&b, "%-15s | %-30s | %-30s\n", metric, a, bb)
	}
	row("Metric", "Document A", "Document B")
	row("Document Type", extA.DocumentType, extB.DocumentType)
	row("Risk Level", string(assessA.RiskLevel), string(assessB.RiskLevel))
	row("Risk Score", fmt.Sprintf("%d/10", assessA.RiskScore), fmt.Sprintf("%d/10", assessB.RiskScore))
	row("Word Count", fmt.Sprintf("%d", extA.Source.WordCount), fmt.Sprintf("%d", extB.Source.WordCount))
	row("Parties Found", fmt.Sprintf("%d", extA.PartyCount), fmt.Sprintf("%d", extB.PartyCount))
	b.WriteString("\n")

	b.WriteString("RISK COMPARISON\n")
	b.WriteString(sectionRule() + "\n")
	switch {
	case assessA.RiskScore < assessB.RiskScore:
		fmt.Fprintf(&b, "Document A carries LOWER risk (%d/10 vs %d/10).\n", assessA.RiskScore, assessB.RiskScore)
	case assessB.RiskScore < assessA.RiskScore:
		fmt.Fprintf(&b, "Document B carries LOWER risk (%d/10 vs %d/10).\n", assessB.RiskScore, assessA.RiskScore)
	default:
		fmt.Fprintf(&b, "Both documents carry EQUAL risk (%d/10).\n", assessA.RiskScore)
	}
	b.WriteString("\n")

	both, onlyA, onlyB := clauseSets(extA, extB)

	b.WriteString("CLAUSE COVERAGE\n")
	b.WriteString(sectionRule() + "\n")
	fmt.Fprintf(&b, "Present in both   : %s\n", clauseListOrNone(both))
	fmt.Fprintf(&b, "Only in Document A: %s\n", clauseListOrNone(onlyA))
	fmt.Fprintf(&b, "Only in Document B: %s\n", clauseListOrNone(onlyB))
	fmt.Fprintf(&b, "Missing critical clauses in Document A: %s\n", clauseListOrNone(assessA.MissingClauses))
	fmt.Fprintf(&b, "Missing critical clauses in Document B: %s\n", clauseListOrNone(assessB.MissingClauses))
	b.WriteString("\n")

	b.WriteString("RECOMMENDATIONS\n")
	b.WriteString(sectionRule() + "\n")
	recs := comparisonRecommendations(assessA, assessB, onlyA, onlyB)
	for i, rec := range recs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}
	b.WriteString("\n")

	b.WriteString(separator() + "\n")
	b.WriteString(compareDisclaimer + "\n")
	b.WriteString(separator() + "\n")

	return b.String()
}

func comparisonRecommendations(assessA, assessB model.RiskAssessment, onlyA, onlyB []model.ClauseType) []string {
	var recs []string

	switch {
	case assessA.RiskScore < assessB.RiskScore:
		recs = append(recs, "Document A appears more favorable under the risk heuristics.")
	case assessB.RiskScore < assessA.RiskScore:
		recs = append(recs, "Document B appears more favorable under the risk heuristics.")
	default:
		recs = append(recs, "Both documents score equally; weigh the clause differences instead.")
	}

	if len(onlyA) > 0 || len(onlyB) > 0 {
		recs = append(recs, "Review the clauses present in only one document before choosing either.")
	}
	if len(assessA.MissingClauses) > 0 || len(assessB.MissingClauses) > 0 {
		recs = append(recs, "Address the missing critical clauses on whichever side is selected.")
	}

	recs = append(recs, "Always have legal counsel perform a full review before execution.")
	return recs
}

func clauseListOrNone(types []model.ClauseType) string {
	if len(types) == 0 {
		return "(none)"
	}
	return joinClauseTypes(types)
}
