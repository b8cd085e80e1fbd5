package analyzer

import (
	"fmt"
	"strings"

	"github.com/akhil-bm/legal-doc-analyzer/model"
)

const (
	reportWidth       = 80
	reportTimeLayout  = "2006-01-02 15:04:05"
	reportDisclaimer  = "Disclaimer: This is an automated analysis. Consult legal counsel for professional advice before making any decisions."
	compareDisclaimer = "Disclaimer: This is an automated, high-level comparison. Consult legal counsel before choosing either document."
)

func separator() string {
	return strings.Repeat("=", reportWidth)
}

func sectionRule() string {
	return strings.Repeat("-", reportWidth)
}

// RenderError renders a failed pipeline run as a single error line.
// No report skeleton is produced for unresolvable state.
func RenderError(err error) string {
	return fmt.Sprintf("Analysis failed: %s", err.Error())
}

// RenderReport projects a risk assessment and its extraction data into the
// fixed-section text report. It introduces no new facts and reads no clock:
// the display timestamp is the one captured at normalization.
func RenderReport(assessment model.RiskAssessment, ext model.ExtractionResult) string {
	var b strings.Builder

	b.WriteString(separator() + "\n")
	b.WriteString("LEGAL DOCUMENT ANALYSIS REPORT\n")
	b.WriteString(separator() + "\n\n")

	b.WriteString("EXECUTIVE SUMMARY\n")
	b.WriteString(sectionRule() + "\n")
	fmt.Fprintf(&b, "Document Type : %s\n", ext.DocumentType)
	fmt.Fprintf(&b, "Risk Level    : %s\n", assessment.RiskLevel)
	fmt.Fprintf(&b, "Risk Score    : %d/10\n", assessment.RiskScore)
	fmt.Fprintf(&b, "Analysis Date : %s\n", ext.Source.ExtractedAt.Format(reportTimeLayout))
	fmt.Fprintf(&b, "Source        : %s (%d characters, %d words)\n\n",
		strings.ToUpper(string(ext.Source.SourceKind)), ext.Source.CharCount, ext.Source.WordCount)

	b.WriteString("KEY PARTIES & OBLIGATIONS\n")
	b.WriteString(sectionRule() + "\n")
	for _, o := range assessment.Obligations {
		fmt.Fprintf(&b, "* %s\n", o.Party)
		for _, d := range o.Duties {
			fmt.Fprintf(&b, "    - %s\n", d)
		}
	}
	b.WriteString("\n")

	b.WriteString("FINANCIAL TERMS\n")
	b.WriteString(sectionRule() + "\n")
	if len(ext.FinancialTerms) == 0 {
		b.WriteString("No financial terms identified.\n")
	} else {
		for _, t := range ext.FinancialTerms {
			fmt.Fprintf(&b, "* %s (context: %s)\n", t.Amount, t.Context)
		}
	}
	b.WriteString("\n")

	b.WriteString("IDENTIFIED RISKS\n")
	b.WriteString(sectionRule() + "\n")
	for i, r := range assessment.Risks {
		fmt.Fprintf(&b, "%d. [%s] %s: %s\n", i+1, r.Severity, r.Type, r.Description)
		fmt.Fprintf(&b, "   Impact: %s\n", r.Impact)
	}
	b.WriteString("\n")

	b.WriteString("RECOMMENDATIONS\n")
	b.WriteString(sectionRule() + "\n")
	for i, rec := range assessment.Recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}
	b.WriteString("\n")

	b.WriteString(separator() + "\n")
	b.WriteString(reportDisclaimer + "\n")
	b.WriteString(separator() + "\n")

	return b.String()
}
