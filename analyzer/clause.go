package analyzer

import (
	"strings"

	"github.com/akhil-bm/legal-doc-analyzer/model"
)

// clauseRule maps a clause type to its keyword variants, most specific
// first. The first variant found in the text is the one recorded.
type clauseRule struct {
	Type     model.ClauseType
	Keywords []string
}

var clauseRules = []clauseRule{
	{model.ClauseTermination, []string{"termination", "terminate", "expiration of this agreement"}},
	{model.ClauseLiability, []string{"limitation of liability", "liability", "liable"}},
	{model.ClauseConfidentiality, []string{"confidential", "non-disclosure", "nondisclosure"}},
	{model.ClausePayment, []string{"payment", "compensation", "fee", "invoice"}},
	{model.ClauseIntellectualProperty, []string{"intellectual property", "copyright", "patent", "trademark"}},
	{model.ClauseDisputeResolution, []string{"dispute resolution", "arbitration", "mediation", "governing law"}},
	{model.ClauseForceMajeure, []string{"force majeure", "act of god", "acts of god"}},
	{model.ClauseNonCompete, []string{"non-compete", "noncompete", "non-competition", "restraint of trade"}},
	{model.ClauseWarranty, []string{"warranty", "warranties", "guarantee", "disclaimer"}},
}

// detectClauses tests every taxonomy type against the lowercased text.
// A type with no keyword hit is simply absent from the result, which
// downstream risk logic reads as "not detected", not "confirmed absent".
func detectClauses(lower string) []model.ClauseMatch {
	var matches []model.ClauseMatch
	for _, rule := range clauseRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				matches = append(matches, model.ClauseMatch{Type: rule.Type, Keyword: kw})
				break
			}
		}
	}
	return matches
}

// DocumentTypeGeneral is the classification fallback when no rule matches
const DocumentTypeGeneral = "General Contract/Agreement"

// documentTypeRule classifies by keyword conjunctions: the rule matches
// when any one of its groups has all keywords present. Rules are checked
// in priority order and the first match wins.
type documentTypeRule struct {
	Name   string
	Groups [][]string
}

var documentTypeRules = []documentTypeRule{
	{"Employment Agreement", [][]string{{"employment agreement"}, {"employee", "employer"}}},
	{"Service Agreement", [][]string{{"service agreement"}, {"services", "service provider"}}},
	{"Purchase Agreement", [][]string{{"purchase agreement"}, {"purchase", "buyer"}, {"purchase", "seller"}}},
	{"Lease Agreement", [][]string{{"lease agreement"}, {"lease", "landlord"}, {"lease", "tenant"}}},
	{"Non-Disclosure Agreement (NDA)", [][]string{{"non-disclosure agreement"}, {"nondisclosure agreement"}, {"confidentiality agreement"}}},
	{"Partnership Agreement", [][]string{{"partnership agreement"}, {"partnership", "partners"}}},
	{"Software License Agreement", [][]string{{"software license"}, {"license agreement", "software"}}},
}

// classifyDocumentType is total: every input lands in exactly one of the
// eight categories
func classifyDocumentType(lower string) string {
	for _, rule := range documentTypeRules {
		for _, group := range rule.Groups {
			if containsAll(lower, group) {
				return rule.Name
			}
		}
	}
	return DocumentTypeGeneral
}

func containsAll(text string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(text, kw) {
			return false
		}
	}
	return true
}
