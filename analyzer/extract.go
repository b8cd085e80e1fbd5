package analyzer

import (
	"regexp"
	"strings"

	"github.com/akhil-bm/legal-doc-analyzer/model"
)

// Caps on retained matches. True totals are carried separately in the
// extraction result for risk logic.
const (
	maxParties        = 5
	maxDates          = 10
	maxFinancialTerms = 10
)

// PartyPlaceholder is the sentinel shown when no party pattern matched.
// It is display-only; PartyCount stays 0 so risk logic is not fooled.
const PartyPlaceholder = "Unidentified parties"

// contextWindow is how many characters around a match are kept as context
const contextWindow = 40

var (
	// "between X and Y" / "by and between X and Y", both sides captured
	betweenPartiesRE = regexp.MustCompile(`(?i)\b(?:by\s+and\s+between|between)\s+(.{2,100}?)\s+and\s+(.{2,100}?)(?:\s*[,.;]|\s+(?:dated|effective|whereby|regarding|for)\b|$)`)

	// `"Acme Corp" (the Client)` style quoted names with a role label
	quotedRolePartyRE = regexp.MustCompile(`(?i)"([^"\n]{2,100})"\s*\((?:the\s+)?(?:client|provider|vendor|contractor|party|company|licensor|licensee|landlord|tenant|partner)\)`)

	// "Client: Acme Corp" style labeled lines
	roleLinePartyRE = regexp.MustCompile(`(?i)\b(?:client|provider|vendor|contractor|company|licensor|licensee|landlord|tenant|partner)\s*:\s*([^\n,;]{2,100})`)

	numericDateRE = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
	monthDateRE   = regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`)
	deadlineRE    = regexp.MustCompile(`(?i)(?:\bdeadline\b|\bdue\s+(?:date|on|by)\b|\bno\s+later\s+than\b|\bwithin\s+\d+\s+(?:business\s+|calendar\s+)?days\b|\bexpires?\s+on\b)[^.!?\n]{0,80}`)

	dollarAmountRE = regexp.MustCompile(`(?i)\$\s?\d[\d,]*(?:\.\d+)?(?:\s?(?:USD|dollars))?`)
	// keyword-adjacent bare amounts; a "$" between keyword and digits is
	// deliberately rejected so dollar amounts are not counted twice
	keywordAmountRE = regexp.MustCompile(`(?i)\b(?:amount|payment|fee|cost|price|compensation|salary|rent|total|sum)s?\s*(?:of|:)?\s*\d[\d,]*(?:\.\d+)?\b`)
)

// Extract applies the party, date, financial, clause and document-type
// pattern families to normalized text. It is pure: same input, same output.
func Extract(src model.NormalizedText) model.ExtractionResult {
	text := src.Text
	lower := strings.ToLower(text)

	parties, partyCount := extractParties(text)
	dates, dateCount := extractDates(text)
	terms, termCount := extractFinancialTerms(text)

	return model.ExtractionResult{
		Source:         src,
		Parties:        parties,
		PartyCount:     partyCount,
		Dates:          dates,
		DateCount:      dateCount,
		FinancialTerms: terms,
		FinancialCount: termCount,
		Clauses:        detectClauses(lower),
		DocumentType:   classifyDocumentType(lower),
	}
}

// extractParties returns the capped display list and the true deduplicated
// count. Zero matches yield the sentinel placeholder with count 0.
func extractParties(text string) ([]string, int) {
	var ordered []string
	seen := make(map[string]bool)

	add := func(raw string) {
		name := cleanPartyName(raw)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		ordered = append(ordered, name)
	}

	for _, m := range betweenPartiesRE.FindAllStringSubmatch(text, -1) {
		add(m[1])
		add(m[2])
	}
	for _, m := range quotedRolePartyRE.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range roleLinePartyRE.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}

	count := len(ordered)
	if count == 0 {
		return []string{PartyPlaceholder}, 0
	}
	if count > maxParties {
		ordered = ordered[:maxParties]
	}
	return ordered, count
}

// cleanPartyName trims whitespace and strips trailing periods and commas
func cleanPartyName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ".,")
	return strings.TrimSpace(s)
}

func extractDates(text string) ([]model.DateMention, int) {
	var dates []model.DateMention

	for _, re := range []*regexp.Regexp{numericDateRE, monthDateRE} {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			dates = append(dates, model.DateMention{
				Text:    text[loc[0]:loc[1]],
				Kind:    model.DateKindDate,
				Context: contextAround(text, loc[0], loc[1]),
			})
		}
	}
	for _, loc := range deadlineRE.FindAllStringIndex(text, -1) {
		dates = append(dates, model.DateMention{
			Text:    strings.TrimSpace(text[loc[0]:loc[1]]),
			Kind:    model.DateKindDeadline,
			Context: contextAround(text, loc[0], loc[1]),
		})
	}

	count := len(dates)
	if count > maxDates {
		dates = dates[:maxDates]
	}
	return dates, count
}

func extractFinancialTerms(text string) ([]model.FinancialTerm, int) {
	var terms []model.FinancialTerm

	for _, re := range []*regexp.Regexp{dollarAmountRE, keywordAmountRE} {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			terms = append(terms, model.FinancialTerm{
				Amount:  strings.TrimSpace(text[loc[0]:loc[1]]),
				Context: contextAround(text, loc[0], loc[1]),
			})
		}
	}

	count := len(terms)
	if count > maxFinancialTerms {
		terms = terms[:maxFinancialTerms]
	}
	return terms, count
}

// contextAround returns the match plus up to contextWindow characters on
// each side, clipped at text boundaries
func contextAround(text string, start, end int) string {
	from := start - contextWindow
	if from < 0 {
		from = 0
	}
	to := end + contextWindow
	if to > len(text) {
		to = len(text)
	}
	return strings.TrimSpace(text[from:to])
}
