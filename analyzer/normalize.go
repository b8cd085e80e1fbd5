package analyzer

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/akhil-bm/legal-doc-analyzer/model"
)

// minDocumentChars is the sole validation gate: trimmed input shorter
// than this fails normalization.
const minDocumentChars = 50

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\n+`)
)

// Normalize cleans raw document text and records extraction metadata.
// When PDF bytes are supplied and the collaborator decodes them, the
// decoded text takes precedence over rawText; a decode failure falls
// back to rawText. The wall clock is read exactly once here and the
// timestamp travels with the result for the rest of the pipeline.
func (a *Analyzer) Normalize(ctx context.Context, rawText string, pdfBytes []byte) (model.NormalizedText, error) {
	text := rawText
	kind := model.SourceText

	if len(pdfBytes) > 0 && a.pdf != nil {
		decoded, err := a.pdf.ExtractText(ctx, pdfBytes)
		if err != nil {
			slog.Warn("pdf text extraction failed, falling back to plain text", "error", err)
		} else if strings.TrimSpace(decoded) != "" {
			text = decoded
			kind = model.SourcePDF
		}
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < minDocumentChars {
		return model.NormalizedText{}, &DocumentError{
			Code:    CodeEmptyOrTooShort,
			Message: "document text is too short or empty; provide a valid legal document (text or PDF)",
		}
	}

	cleaned := cleanText(text)

	return model.NormalizedText{
		Text:        cleaned,
		SourceKind:  kind,
		ExtractedAt: a.now(),
		CharCount:   utf8.RuneCountInString(cleaned),
		WordCount:   len(strings.Fields(cleaned)),
	}, nil
}

// cleanText strips control characters and collapses whitespace runs.
// Control characters (0x00-0x1F, 0x7F-0x9F) are removed before the
// collapse, except tab (folded into the space collapse) and newline
// (collapsed to single newlines and retained), so the result is a fixed
// point: cleaning already-clean text changes nothing.
func cleanText(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
			return -1
		}
		return r
	}, s)
	s = spaceRuns.ReplaceAllString(s, " ")
	s = newlineRuns.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
