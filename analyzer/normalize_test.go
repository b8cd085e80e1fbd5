package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/akhil-bm/legal-doc-analyzer/model"
)

const validText = `This Service Agreement is entered into between CloudTech Solutions Inc. and Acme Manufacturing Corp., dated January 15, 2024.`

type fakePDFExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakePDFExtractor) ExtractText(ctx context.Context, pdf []byte) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestNormalizeRejectsShortText(t *testing.T) {
	a := New()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t  \n  "},
		{"under minimum", "Short agreement."},
		{"padding does not count", strings.Repeat(" ", 200) + "tiny" + strings.Repeat(" ", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Normalize(context.Background(), tt.text, nil)
			if err == nil {
				t.Fatal("Expected error for short text")
			}
			if !HasCode(err, CodeEmptyOrTooShort) {
				t.Errorf("Expected code %q, got %v", CodeEmptyOrTooShort, err)
			}
		})
	}
}

func TestNormalizeCleansText(t *testing.T) {
	a := New()

	raw := "This  Agreement\t\tis   made \r\n between\x00 the parties\x07 hereto and governs their entire relationship.\n\n\nSigned."
	norm, err := a.Normalize(context.Background(), raw, nil)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if strings.Contains(norm.Text, "\r") || strings.Contains(norm.Text, "\x00") {
		t.Error("Control characters should be stripped")
	}
	if strings.Contains(norm.Text, "  ") {
		t.Error("Space runs should be collapsed")
	}
	if strings.Contains(norm.Text, "\n\n") {
		t.Error("Newline runs should be collapsed")
	}
	if norm.SourceKind != model.SourceText {
		t.Errorf("Expected source kind text, got %s", norm.SourceKind)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	a := New()

	raw := "First clause here. \r\n Second   clause\twith spacing.\n\n\nThird clause ends the agreement text."
	first, err := a.Normalize(context.Background(), raw, nil)
	if err != nil {
		t.Fatalf("First normalize failed: %v", err)
	}
	second, err := a.Normalize(context.Background(), first.Text, nil)
	if err != nil {
		t.Fatalf("Second normalize failed: %v", err)
	}

	if first.Text != second.Text {
		t.Errorf("Cleaning is not a fixed point:\nfirst : %q\nsecond: %q", first.Text, second.Text)
	}
	if first.CharCount != second.CharCount || first.WordCount != second.WordCount {
		t.Error("Counts changed on re-normalization")
	}
}

func TestNormalizeCounts(t *testing.T) {
	a := New()

	norm, err := a.Normalize(context.Background(), validText, nil)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if norm.CharCount != len(norm.Text) {
		t.Errorf("Expected char count %d, got %d", len(norm.Text), norm.CharCount)
	}
	if norm.WordCount != len(strings.Fields(norm.Text)) {
		t.Errorf("Expected word count %d, got %d", len(strings.Fields(norm.Text)), norm.WordCount)
	}
}

func TestNormalizePDFPrecedence(t *testing.T) {
	pdfText := "This agreement between the provider and the client covers all services rendered during the term."
	fake := &fakePDFExtractor{text: pdfText}
	a := New(WithPDFExtractor(fake))

	norm, err := a.Normalize(context.Background(), validText, []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if fake.calls != 1 {
		t.Errorf("Expected 1 extractor call, got %d", fake.calls)
	}
	if norm.SourceKind != model.SourcePDF {
		t.Errorf("Expected source kind pdf, got %s", norm.SourceKind)
	}
	if !strings.Contains(norm.Text, "provider") {
		t.Error("Expected decoded PDF text to take precedence over plain text")
	}
}

func TestNormalizePDFFallbacks(t *testing.T) {
	tests := []struct {
		name string
		fake *fakePDFExtractor
	}{
		{"decode error", &fakePDFExtractor{err: errors.New("corrupt xref table")}},
		{"empty decode", &fakePDFExtractor{text: "   \n  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(WithPDFExtractor(tt.fake))

			norm, err := a.Normalize(context.Background(), validText, []byte("%PDF-1.4"))
			if err != nil {
				t.Fatalf("Expected fallback to plain text, got error: %v", err)
			}
			if norm.SourceKind != model.SourceText {
				t.Errorf("Expected source kind text after fallback, got %s", norm.SourceKind)
			}
			if !strings.Contains(norm.Text, "CloudTech") {
				t.Error("Expected plain text content after fallback")
			}
		})
	}
}

func TestNormalizeNoPDFExtractorConfigured(t *testing.T) {
	a := New()

	// PDF bytes with no extractor wired falls through to the plain text
	norm, err := a.Normalize(context.Background(), validText, []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if norm.SourceKind != model.SourceText {
		t.Errorf("Expected source kind text, got %s", norm.SourceKind)
	}
}

func TestNormalizeClockInjection(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	a := New(WithClock(func() time.Time { return fixed }))

	norm, err := a.Normalize(context.Background(), validText, nil)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if !norm.ExtractedAt.Equal(fixed) {
		t.Errorf("Expected timestamp %v, got %v", fixed, norm.ExtractedAt)
	}
}
