package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/akhil-bm/legal-doc-analyzer/model"
)

const terminationOnlyText = `This agreement may be subject to termination by either signatory upon thirty days notice to the other signatory.`

func TestCompareIdenticalDocuments(t *testing.T) {
	a := New()

	report, err := a.Compare(context.Background(), serviceAgreementText, serviceAgreementText)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if !strings.Contains(report, "CONTRACT COMPARISON REPORT") {
		t.Error("Expected comparison report header")
	}
	if !strings.Contains(report, "Both documents carry EQUAL risk (6/10).") {
		t.Error("Identical documents should carry equal risk")
	}
	if !strings.Contains(report, "Only in Document A: (none)") {
		t.Error("Expected empty only-in-A set")
	}
	if !strings.Contains(report, "Only in Document B: (none)") {
		t.Error("Expected empty only-in-B set")
	}
}

func TestCompareDifferingDocuments(t *testing.T) {
	a := New()

	report, err := a.Compare(context.Background(), serviceAgreementText, terminationOnlyText)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if !strings.Contains(report, "Document A carries LOWER risk") {
		t.Error("Expected document A flagged as lower risk")
	}
	if !strings.Contains(report, "Only in Document A: Liability, Confidentiality, Payment") {
		t.Error("Expected clause types only in document A")
	}
	if !strings.Contains(report, "Only in Document B: Termination") {
		t.Error("Expected clause types only in document B")
	}
	if !strings.Contains(report, "Missing critical clauses in Document A: Termination, Dispute Resolution") {
		t.Error("Expected missing critical clauses for document A")
	}
}

func TestCompareSymmetry(t *testing.T) {
	a := New()

	forward, err := a.Compare(context.Background(), serviceAgreementText, terminationOnlyText)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	reversed, err := a.Compare(context.Background(), terminationOnlyText, serviceAgreementText)
	if err != nil {
		t.Fatalf("Reversed compare failed: %v", err)
	}

	if !strings.Contains(forward, "Document A carries LOWER risk") {
		t.Error("Expected A lower in forward comparison")
	}
	if !strings.Contains(reversed, "Document B carries LOWER risk") {
		t.Error("Expected B lower in reversed comparison")
	}
}

func TestCompareSideTaggedErrors(t *testing.T) {
	a := New()

	_, err := a.Compare(context.Background(), "tiny", serviceAgreementText)
	if err == nil || !strings.HasPrefix(err.Error(), "document A:") {
		t.Errorf("Expected document A error, got %v", err)
	}
	if !HasCode(err, CodeEmptyOrTooShort) {
		t.Error("Wrapped error should preserve the document error code")
	}

	_, err = a.Compare(context.Background(), serviceAgreementText, "tiny")
	if err == nil || !strings.HasPrefix(err.Error(), "document B:") {
		t.Errorf("Expected document B error, got %v", err)
	}
}

func TestClauseSets(t *testing.T) {
	extA := model.ExtractionResult{Clauses: []model.ClauseMatch{
		{Type: model.ClauseWarranty},
		{Type: model.ClauseTermination},
		{Type: model.ClauseLiability},
	}}
	extB := model.ExtractionResult{Clauses: []model.ClauseMatch{
		{Type: model.ClauseLiability},
		{Type: model.ClausePayment},
	}}

	both, onlyA, onlyB := clauseSets(extA, extB)

	if len(both) != 1 || both[0] != model.ClauseLiability {
		t.Errorf("Expected both = [Liability], got %v", both)
	}
	// Output follows taxonomy order, not detection order
	if len(onlyA) != 2 || onlyA[0] != model.ClauseTermination || onlyA[1] != model.ClauseWarranty {
		t.Errorf("Expected onlyA = [Termination, Warranty], got %v", onlyA)
	}
	if len(onlyB) != 1 || onlyB[0] != model.ClausePayment {
		t.Errorf("Expected onlyB = [Payment], got %v", onlyB)
	}
}
