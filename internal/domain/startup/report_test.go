package startup

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewReport_CopiesAndFillsFacts(t *testing.T) {
	in := map[Fact]bool{FactSecurityChain: true, Fact("unknown"): true}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r := NewReport(at, 7, in)

	in[FactDataAccessLayer] = true

	want := map[Fact]bool{
		FactDataAccessLayer:   false,
		FactSecurityChain:     true,
		FactRequestDispatcher: false,
	}
	if diff := cmp.Diff(want, r.Facts()); diff != "" {
		t.Fatalf("facts mismatch (-want +got):\n%s", diff)
	}
	if r.Total() != 7 || !r.CreatedAt().Equal(at) {
		t.Fatalf("total=%d createdAt=%v", r.Total(), r.CreatedAt())
	}
}

func TestReport_FactsReturnsCopy(t *testing.T) {
	r := NewReport(time.Time{}, 1, map[Fact]bool{FactRequestDispatcher: true})
	m := r.Facts()
	m[FactRequestDispatcher] = false
	if !r.Has(FactRequestDispatcher) {
		t.Fatalf("report mutated through Facts()")
	}
}

func TestNewReport_NegativeTotalClamped(t *testing.T) {
	if got := NewReport(time.Time{}, -3, nil).Total(); got != 0 {
		t.Fatalf("total=%d", got)
	}
}

func TestFacts_FixedOrder(t *testing.T) {
	want := []Fact{FactDataAccessLayer, FactSecurityChain, FactRequestDispatcher}
	got := Facts()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	got[0] = "x"
	if Facts()[0] != FactDataAccessLayer {
		t.Fatalf("Facts() exposes internal array")
	}
}

func TestFact_Label(t *testing.T) {
	if FactSecurityChain.Label() != "Security chain" {
		t.Fatalf("label=%q", FactSecurityChain.Label())
	}
	if Fact("other").Label() != "other" {
		t.Fatalf("unknown fact label")
	}
}
