package startuptext

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	domain "github.com/berezovskyivalerii/formgateway/internal/domain/startup"
)

func TestMap(t *testing.T) {
	at := time.Date(2026, 10, 15, 12, 0, 0, 0, time.FixedZone("X", 3*3600))
	rep := domain.NewReport(at, 9, map[domain.Fact]bool{domain.FactRequestDispatcher: true})

	want := Response{
		CreatedAt: "2026-10-15T09:00:00Z",
		Total:     9,
		Facts: map[string]bool{
			"has-data-access-layer":  false,
			"has-security-chain":     false,
			"has-request-dispatcher": true,
		},
	}
	if diff := cmp.Diff(want, Map(rep)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}
