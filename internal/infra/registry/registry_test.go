package registry

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	domain "github.com/berezovskyivalerii/formgateway/internal/domain/startup"
)

var (
	_ domain.Registry = (*Registry)(nil)
	_ domain.Registry = Static(nil)
)

func TestRegistry_RegisterAndQuery(t *testing.T) {
	r := New()
	for _, n := range []string{"b", "a", "c"} {
		if err := r.Register(n, struct{}{}); err != nil {
			t.Fatalf("register %s: %v", n, err)
		}
	}
	if r.Count() != 3 {
		t.Fatalf("count=%d", r.Count())
	}
	if !r.Contains("a") || r.Contains("z") {
		t.Fatalf("contains mismatch")
	}
	if diff := cmp.Diff([]string{"b", "a", "c"}, r.Names()); diff != "" {
		t.Fatalf("order (-want +got):\n%s", diff)
	}
}

func TestRegistry_Rejects(t *testing.T) {
	r := New()
	if err := r.Register("", 1); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("want ErrEmptyName, got %v", err)
	}
	_ = r.Register("x", 1)
	if err := r.Register("x", 2); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("want ErrDuplicate, got %v", err)
	}
	if v, _ := r.Get("x"); v != 1 {
		t.Fatalf("duplicate overwrote component: %v", v)
	}
	if r.Count() != 1 {
		t.Fatalf("count=%d", r.Count())
	}
}

func TestRegistry_NilComponentStillCounts(t *testing.T) {
	r := New()
	_ = r.Register("nil-one", nil)
	if !r.Contains("nil-one") || r.Count() != 1 {
		t.Fatalf("nil component not recorded")
	}
}

func TestStatic(t *testing.T) {
	s := Static{"has-data-access-layer": true, "has-security-chain": false, "z": true}
	if s.Count() != 2 {
		t.Fatalf("count=%d", s.Count())
	}
	if s.Contains("has-security-chain") || !s.Contains("z") || s.Contains("missing") {
		t.Fatalf("contains mismatch")
	}
}
