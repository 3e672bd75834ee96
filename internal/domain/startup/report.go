package startup

import "time"

// Fact is the name of a component the startup report looks up in the registry.
type Fact string

const (
	FactDataAccessLayer   Fact = "has-data-access-layer"
	FactSecurityChain     Fact = "has-security-chain"
	FactRequestDispatcher Fact = "has-request-dispatcher"
)

var factSet = [...]Fact{
	FactDataAccessLayer,
	FactSecurityChain,
	FactRequestDispatcher,
}

var factLabels = map[Fact]string{
	FactDataAccessLayer:   "Data access layer",
	FactSecurityChain:     "Security chain",
	FactRequestDispatcher: "Request dispatcher",
}

// Facts returns the fixed fact set in report order.
func Facts() []Fact {
	out := make([]Fact, len(factSet))
	copy(out, factSet[:])
	return out
}

func (f Fact) Label() string {
	if l, ok := factLabels[f]; ok {
		return l
	}
	return string(f)
}

// Report is a snapshot of the registry taken once at startup.
// The zero value reports zero components and no facts present.
type Report struct {
	createdAt time.Time
	total     int
	facts     map[Fact]bool
}

// NewReport copies present, so later changes to the caller's map do not leak
// into the report. Facts outside the fixed set are ignored.
func NewReport(createdAt time.Time, total int, present map[Fact]bool) Report {
	if total < 0 {
		total = 0
	}
	facts := make(map[Fact]bool, len(factSet))
	for _, f := range factSet {
		facts[f] = present[f]
	}
	return Report{createdAt: createdAt, total: total, facts: facts}
}

func (r Report) CreatedAt() time.Time { return r.createdAt }
func (r Report) Total() int           { return r.total }
func (r Report) Has(f Fact) bool      { return r.facts[f] }

// Facts returns a copy of the presence flags keyed by fact.
func (r Report) Facts() map[Fact]bool {
	out := make(map[Fact]bool, len(factSet))
	for _, f := range factSet {
		out[f] = r.facts[f]
	}
	return out
}
