package startup

import (
	"fmt"
	"iter"
	"time"

	domain "github.com/berezovskyivalerii/formgateway/internal/domain/startup"
)

type Clock interface{ Now() time.Time }

type SysClock struct{}

func (SysClock) Now() time.Time { return time.Now() }

// Highlighter decorates a rendered line. Implementations must be pure.
type Highlighter interface {
	Header(line string) string
	Fact(line string, present bool) string
}

type plain struct{}

func (plain) Header(line string) string       { return line }
func (plain) Fact(line string, _ bool) string { return line }

// Reporter builds the startup report. Call Generate, Render and Emit once,
// after wiring is done and before the server starts accepting requests.
type Reporter struct {
	Clock     Clock
	Highlight Highlighter
}

func (r *Reporter) Generate(reg domain.Registry) domain.Report {
	clock := r.Clock
	if clock == nil {
		clock = SysClock{}
	}
	present := make(map[domain.Fact]bool)
	for _, f := range domain.Facts() {
		present[f] = reg.Contains(string(f))
	}
	return domain.NewReport(clock.Now(), reg.Count(), present)
}

// Render yields the header line followed by one line per fact.
// The sequence can be ranged over any number of times.
func (r *Reporter) Render(rep domain.Report) iter.Seq[string] {
	hl := r.Highlight
	if hl == nil {
		hl = plain{}
	}
	return func(yield func(string) bool) {
		if !yield(hl.Header(fmt.Sprintf("Total components: %d", rep.Total()))) {
			return
		}
		for _, f := range domain.Facts() {
			has := rep.Has(f)
			if !yield(hl.Fact(fmt.Sprintf("Has %s: %t", f.Label(), has), has)) {
				return
			}
		}
	}
}
