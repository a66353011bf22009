package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/hamed0406/domainwatch/internal/stats"
)

// Reporter renders the cumulative stats after each cycle.
type Reporter interface {
	Report(s stats.Snapshot)
}

// Console writes one line per known domain, sorted for stable output.
type Console struct {
	W io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{W: w}
}

func (c *Console) Report(s stats.Snapshot) {
	domains := make([]string, 0, len(s))
	for d := range s {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	for _, d := range domains {
		counts := s[d]
		fmt.Fprintf(c.W, "%s has %d%% availability (%d/%d checks up)\n",
			d, counts.Percent(), counts.Up, counts.Total)
	}
}
