package app

import (
	"fmt"
	"text/tabwriter"

	"github.com/vk/traitcast"
	"github.com/vk/traitcast/internal/identity"
)

// report prints the materialized cast table as an aligned text table.
func (a *App) report(regs []traitcast.Registration) {
	if len(regs) == 0 {
		fmt.Fprintln(a.outW, "cast table is empty")
		return
	}

	w := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CONCRETE\tTARGET\tTHREAD-SAFE\tDOC")
	for _, reg := range regs {
		fmt.Fprintf(w, "%s\t%s\t%v\t%s\n",
			identity.Name(reg.Concrete), identity.Name(reg.Target), reg.ThreadSafe, reg.Doc)
	}
	w.Flush()
}
