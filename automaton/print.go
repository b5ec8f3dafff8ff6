package automaton

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
)

// String renders the NFA's start state, accepting states, and
// transitions, in the same structural shape as the original C++
// implementation's NFA::display(). No third-party table-formatting
// library appears anywhere in the retrieved corpus, so this uses the
// standard library's tabwriter (see DESIGN.md).
func (n *NFA) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "NFA: %d states, start=%d, accept=%v\n", n.numStates, n.start, n.AcceptingStates())

	type row struct {
		from, to int
		label    string
	}
	rows := make([]row, 0, len(n.trans))
	for _, t := range n.trans {
		label := "eps"
		if !t.isEpsilon {
			label = fmt.Sprintf("%q", byte(t.sym))
		}
		rows = append(rows, row{t.from, t.to, label})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].from != rows[j].from {
			return rows[i].from < rows[j].from
		}
		return rows[i].to < rows[j].to
	})

	tw := tabwriter.NewWriter(&sb, 0, 2, 1, ' ', 0)
	fmt.Fprintln(tw, "from\tsymbol\tto")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", r.from, r.label, r.to)
	}
	tw.Flush()

	return sb.String()
}

// String renders the DFA's transition table alongside the accepting
// states and their winning token labels, mirroring DFA::display() from
// the original implementation.
func (d *DFA) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DFA: %d states, start=%d\n", d.numStates, d.start)

	tw := tabwriter.NewWriter(&sb, 0, 2, 1, ' ', 0)
	header := "state"
	for _, sym := range d.alphabet {
		header += fmt.Sprintf("\t%q", byte(sym))
	}
	header += "\taccepts"
	fmt.Fprintln(tw, header)

	for s := 0; s < d.numStates; s++ {
		line := fmt.Sprintf("%d", s)
		for _, sym := range d.alphabet {
			to := d.Step(s, sym)
			if to == DeadState {
				line += "\t-"
			} else {
				line += fmt.Sprintf("\t%d", to)
			}
		}
		if l, ok := d.labels[s]; ok {
			line += fmt.Sprintf("\t%s(p%d)", l.TokenName, l.Priority)
		} else {
			line += "\t-"
		}
		fmt.Fprintln(tw, line)
	}
	tw.Flush()

	return sb.String()
}
