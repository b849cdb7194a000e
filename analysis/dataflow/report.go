package dataflow

import (
	"fmt"
	"io"
	"strings"

	"github.com/tenfinney/solidity/analysis/lang"
	"github.com/tenfinney/solidity/internal/formatutil"
	"github.com/tenfinney/solidity/internal/funcutil"
	"github.com/tenfinney/solidity/internal/graphutil"
)

// Report writes a human-readable summary of the analyzer's current
// knowledge: the recorded variable values, the reference edges between
// variables, and the storage facts. Entries are ordered by name, so the
// output is stable for a given state.
func Report(a *Analyzer, w io.Writer, title string) {
	fmt.Fprintf(w, "%s\n", formatutil.Bold(title))

	fmt.Fprintf(w, "%s\n", formatutil.Faint("known values:"))
	values := map[lang.Name]bool{}
	for name := range a.values {
		values[name] = true
	}
	if len(values) == 0 {
		fmt.Fprintf(w, "  (none)\n")
	}
	for _, name := range funcutil.SetToOrderedSlice(values) {
		// Names and expressions come from the decoded program; keep escape
		// sequences out of the report.
		fmt.Fprintf(w, "  %s = %s\n", formatutil.Sanitize(string(name)), formatutil.Sanitize(lang.Print(a.values[name])))
	}

	fmt.Fprintf(w, "%s\n", formatutil.Faint("references:"))
	referring := map[lang.Name]bool{}
	for name, refs := range a.references {
		if len(refs) > 0 {
			referring[name] = true
		}
	}
	if len(referring) == 0 {
		fmt.Fprintf(w, "  (none)\n")
	}
	for _, name := range funcutil.SetToOrderedSlice(referring) {
		refs := funcutil.Map(funcutil.SetToOrderedSlice(a.references[name]),
			func(n lang.Name) string { return formatutil.Sanitize(string(n)) })
		fmt.Fprintf(w, "  %s -> %s\n", formatutil.Sanitize(string(name)), strings.Join(refs, ", "))
	}

	fmt.Fprintf(w, "%s\n", formatutil.Faint("storage:"))
	slots := map[lang.Name]bool{}
	a.storage.ForEach(func(slot, value lang.Name) { slots[slot] = true })
	if len(slots) == 0 {
		fmt.Fprintf(w, "  (none)\n")
	}
	for _, slot := range funcutil.SetToOrderedSlice(slots) {
		value, _ := a.storage.Get(slot)
		fmt.Fprintf(w, "  [%s] = %s\n", formatutil.Sanitize(string(slot)), formatutil.Sanitize(string(value)))
	}
}

// WriteReferenceGraphDOT renders the variable reference graph in Graphviz
// DOT form: an edge x -> y means the expression last assigned to x reads y.
// Variables with a recorded value appear even when isolated.
func WriteReferenceGraphDOT(a *Analyzer, w io.Writer, name string) error {
	adjacency := map[string][]string{}
	for v, refs := range a.references {
		adjacency[string(v)] = funcutil.Map(funcutil.SetToOrderedSlice(refs),
			func(n lang.Name) string { return string(n) })
	}
	for v := range a.values {
		if _, ok := adjacency[string(v)]; !ok {
			adjacency[string(v)] = nil
		}
	}
	out, err := graphutil.MarshalDOT(graphutil.NewLabeledGraph(adjacency), name)
	if err != nil {
		return fmt.Errorf("could not render the reference graph: %w", err)
	}
	_, err = w.Write(out)
	return err
}
