// Package report prints per-entry outcome lines and the run summary.
package report

import (
	"fmt"
	"io"

	"github.com/arthur-debert/configmapper/pkg/reconcile"
	"github.com/arthur-debert/configmapper/pkg/types"
	"github.com/arthur-debert/configmapper/pkg/ui/styles"
)

// Prefix starts every line about an entry
const Prefix = "[config-mapper]"

// Reporter writes outcome lines as entries finish. It satisfies
// reconcile.Reporter.
type Reporter struct {
	w       io.Writer
	theme   *styles.Theme
	verbose bool
}

// New creates a reporter. With verbose set, the actions behind each
// converged or failed entry are listed under its line.
func New(w io.Writer, theme *styles.Theme, verbose bool) *Reporter {
	return &Reporter{w: w, theme: theme, verbose: verbose}
}

// Report prints the line for one outcome.
func (r *Reporter) Report(o types.Outcome) {
	r.println(r.entryLine(o.Entry.Name, r.statusText(o)))

	if !r.verbose {
		return
	}
	for _, result := range o.Results {
		if result.Success {
			r.println("    " + r.theme.Render("Muted", result.Message))
		}
	}
}

// Summary prints the totals of a run.
func (r *Reporter) Summary(s types.Summary) {
	r.println(fmt.Sprintf("%s %s, %s, %s, %s",
		r.theme.Render("Prefix", Prefix),
		r.theme.Render("Converged", fmt.Sprintf("%d converged", s.Converged)),
		r.theme.Render("Skipped", fmt.Sprintf("%d skipped", s.Skipped)),
		r.theme.Render("Failed", fmt.Sprintf("%d failed", s.Failed)),
		r.theme.Render("Invalid", fmt.Sprintf("%d invalid", s.Invalid)),
	))
}

// State prints an entry's observed paths and the case they classify as.
func (r *Reporter) State(entry types.Entry, obs types.Observation, c reconcile.Case) {
	var state string
	switch c {
	case reconcile.CaseConverged:
		state = r.theme.Render("Skipped", "in place")
	case reconcile.CaseInvalid, reconcile.CaseDanglingExternal:
		state = r.theme.Render("Invalid", c.String())
	default:
		state = r.theme.Render("Converged", c.String())
	}

	r.println(fmt.Sprintf("%s (target %s, external %s)",
		r.entryLine(entry.Name, state), obs.Target, obs.External))
}

// Line returns the unstyled line for an outcome.
func Line(o types.Outcome) string {
	return fmt.Sprintf("%s %s: %s", Prefix, o.Entry.Name, StatusText(o))
}

// StatusText is the part of an outcome line after the entry name.
func StatusText(o types.Outcome) string {
	if o.Status == types.StatusFailed {
		return fmt.Sprintf("failed at %s: %s", o.Stage, o.Message)
	}
	return o.Message
}

func (r *Reporter) entryLine(name, status string) string {
	return fmt.Sprintf("%s %s: %s",
		r.theme.Render("Prefix", Prefix), r.theme.Render("Name", name), status)
}

func (r *Reporter) statusText(o types.Outcome) string {
	switch o.Status {
	case types.StatusConverged:
		return r.theme.Render("Converged", o.Message)
	case types.StatusSkipped:
		return r.theme.Render("Skipped", o.Message)
	case types.StatusInvalid:
		return r.theme.Render("Invalid", o.Message)
	case types.StatusFailed:
		return r.theme.Render("Failed", "failed at ") + r.theme.Render("Stage", o.Stage.String()) +
			r.theme.Render("Failed", ": "+o.Message)
	default:
		return o.Message
	}
}

func (r *Reporter) println(line string) {
	_, _ = fmt.Fprintln(r.w, line)
}
