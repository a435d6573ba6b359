package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"golombcheck"
)

const reportWidth = 50

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Width(reportWidth).
			Align(lipgloss.Center)

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	badStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	noteStyle = lipgloss.NewStyle().Faint(true)
)

func rule() string {
	return ruleStyle.Render(strings.Repeat("-", reportWidth))
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule(), titleStyle.Render(title), rule())
}

func verdict(compliant bool) string {
	if compliant {
		return okStyle.Render("yes")
	}
	return badStyle.Render("NO")
}

// renderReport prints the full analysis the way the interactive tool
// presents it: one section per postulate, then the combined verdict with
// every finding and warning.
func renderReport(w io.Writer, report *golombcheck.Report) {
	data := report.Data

	section(w, "ANALYSIS RESULT")
	fmt.Fprintf(w, "  Sequence:     %s\n", report.Sequence)
	fmt.Fprintf(w, "  Total bits:   %d\n", data.Bits.Total)
	fmt.Fprintf(w, "  Zeros:        %d\n", data.Bits.Zeros)
	fmt.Fprintf(w, "  Ones:         %d\n", data.Bits.Ones)

	section(w, "POSTULATE 1 - Bit proportion")
	fmt.Fprintln(w, "  Zeros and ones should each sit close to 50%.")
	fmt.Fprintf(w, "\n  Share of zeros:    %6.2f%%\n", report.Proportion.ZeroPercent)
	fmt.Fprintf(w, "  Share of ones:     %6.2f%%\n", report.Proportion.OnePercent)
	fmt.Fprintf(w, "  Required minimum:  %6.2f%%\n", report.Proportion.MinPercent)
	fmt.Fprintf(w, "\n  Holds? %s\n", verdict(report.Postulate1.Compliant))
	fmt.Fprintln(w, noteStyle.Render("  The minimum grows from 40% to 49% with sequence length."))

	section(w, "POSTULATE 2 - Run-length frequencies")
	fmt.Fprintln(w, "  Shorter runs must be more frequent than longer ones.")
	fmt.Fprintf(w, "\n  Runs:        %s\n", runsLine(data))
	fmt.Fprintf(w, "  Run counts:  sizes %v -> counts %v\n",
		data.Freq.All.Sizes(), data.Freq.All.Counts())
	fmt.Fprintf(w, "\n  Holds? %s\n", verdict(report.Postulate2.Compliant))

	section(w, "POSTULATE 3 - Structural patterns")
	fmt.Fprintln(w, "  The sequence must not exhibit structural patterns.")
	fmt.Fprintf(w, "\n  Zero-run sizes:  %v\n", data.Sizes.Zeros)
	fmt.Fprintf(w, "  One-run sizes:   %v\n", data.Sizes.Ones)
	fmt.Fprintf(w, "\n  Holds? %s\n", verdict(report.Postulate3.Compliant))

	section(w, "FINAL VERDICT")
	for p := 1; p <= 3; p++ {
		res := report.Result(p)
		if res.Compliant {
			fmt.Fprintf(w, "\n%s Postulate %d holds\n", okStyle.Render("+"), p)
		} else {
			fmt.Fprintf(w, "\n%s Postulate %d violated\n", badStyle.Render("x"), p)
		}
		for _, finding := range res.Findings {
			fmt.Fprintf(w, "    %s %s\n", badStyle.Render("-"), finding)
		}
		for _, warning := range res.Warnings {
			fmt.Fprintf(w, "    %s %s\n", warnStyle.Render("?"), warning)
		}
		if res.Compliant && len(res.Findings) == 0 && len(res.Warnings) == 0 {
			fmt.Fprintln(w, "    nothing to report")
		}
	}

	fmt.Fprintln(w)
	if report.Compliant() {
		fmt.Fprintln(w, okStyle.Render("The sequence satisfies all three postulates."))
	} else {
		fmt.Fprintln(w, badStyle.Render("The sequence does not look random."))
	}
}

// runsLine renders the all view, truncated so pathological inputs do not
// flood the terminal.
func runsLine(data *golombcheck.RunData) string {
	const maxRuns = 40
	runs := data.Runs.All
	if len(runs) <= maxRuns {
		return runsJoined(runs)
	}
	return runsJoined(runs[:maxRuns]) + noteStyle.Render(fmt.Sprintf(" ... (%d more)", len(runs)-maxRuns))
}

func runsJoined(runs []golombcheck.Run) string {
	parts := make([]string, len(runs))
	for i, run := range runs {
		parts[i] = run.Text()
	}
	return strings.Join(parts, " ")
}
