package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cssbridge/cssbridge/internal/domain"
)

// ── Warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	failureBoxStyle = boxStyle.BorderForeground(danger)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success).Bold(true)
	failStyle     = lipgloss.NewStyle().Foreground(danger).Bold(true)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	contextStyle  = lipgloss.NewStyle().Foreground(accent)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders a validation report for the terminal. source names
// the stylesheet that was checked.
func RenderReport(source string, report *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("cssbridge")
	subtitle := dimStyle.Render(displayName(source))
	verdict := passStyle.Render("Valid CSS")
	if !report.Validity {
		verdict = failStyle.Render("Invalid CSS")
	}
	counts := fmt.Sprintf("%s  %s",
		errorTagStyle.Render(plural(report.Result.ErrorCount, "error")),
		warnTagStyle.Render(plural(report.Result.WarningCount, "warning")),
	)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict + "\n" + counts))
	b.WriteString("\n\n")

	// ── Findings ──
	if len(report.Errors) == 0 && len(report.Warnings) == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	}
	if len(report.Errors) > 0 {
		b.WriteString("  " + titleStyle.Render("Errors") + "\n\n")
		for _, e := range report.Errors {
			renderFinding(&b, errorTagStyle.Render("error"), e.Line, e.Context, e.Message, e.ErrorType)
		}
		b.WriteString("\n")
	}
	if len(report.Warnings) > 0 {
		b.WriteString("  " + titleStyle.Render("Warnings") + "\n\n")
		for _, w := range report.Warnings {
			renderFinding(&b, warnTagStyle.Render("warn "), w.Line, w.Context, w.Message, "")
		}
		b.WriteString("\n")
	}

	// ── Footer ──
	b.WriteString("  " + separatorLine + "\n")
	meta := []string{}
	if report.CSSLevel != "" {
		meta = append(meta, "level "+report.CSSLevel)
	}
	if report.Date != "" {
		meta = append(meta, report.Date)
	}
	if report.CheckedBy != "" {
		meta = append(meta, report.CheckedBy)
	}
	if len(meta) > 0 {
		b.WriteString("  " + dimStyle.Render(strings.Join(meta, " · ")) + "\n")
	}

	return b.String()
}

func renderFinding(b *strings.Builder, tag string, line int, context, message, kind string) {
	where := dimStyle.Render(fmt.Sprintf("line %d", line))
	if line == 0 {
		where = dimStyle.Render("line ?")
	}
	if context != "" {
		where += "  " + contextStyle.Render(context)
	}
	if kind != "" {
		where += "  " + faintStyle.Render(kind)
	}
	fmt.Fprintf(b, "    %s %s\n", tag, where)
	if message != "" {
		fmt.Fprintf(b, "          %s\n", message)
	}
}

// RenderFailure renders a validation that produced no report.
func RenderFailure(source string, err *domain.Error) string {
	var b strings.Builder

	title := failStyle.Render(err.Message)
	subtitle := dimStyle.Render(displayName(source))
	b.WriteString(failureBoxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	if err.Details != "" {
		for _, line := range strings.Split(strings.TrimRight(err.Details, "\n"), "\n") {
			b.WriteString("  " + dimStyle.Render(line) + "\n")
		}
	}
	if err.ExitCode != nil {
		b.WriteString("  " + faintStyle.Render(fmt.Sprintf("exit code %d", *err.ExitCode)) + "\n")
	}
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func displayName(source string) string {
	if source == "" || source == "-" {
		return "stdin"
	}
	return filepath.Base(source)
}
