package swiftcss

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// ReporterConfig controls how results are printed.
type ReporterConfig struct {
	UseColors  bool // force colors on
	PrintLines bool // print the source line and caret under each issue
}

// Reporter prints run summaries and check issues.
type Reporter struct {
	w          io.Writer
	useColors  bool
	printLines bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, config ReporterConfig) *Reporter {
	return &Reporter{
		w:          w,
		useColors:  shouldUseColors(config.UseColors),
		printLines: config.PrintLines,
	}
}

// shouldUseColors checks the explicit flag, then FORCE_COLOR, GitHub Actions and a TTY on stdout.
func shouldUseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fi, err := os.Stdout.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
		return true
	}
	return false
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintIssues prints issues in golangci-lint format, sorted by position.
func (r *Reporter) PrintIssues(issues []Issue) {
	SortIssues(issues)
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue prints "file:line:col: message (linter)" and optionally the source line.
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	text := issue.Text
	if issue.Severity == SeverityError {
		text = RenderStyle(StyleRed, text, r.useColors)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		text,
		RenderStyle(StyleGray, fmt.Sprintf(" (%s)", issue.FromLinter), r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		fmt.Fprintf(r.w, "\t%s\n", issue.SourceLines[0])
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator aligns "^" under column, copying tabs from the source
// line so the caret lines up in any tab width.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}
	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintCheckSummary prints the issue count with an error/warning breakdown.
func (r *Reporter) PrintCheckSummary(result CheckResult) {
	var errs, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errs++
		case SeverityWarning:
			warnings++
		}
	}

	fmt.Fprintln(r.w, "")
	total := len(result.Issues)
	if total == 0 {
		fmt.Fprintf(r.w, "%s (%s scanned)\n",
			RenderStyle(StyleGreen, "0 issues", r.useColors),
			pluralizeCount(result.FilesScanned, "file", "files"))
	} else {
		fmt.Fprintf(r.w, "%s (%s, %s) in %s\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(errs, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"),
			pluralizeCount(result.FilesScanned, "file", "files"))
	}
	r.printWarnings(result.Warnings)
}

// PrintStats prints the summary of a generation run.
func (r *Reporter) PrintStats(stats Stats) {
	c := stats.Rules
	fmt.Fprintf(r.w, "%s %s (%s, %s)\n",
		RenderStyle(StyleGreen, "generated", r.useColors),
		stats.Output,
		formatBytes(stats.Bytes),
		stats.Duration.Round(time.Millisecond))

	fmt.Fprintf(r.w, "  Files scanned:  %d\n", stats.FilesScanned)
	fmt.Fprintf(r.w, "  Class tokens:   %d\n", stats.ClassTokens)
	fmt.Fprintf(r.w, "  Rules:          %d %s\n", c.Total(),
		RenderStyle(StyleGray, fmt.Sprintf("(input %d, base %d, dynamic %d, pseudo %d, theme %d, media %d, variants %d)",
			c.Input, c.Base, c.Dynamic, c.Pseudo, c.Theme, c.Media, c.Variants), r.useColors))
	if stats.Optimized != nil && stats.Optimized.Removed() > 0 {
		o := stats.Optimized
		fmt.Fprintf(r.w, "  Optimized:      %d removed %s\n", o.Removed(),
			RenderStyle(StyleGray, fmt.Sprintf("(duplicates %d, unresolved %d, empty %d, classes %d)",
				o.DuplicateTokens, o.UnresolvedTokens, o.EmptyEntries, o.UnresolvedClasses), r.useColors))
	}
	if stats.Minified {
		fmt.Fprintln(r.w, "  Minified:       yes")
	}
	r.printWarnings(stats.Warnings)
}

func (r *Reporter) printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")
	for _, w := range warnings {
		fmt.Fprintf(r.w, "• %s\n", w)
	}
}

// pluralizeCount returns "1 file" or "2 files".
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}

// JSONOutput is the machine-readable check report.
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// JSONSummary contains the issue counts.
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
	TokensFound  int `json:"tokens_found"`
}

// JSONIssue is one issue in the JSON report.
type JSONIssue struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Attribute string `json:"attribute"`
	Token     string `json:"token"`
	Source    string `json:"source,omitempty"`
}

// WriteJSON writes a check result as indented JSON.
func WriteJSON(w io.Writer, result CheckResult, version string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildJSONOutput(result, version, time.Now()))
}

func buildJSONOutput(result CheckResult, version string, now time.Time) JSONOutput {
	out := JSONOutput{
		Version:   version,
		Timestamp: now.UTC().Format(time.RFC3339),
		Issues:    make([]JSONIssue, len(result.Issues)),
		Warnings:  result.Warnings,
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			FilesScanned: result.FilesScanned,
			TokensFound:  result.TokensFound,
		},
	}
	for i, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			out.Summary.Errors++
		case SeverityWarning:
			out.Summary.Warnings++
		}
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		out.Issues[i] = JSONIssue{
			File:      issue.Pos.Filename,
			Line:      issue.Pos.Line,
			Column:    issue.Pos.Column,
			Severity:  issue.Severity,
			Message:   issue.Text,
			Attribute: issue.Attribute,
			Token:     issue.Token,
			Source:    source,
		}
	}
	return out
}
