// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"todo/internal/todo"
)

const (
	// SectionSeparator is the separator line around status sections.
	SectionSeparator = "------------"
)

var titleCaser = cases.Title(language.English)

// StatusLabel returns the human-facing name of a status ("Pending", "Done").
func StatusLabel(s todo.Status) string {
	return titleCaser.String(strings.ToLower(s.String()))
}

// FormatTask formats a numbered task line for the list output.
// Format: "{N:>4}  {TITLE}\n" (4-wide right-aligned number, two spaces, title)
func FormatTask(w io.Writer, num int, rec todo.Record) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeTitle(rec.Title))
}

// FormatSectionHeader formats the header of a status section.
func FormatSectionHeader(w io.Writer, s todo.Status) {
	fmt.Fprintln(w, SectionSeparator)
	fmt.Fprintln(w, StatusLabel(s))
	fmt.Fprintln(w, SectionSeparator)
}

// FormatRecord formats a single task with its status token.
// Format: "{TITLE}: {TOKEN}\n"
func FormatRecord(w io.Writer, rec todo.Record) {
	fmt.Fprintf(w, "%s: %s\n", normalizeTitle(rec.Title), rec.Status)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
