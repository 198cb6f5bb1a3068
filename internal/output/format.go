// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"daytask/internal/quotes"
	"daytask/internal/tasks"
)

// EmptyList is printed when there are no tasks.
const EmptyList = "No tasks yet."

// FormatTask formats a numbered task line.
// Format: "{N:>4}  [x] {TITLE}\n" (4-wide right-aligned number, two spaces, marker, title)
func FormatTask(w io.Writer, num int, task tasks.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, Marker(task.Completed), NormalizeTitle(task.Title))
}

// FormatTaskWithID is like FormatTask with the task ID appended.
func FormatTaskWithID(w io.Writer, num int, task tasks.Task) {
	fmt.Fprintf(w, "%4d  %s %s  (%s)\n", num, Marker(task.Completed), NormalizeTitle(task.Title), task.ID)
}

// Marker returns the completion checkbox.
func Marker(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// FormatQuote formats the date header and a quote card.
func FormatQuote(w io.Writer, date time.Time, q quotes.Quote) {
	fmt.Fprintln(w, quotes.FormatDate(date))
	fmt.Fprintln(w)
	FormatQuoteCard(w, q)
}

// FormatQuoteCard formats a quote and its author.
func FormatQuoteCard(w io.Writer, q quotes.Quote) {
	fmt.Fprintf(w, "  “%s”\n", q.Text)
	fmt.Fprintf(w, "    — %s\n", q.Author)
}

// NormalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func NormalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
