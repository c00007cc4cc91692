package todo

import (
	"fmt"
	"strings"

	"github.com/mcptest/todo-backend/internal/models"
)

// excerptLength is the number of description characters shown per list entry.
const excerptLength = 100

var markdownReplacer = strings.NewReplacer("*", "", "#", "")

// stripMarkdown removes the literal markdown characters that render poorly
// in agent hosts displaying plain text.
func stripMarkdown(s string) string {
	return markdownReplacer.Replace(s)
}

// excerpt truncates s to n characters, appending an ellipsis when truncated.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func statusGlyph(completed bool) string {
	if completed {
		return "✓"
	}
	return "○"
}

// renderList renders all todos as a numbered plain-text list.
func renderList(todos []*models.Todo) string {
	if len(todos) == 0 {
		return "No todos found."
	}

	lines := []string{fmt.Sprintf("Found %d todo(s):\n", len(todos))}
	for i, t := range todos {
		lines = append(lines, fmt.Sprintf("%d. %s %s", i+1, statusGlyph(t.Completed), t.Title))
		if t.Description != "" {
			lines = append(lines, "   "+excerpt(stripMarkdown(t.Description), excerptLength))
		}
		lines = append(lines, fmt.Sprintf("   ID: %s\n", t.ID))
	}

	return strings.Join(lines, "\n")
}

// renderDetail renders one todo as a plain-text detail block.
func renderDetail(t *models.Todo) string {
	status := "○ Pending"
	if t.Completed {
		status = "✓ Completed"
	}

	return fmt.Sprintf("Todo: %s\nStatus: %s\nDescription: %s\nCreated: %s\nID: %s",
		t.Title, status, stripMarkdown(t.Description), t.CreatedAt, t.ID)
}
