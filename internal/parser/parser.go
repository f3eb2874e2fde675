// Package parser decodes the sectioned task format:
//
//	*Phase 1
//	0, 3, First task
//	3, 6, Second task
//
// A line whose first non-blank character is '*' opens a section named by the
// rest of the line. Every other non-blank, non-comment line is a task row of
// exactly three comma-separated fields: start, end, label. Only the first two
// commas split, so labels may contain commas. Blank lines and '#' comment
// lines are skipped.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/gantt/internal/domain"
)

// FormatError reports a line that could not be parsed as a section marker or
// a well-formed task row.
type FormatError struct {
	Line   int    // 1-based line number in the input
	Text   string // the raw line, trimmed
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// ParseFile opens path and parses its contents.
func ParseFile(path string) (domain.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("reading input: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the sectioned task format from r into a Document. Section and
// task order mirror the input exactly; empty sections are preserved.
//
// A task row appearing before any section marker is a FormatError: every
// task must belong to a section.
func Parse(r io.Reader) (domain.Document, error) {
	var doc domain.Document
	inSection := false

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			// skip
		case strings.HasPrefix(line, "*"):
			name := strings.TrimSpace(line[1:])
			doc.Sections = append(doc.Sections, domain.Section{Name: name})
			inSection = true
		default:
			if !inSection {
				return domain.Document{}, &FormatError{
					Line:   lineNo,
					Text:   line,
					Reason: "task row before any section marker",
				}
			}
			task, err := parseTask(lineNo, line)
			if err != nil {
				return domain.Document{}, err
			}
			last := &doc.Sections[len(doc.Sections)-1]
			last.Tasks = append(last.Tasks, task)
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.Document{}, fmt.Errorf("reading input: %w", err)
	}
	return doc, nil
}

// parseTask splits a task row on its first two commas only, so the label may
// itself contain commas.
func parseTask(lineNo int, line string) (domain.Task, error) {
	fields := strings.SplitN(line, ",", 3)
	if len(fields) < 3 {
		return domain.Task{}, &FormatError{
			Line:   lineNo,
			Text:   line,
			Reason: fmt.Sprintf("task row needs 3 fields (start, end, label), got %d", len(fields)),
		}
	}

	start, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return domain.Task{}, &FormatError{Line: lineNo, Text: line, Reason: "start is not a number"}
	}
	end, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return domain.Task{}, &FormatError{Line: lineNo, Text: line, Reason: "end is not a number"}
	}

	return domain.Task{
		Start: start,
		End:   end,
		Label: strings.TrimSpace(fields[2]),
	}, nil
}
