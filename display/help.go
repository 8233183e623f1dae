package display

import (
	"fmt"
	"strings"
)

// BuildHelp renders the help screen for page.
//
// The first line is the usage line carrying the application name. The help
// message, if any, follows as its own paragraph, then one line per entry in
// the order given, with descriptions aligned in a single column:
//
//	Usage: mytool [OPTIONS]
//
//	Reads and writes files.
//
//	Options:
//	  -h, --help         Display this help message
//	  -f, --file [FILE]  The file to read
func BuildHelp(page Page, style Style) string {
	var builder strings.Builder
	builder.WriteString(style.paint("Usage:", ansiHeading...) + " ")
	builder.WriteString(style.paint(appLabel(page.AppName), ansiName...))
	if len(page.Entries) > 0 {
		builder.WriteString(" [OPTIONS]")
	}
	builder.WriteString("\n")

	if page.Message != "" {
		builder.WriteString("\n" + page.Message + "\n")
	}

	if len(page.Entries) > 0 {
		builder.WriteString("\n" + style.paint("Options:", ansiHeading...) + "\n")
		builder.WriteString(optionsHelp(page.Entries, style.Width))
	}

	return builder.String()
}

// === HELPERS ===

// flagColumn renders the left column of an option line, e.g. "  -f, --file [FILE]".
func flagColumn(e Entry) string {
	var ids []string
	for _, id := range e.Identifiers {
		if id != "" {
			ids = append(ids, id)
		}
	}
	flag := "  " + strings.Join(ids, ", ")
	if e.TakesArg {
		flag += fmt.Sprintf(" [%s]", strings.ToUpper(e.Name))
	}
	return flag
}

// optionsHelp generates the aligned option lines.
func optionsHelp(entries []Entry, width int) string {
	maxLen := 0
	flags := make([]string, len(entries))
	for i, e := range entries {
		flags[i] = flagColumn(e)
		if len(flags[i]) > maxLen {
			maxLen = len(flags[i])
		}
	}

	descCol := maxLen + 2
	var builder strings.Builder
	for i, e := range entries {
		if e.Description == "" {
			builder.WriteString(flags[i] + "\n")
			continue
		}
		padding := strings.Repeat(" ", maxLen-len(flags[i]))
		lines := wrap(e.Description, width-descCol)
		builder.WriteString(fmt.Sprintf("%s%s  %s\n", flags[i], padding, lines[0]))
		for _, l := range lines[1:] {
			builder.WriteString(strings.Repeat(" ", descCol) + l + "\n")
		}
	}
	return builder.String()
}

// wrap breaks text into lines of at most limit columns on word boundaries.
// Words longer than limit get a line of their own. A limit below 20 columns
// leaves the text unwrapped, since the description column would be unreadable.
func wrap(text string, limit int) []string {
	if limit < 20 || len(text) <= limit {
		return []string{text}
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > limit {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
