package jsonc

import (
	"regexp"
	"strings"
)

// blockComment matches the shortest span from "/*" to "*/", across lines.
var blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)

// Strip removes block and line comments from text. It never fails; text that
// is not valid JSON after stripping is reported by Decode, not here.
func Strip(text string) string {
	text = blockComment.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = stripLine(line)
	}
	return strings.Join(lines, "\n")
}

// stripLine truncates line at the first "//" that is not inside a
// double-quoted string. An escaped character can neither toggle string
// state nor start a comment.
func stripLine(line string) string {
	inString := false
	escaped := false

	for i := 0; i < len(line); i++ {
		c := line[i]

		if escaped {
			escaped = false
			continue
		}

		switch c {
		case '\\':
			escaped = true
		case '"':
			inString = !inString
		case '/':
			if !inString && i+1 < len(line) && line[i+1] == '/' {
				return line[:i]
			}
		}
	}

	return line
}
