// Package jsonc turns JSON-with-comments text into strict JSON.
//
// Two comment forms are recognized:
//
//	/* block comments, possibly spanning lines */
//	// line comments, running to the end of the line
//
// Stripping happens in two passes. The first removes every block comment
// with a non-greedy match from "/*" to the nearest "*/". The block pass does
// not know about string literals, so a "/*" inside a quoted string still
// opens a comment:
//
//	{"glob": "src/*.go", "end": "*/"}
//
// strips to
//
//	{"glob": "src"}
//
// The second pass scans each line for "//" outside a double-quoted string
// and truncates the line there. String state and backslash escapes are
// tracked per line only; nothing carries over a line break.
//
// Trailing commas and other JSON5 extensions are not supported.
package jsonc
