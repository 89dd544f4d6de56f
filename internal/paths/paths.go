// Package paths derives the commented/canonical file pair for a document.
//
// A document lives in two files that differ only by suffix:
//
//	settings.json    canonical, machine-generated, no comments
//	settings.jsonc   commented, edited by hand
//
// Every caller derives one name from the other through this package so the
// naming rule exists in exactly one place.
package paths

import "strings"

const (
	// CanonicalSuffix is the suffix of the strict JSON file.
	CanonicalSuffix = ".json"
	// CommentedSuffix is the suffix of the file that keeps comments.
	CommentedSuffix = ".jsonc"
)

// FilePair names the two files that make up one document.
type FilePair struct {
	// Canonical is the pretty-printed, comment-free JSON file.
	Canonical string
	// Commented is the hand-edited file with comments.
	Commented string
}

// CompanionPath returns the commented path for canonical path p. A trailing
// ".json" is replaced with ".jsonc"; any other path gets ".jsonc" appended.
func CompanionPath(p string) string {
	if strings.HasSuffix(p, CanonicalSuffix) {
		return strings.TrimSuffix(p, CanonicalSuffix) + CommentedSuffix
	}
	return p + CommentedSuffix
}

// CanonicalPath maps a user-supplied path to the canonical path. A ".jsonc"
// path maps to its ".json" sibling; anything else is already canonical.
func CanonicalPath(p string) string {
	if strings.HasSuffix(p, CommentedSuffix) {
		return strings.TrimSuffix(p, CommentedSuffix) + CanonicalSuffix
	}
	return p
}

// Resolve builds the FilePair for a path given in either form.
func Resolve(p string) FilePair {
	canonical := CanonicalPath(p)
	return FilePair{
		Canonical: canonical,
		Commented: CompanionPath(canonical),
	}
}
