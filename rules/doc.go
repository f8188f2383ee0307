// Package rules carries the static railway rule text shown for
// concession, luggage and season-pass queries. The text is loaded from
// a YAML file at startup; when the file is missing the feature degrades
// to a "not available" answer without affecting anything else.
package rules
