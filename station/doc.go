// Package station holds the canonical station registry for the Mumbai
// suburban network: line membership, per-line ordering, the
// alias/misspelling table and the name resolution chain
// (exact -> alias -> fuzzy).
package station
