// Package bus maps areas without their own railway station to nearby
// stations reachable by BEST, TMT and NMMT bus routes. Matching is
// keyword-based over the query text; areas are checked in declaration
// order so overlapping keywords resolve deterministically.
package bus
