// Package fare computes distance-based ticket prices for the suburban
// network. Distances come from a fixed pairwise table with hub
// composition for pairs the table does not carry directly; prices come
// from the published slab structure.
package fare
