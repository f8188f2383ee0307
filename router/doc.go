// Package router resolves journeys over the three-line topology. Routes
// are either direct (shared line) or two legs through a precomputed
// junction station; the junction table is keyed by the unordered line
// pair because the topology is small and static.
package router
