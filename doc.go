// Package railbot answers natural-language questions about the Mumbai
// suburban rail network: routes, timings, fares, platforms and railway
// rules. The entry point is Responder.Respond, which runs one chat turn
// through normalization, entity extraction, intent classification,
// conversational context and the intent-specific answer builders.
package railbot
