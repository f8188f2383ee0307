// Package reviews persists user-submitted station and route reviews in
// a local SQLite database. Lookups never fail the chat turn; a broken
// or absent store degrades review answers to "no data".
package reviews
