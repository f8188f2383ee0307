// Package session carries conversation context across turns. A Context
// remembers the last resolved source, destination, time and intent for
// one session; elliptical follow-ups ("after 6 pm?", "what about from
// Andheri instead?") are filled from it. Fields are only overwritten on
// a positive signal from the current turn.
package session
