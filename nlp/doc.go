// Package nlp turns a raw utterance into entities: station mentions in
// first-seen order and an optional time of day. It also folds common
// Hindi/Marathi transit vocabulary into English before extraction.
package nlp
