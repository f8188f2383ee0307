// Package intent classifies an utterance into a closed set of intents
// with a confidence-gated statistical classifier. Results below the
// confidence threshold degrade to Unknown so out-of-distribution input
// fails closed; callers then fall back to keyword rules.
package intent
