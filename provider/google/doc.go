// Package google converts function definitions into function declarations
// for the Google Gen AI SDK (google.golang.org/genai).
//
// The conversion is typed: each schema node becomes a *genai.Schema, with
// property order carried in PropertyOrdering and null types expressed as
// Nullable.
package google
