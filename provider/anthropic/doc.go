// Package anthropic converts function definitions into tool parameters for
// the Anthropic Go SDK (github.com/anthropics/anthropic-sdk-go).
package anthropic
