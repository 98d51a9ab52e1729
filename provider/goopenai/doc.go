// Package goopenai converts function definitions into tools for the
// community OpenAI client github.com/sashabaranov/go-openai.
//
// [Tool] hands the parameters over pre-encoded, keeping property order.
// [Definition] gives the typed jsonschema.Definition form instead; its
// properties are a plain map, so property order is not preserved there and
// the property count bounds have no counterpart.
package goopenai
