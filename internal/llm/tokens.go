package llm

import (
	"fmt"

	"github.com/tiktoken-go/tokenizer"
)

// CountTokens returns the token count for text using the O200kBase encoding.
//
// NOTE: all the OpenAI models quill targets use O200kBase. If other providers
// are added, this needs a per-model lookup.
func CountTokens(text string) int {
	enc, err := tokenizer.Get(tokenizer.O200kBase)
	if err != nil {
		panic(fmt.Errorf("invalid encoder: %v", tokenizer.O200kBase))
	}

	count, err := enc.Count(text)
	if err != nil {
		// Prose is roughly 4 bytes per token.
		return len(text) / 4
	}
	return count
}
