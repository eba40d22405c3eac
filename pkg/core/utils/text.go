// Package utils provides hygiene helpers for text coming back from LLM
// backends: markdown cleanup and lenient JSON parsing. Model output is
// never trusted to be well-formed.
package utils

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// CleanAdviceText normalizes a raw model response into plain advice text.
// It trims whitespace, strips an outer markdown code block if the model
// wrapped its answer in one, and drops a leading "Advice:" label echoed
// back from the prompt.
func CleanAdviceText(input string) string {
	cleaned := strings.TrimSpace(input)

	if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		// A language tag may follow the opening fence.
		if idx := strings.IndexByte(cleaned, '\n'); idx >= 0 && !strings.ContainsAny(cleaned[:idx], " .") {
			cleaned = cleaned[idx+1:]
		}
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	if rest, ok := strings.CutPrefix(cleaned, "Advice:"); ok {
		cleaned = strings.TrimSpace(rest)
	}

	return cleaned
}

// ValidateMarkdown checks that the string parses as Markdown. Goldmark is
// very permissive, so this only rejects pathological input; it exists so
// rendering layers can trust what they receive.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	return parser.Parse(reader) != nil
}
