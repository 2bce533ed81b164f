package prompt

import (
	"strings"

	"ai-devicechat-be/internal/constant"
)

// Builder assembles the final prompt sent verbatim to the completion
// backend: persona, device context, the user's question and answer
// formatting instructions, in fixed order.
type Builder struct {
	query        string
	contextBlock string
}

func NewBuilder(query, contextBlock string) *Builder {
	return &Builder{
		query:        query,
		contextBlock: contextBlock,
	}
}

// Build joins the prompt sections with newlines. Empty sections are
// skipped so the prompt never carries stray blank lines.
func (b *Builder) Build() string {
	parts := []string{
		constant.PersonaPreamble,
		b.contextBlock,
		constant.PromptSeparator,
		b.userQuestion(),
		constant.PromptSeparator,
		constant.AnswerInstructions,
		constant.PromptSeparator,
		constant.AnswerCue,
	}

	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}

	return strings.Join(nonEmpty, "\n")
}

func (b *Builder) userQuestion() string {
	if b.query == "" {
		return ""
	}
	return "User question: " + b.query
}
