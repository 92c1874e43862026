package llm

import (
	"fmt"
	"strings"
)

// AnswerPrompt composes the grounded question prompt. The model is
// instructed to use only the retrieved context and to admit when the answer
// is not in it.
func AnswerPrompt(question, grounding string) string {
	return fmt.Sprintf(`Use ONLY the context below to answer.

Context:
%s

Question:
%s

If the answer isn't in the context, say "I don't know".`, grounding, question)
}

// SummaryPrompt composes a summarization prompt over recent questions.
func SummaryPrompt(recent []string) string {
	return "Summarize the following in a short paragraph:\n\n" + strings.Join(recent, "\n")
}

// Grounding joins retrieved chunk texts into the context block for
// AnswerPrompt.
func Grounding(chunks []string) string {
	return strings.Join(chunks, "\n\n")
}
