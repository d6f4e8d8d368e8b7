package helpers

import (
	"context"
	"strings"
)

// Fixed bot replies. The original bot speaks Russian; keep its wording.
const (
	GreetingReply = "Привет! Я ИИ-бот. Напиши /ask <твой вопрос>."
	EmptyAskReply = "Напиши что-то после /ask"
	ErrorPrefix   = "Ошибка: "
)

// CompleteFunc produces an answer for a free-text prompt.
type CompleteFunc func(ctx context.Context, prompt string) (string, error)

// AnswerAsk is the whole /ask relay policy: an empty prompt gets the usage
// reply without touching the completion API, a failure is relayed as an
// error string, and anything else is the answer verbatim.
func AnswerAsk(ctx context.Context, complete CompleteFunc, prompt string) string {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return EmptyAskReply
	}

	answer, err := complete(ctx, prompt)
	if err != nil {
		return ErrorPrefix + err.Error()
	}
	return answer
}
