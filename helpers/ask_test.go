package helpers

import (
	"context"
	"errors"
	"testing"
)

func TestAnswerAskEmptyPromptSkipsCompletion(t *testing.T) {
	var calls int
	complete := func(ctx context.Context, prompt string) (string, error) {
		calls++
		return "should not happen", nil
	}

	tests := []struct {
		name   string
		prompt string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"tabs_and_newlines", "\t\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnswerAsk(context.Background(), complete, tt.prompt)
			if got != EmptyAskReply {
				t.Errorf("AnswerAsk() = %q; want %q", got, EmptyAskReply)
			}
		})
	}
	if calls != 0 {
		t.Errorf("Completion called %d times; want 0", calls)
	}
}

func TestAnswerAskRelaysAnswer(t *testing.T) {
	complete := func(ctx context.Context, prompt string) (string, error) {
		if prompt != "what is go" {
			t.Errorf("prompt = %q; want trimmed text", prompt)
		}
		return "a programming language", nil
	}

	got := AnswerAsk(context.Background(), complete, "  what is go  ")
	if got != "a programming language" {
		t.Errorf("AnswerAsk() = %q", got)
	}
}

func TestAnswerAskRelaysError(t *testing.T) {
	complete := func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("service down")
	}

	got := AnswerAsk(context.Background(), complete, "hello")
	want := ErrorPrefix + "service down"
	if got != want {
		t.Errorf("AnswerAsk() = %q; want %q", got, want)
	}
}
