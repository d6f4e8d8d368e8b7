package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"songsnap/config"
)

// GenerateAnswer forwards a user prompt to the completion API verbatim and
// returns the plain-text answer. The prompt is relayed as-is; there is no
// system instruction.
func GenerateAnswer(ctx context.Context, prompt string) (string, error) {
	if !config.Config.Gemini.IsEnabled() {
		return "", errors.New("completion API is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.Config.Gemini.APIKey))
	if err != nil {
		log.Errorf("failed to create completion client: %v", err)
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel(config.Config.Gemini.Model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Errorf("failed to generate content: %v", err)
		return "", err
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				sb.WriteString(fmt.Sprint(part))
			}
		}
	}
	return sb.String(), nil
}
