package services

import (
	"QuickBlog/configs"
	"QuickBlog/consts"
	"context"

	"github.com/sashabaranov/go-openai"
)

// GenerateText gọi model sinh text qua endpoint OpenAI-compatible của Gemini.
// Một lần gọi duy nhất, deadline theo ctx, không retry.
func GenerateText(ctx context.Context, prompt string) (string, error) {
	apiKey := configs.GetGeminiAPIKey()
	if len(apiKey) < 2 {
		return "", consts.ErrGeminiKeyMissing
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = configs.GetGeminiBaseURL()
	client := openai.NewClientWithConfig(config)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: configs.GetGeminiModel(),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", consts.ErrEmptyModelResponse
	}
	return resp.Choices[0].Message.Content, nil
}
