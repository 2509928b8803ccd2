package answer

import (
	"context"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

type openaiClient struct {
	oc    *openai.Client
	model string
}

// NewOpenAI answers via a chat completion with the same timeout policy
// as the remote mode.
func NewOpenAI(apiKey string) Asker {
	occ := openai.DefaultConfig(apiKey)
	occ.HTTPClient = &http.Client{
		Timeout:   askTimeout,
		Transport: &http.Transport{Proxy: http.ProxyFromEnvironment},
	}
	return &openaiClient{
		oc:    openai.NewClientWithConfig(occ),
		model: openai.GPT4oMini,
	}
}

func (c *openaiClient) Ask(ctx context.Context, question string) (string, error) {
	if err := checkQuestion(question); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, askTimeout)
	defer cancel()

	res, err := c.oc.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: question,
		}},
	})
	if err != nil {
		if isTimeout(err) {
			return "", ErrTimeout
		}
		logger().Infow("chat completion fail", "err", err)
		return "", err
	}
	if len(res.Choices) == 0 {
		return "", ErrMalformed
	}
	return res.Choices[0].Message.Content, nil
}
