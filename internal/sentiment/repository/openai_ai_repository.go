package repository

import (
	"context"
	"fmt"
	"net/http"

	"golang-stock-sentiment/internal/sentiment/config"
	"golang-stock-sentiment/pkg/logger"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openaiAIRepository struct {
	client openai.Client
	cfg    *config.Config
	logger *logger.Logger
}

// NewOpenAIRepository creates an AIRepository backed by the OpenAI chat completions API.
func NewOpenAIRepository(cfg *config.Config, log *logger.Logger) AIRepository {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAI.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: cfg.OpenAI.Timeout}),
		option.WithMaxRetries(0),
	}
	if cfg.OpenAI.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAI.BaseURL))
	}

	return &openaiAIRepository{
		client: openai.NewClient(opts...),
		cfg:    cfg,
		logger: log,
	}
}

func (r *openaiAIRepository) Model() string {
	return r.cfg.OpenAI.Model
}

func (r *openaiAIRepository) Complete(ctx context.Context, req ChatRequest) (string, error) {
	r.logger.DebugContext(ctx, "Sending request to OpenAI API",
		logger.StringField("model", r.cfg.OpenAI.Model),
		logger.StringField("prompt", req.UserPrompt),
	)

	resp, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(r.cfg.OpenAI.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "OpenAI chat completion failed", logger.ErrorField(err), logger.StringField("model", r.cfg.OpenAI.Model))
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	r.logger.DebugContext(ctx, "OpenAI usage", logger.IntField("total_tokens", int(resp.Usage.TotalTokens)))

	return resp.Choices[0].Message.Content, nil
}
