package repository

import (
	"context"
	"fmt"

	"golang-stock-sentiment/internal/sentiment/config"
	"golang-stock-sentiment/pkg/logger"

	"google.golang.org/genai"
)

// geminiAIRepository is an implementation of AIRepository that uses the Google Gemini API.
type geminiAIRepository struct {
	cfg         *config.Config
	logger      *logger.Logger
	genAiClient *genai.Client
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) (AIRepository, error) {
	if genAiClient == nil {
		return nil, fmt.Errorf("gemini client is required")
	}
	return &geminiAIRepository{
		cfg:         cfg,
		logger:      log,
		genAiClient: genAiClient,
	}, nil
}

func (r *geminiAIRepository) Model() string {
	return r.cfg.Gemini.Model
}

func (r *geminiAIRepository) Complete(ctx context.Context, req ChatRequest) (string, error) {
	temperature := float32(req.Temperature)
	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemPrompt, genai.RoleUser),
		Temperature:       &temperature,
	}

	r.logger.DebugContext(ctx, "Request Gemini API",
		logger.StringField("model", r.cfg.Gemini.Model),
		logger.StringField("prompt", req.UserPrompt),
	)

	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.Model, genai.Text(req.UserPrompt), genCfg)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to send request to Gemini API", logger.ErrorField(err), logger.StringField("model", r.cfg.Gemini.Model))
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", ErrNoChoices
	}

	return resp.Text(), nil
}
