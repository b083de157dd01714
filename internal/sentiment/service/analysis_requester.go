package service

import (
	"context"
	"strings"

	"golang-stock-sentiment/internal/sentiment/repository"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"
)

// AnalysisRequester asks the model for a sentiment brief on a ticker.
type AnalysisRequester interface {
	RequestAnalysis(ctx context.Context, ticker, digest string) (string, error)
}

type analysisRequester struct {
	aiRepo repository.AIRepository
	logger *logger.Logger
}

// NewAnalysisRequester creates an AnalysisRequester using the given AI provider.
func NewAnalysisRequester(aiRepo repository.AIRepository, logger *logger.Logger) AnalysisRequester {
	return &analysisRequester{
		aiRepo: aiRepo,
		logger: logger,
	}
}

// RequestAnalysis returns the trimmed model reply, or a *PipelineError of KindAnalysis.
// An empty reply is returned as "" without error.
func (a *analysisRequester) RequestAnalysis(ctx context.Context, ticker, digest string) (string, error) {
	a.logger.InfoContext(ctx, "Sending web results to model",
		logger.StringField("ticker", ticker),
		logger.StringField("model", a.aiRepo.Model()),
	)

	reply, err := a.aiRepo.Complete(ctx, repository.ChatRequest{
		SystemPrompt: repository.BuildAnalystSystemPrompt(),
		UserPrompt:   repository.BuildAnalysisUserPrompt(ticker, digest),
		Temperature:  common.AnalysisTemperature,
	})
	if err != nil {
		a.logger.ErrorContext(ctx, "Model API error", logger.StringField("ticker", ticker), logger.ErrorField(err))
		return "", &PipelineError{Kind: KindAnalysis, Ticker: ticker, Err: err}
	}

	reply = strings.TrimSpace(reply)
	a.logger.DebugContext(ctx, "Model response", logger.StringField("ticker", ticker), logger.StringField("reply", reply))

	return reply, nil
}
