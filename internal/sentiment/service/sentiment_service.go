package service

import (
	"context"
	"errors"
	"strings"

	"golang-stock-sentiment/internal/sentiment/dto"
	"golang-stock-sentiment/pkg/logger"
)

// SentimentService runs the ticker -> search digest -> model analysis pipeline.
type SentimentService interface {
	Analyze(ctx context.Context, ticker string) *dto.SentimentResult
}

// NewSentimentService creates a new sentiment service.
func NewSentimentService(fetcher WebResultFetcher, requester AnalysisRequester, logger *logger.Logger) SentimentService {
	return &sentimentService{
		fetcher:   fetcher,
		requester: requester,
		logger:    logger,
	}
}

type sentimentService struct {
	fetcher   WebResultFetcher
	requester AnalysisRequester
	logger    *logger.Logger
}

// Analyze never fails: every outcome, including errors, ends up as display text.
// A failed fetch short-circuits so no model call is spent on it.
func (s *sentimentService) Analyze(ctx context.Context, ticker string) *dto.SentimentResult {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		s.logger.WarnContext(ctx, "Null ticker received")
		return fail(&PipelineError{Kind: KindMissingInput}, dto.OutcomeNoTicker, "", "")
	}

	s.logger.InfoContext(ctx, "Handling ticker", logger.StringField("ticker", ticker))

	digest, err := s.fetcher.FetchWebResults(ctx, ticker)
	if err != nil {
		return fail(asPipelineError(err, KindFetch, ticker), dto.OutcomeFetchFailed, ticker, "")
	}

	analysis, err := s.requester.RequestAnalysis(ctx, ticker, digest)
	if err != nil {
		return fail(asPipelineError(err, KindAnalysis, ticker), dto.OutcomeAnalysisFailed, ticker, digest)
	}

	if analysis == "" {
		s.logger.WarnContext(ctx, "Model returned no analysis", logger.StringField("ticker", ticker))
		return fail(&PipelineError{Kind: KindEmptyAnalysis, Ticker: ticker}, dto.OutcomeEmptyAnalysis, ticker, digest)
	}

	return &dto.SentimentResult{
		Ticker:  ticker,
		Outcome: dto.OutcomeCompleted,
		Text:    analysis,
		Digest:  digest,
	}
}

func fail(err *PipelineError, outcome dto.Outcome, ticker, digest string) *dto.SentimentResult {
	return &dto.SentimentResult{
		Ticker:  ticker,
		Outcome: outcome,
		Text:    err.Error(),
		Digest:  digest,
	}
}

func asPipelineError(err error, kind ErrorKind, ticker string) *PipelineError {
	var pErr *PipelineError
	if errors.As(err, &pErr) {
		return pErr
	}
	return &PipelineError{Kind: kind, Ticker: ticker, Err: err}
}
