package service

import (
	"context"
	"fmt"
	"strings"

	"golang-stock-sentiment/internal/sentiment/dto"
	"golang-stock-sentiment/internal/sentiment/repository"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"
)

// MaxDigestEntries bounds how many search results make it into a digest.
const MaxDigestEntries = common.SearchNumResults

// WebResultFetcher turns a ticker into a short digest of web search results.
type WebResultFetcher interface {
	FetchWebResults(ctx context.Context, ticker string) (string, error)
}

type webResultFetcher struct {
	searchRepo repository.SearchRepository
	logger     *logger.Logger
}

// NewWebResultFetcher creates a WebResultFetcher over the given search repository.
func NewWebResultFetcher(searchRepo repository.SearchRepository, logger *logger.Logger) WebResultFetcher {
	return &webResultFetcher{
		searchRepo: searchRepo,
		logger:     logger,
	}
}

// FetchWebResults returns the digest, or a *PipelineError of KindFetch.
func (f *webResultFetcher) FetchWebResults(ctx context.Context, ticker string) (string, error) {
	f.logger.InfoContext(ctx, "Searching news for ticker", logger.StringField("ticker", ticker))

	results, err := f.searchRepo.Search(ctx, SearchQuery(ticker))
	if err != nil {
		f.logger.ErrorContext(ctx, "Error fetching web results", logger.StringField("ticker", ticker), logger.ErrorField(err))
		return "", &PipelineError{Kind: KindFetch, Ticker: ticker, Err: err}
	}

	digest := BuildDigest(results)
	f.logger.DebugContext(ctx, "Web search results", logger.StringField("ticker", ticker), logger.StringField("digest", digest))

	return digest, nil
}

// SearchQuery is the query sent to the search provider for a ticker.
func SearchQuery(ticker string) string {
	return fmt.Sprintf("%s stock news", ticker)
}

// BuildDigest formats the first MaxDigestEntries results as
// "- <title>\n<snippet>\n(<link>)" joined by newlines.
func BuildDigest(results []dto.OrganicResult) string {
	if len(results) == 0 {
		return common.NoRecentNewsText
	}
	if len(results) > MaxDigestEntries {
		results = results[:MaxDigestEntries]
	}

	entries := make([]string, 0, len(results))
	for _, r := range results {
		entries = append(entries, fmt.Sprintf("- %s\n%s\n(%s)", r.Title, r.Snippet, r.Link))
	}
	return strings.Join(entries, "\n")
}
