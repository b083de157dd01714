package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang-stock-sentiment/internal/sentiment/config"
	"golang-stock-sentiment/internal/sentiment/dto"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"

	"go.uber.org/zap"
)

// SearchRepository runs web searches against the search provider.
type SearchRepository interface {
	Search(ctx context.Context, query string) ([]dto.OrganicResult, error)
}

type serpAPIRepository struct {
	cfg        *config.Config
	log        *logger.Logger
	httpClient *http.Client
}

// NewSerpAPIRepository creates a SearchRepository backed by SerpAPI.
func NewSerpAPIRepository(cfg *config.Config, log *logger.Logger) SearchRepository {
	return &serpAPIRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: cfg.SerpAPI.Timeout,
		},
	}
}

func (r *serpAPIRepository) Search(ctx context.Context, query string) ([]dto.OrganicResult, error) {
	params := url.Values{}
	params.Set("engine", common.SearchEngine)
	params.Set("q", query)
	params.Set("api_key", r.cfg.SerpAPI.APIKey)
	params.Set("num", strconv.Itoa(common.SearchNumResults))

	fields := []zap.Field{
		zap.String("url", r.cfg.SerpAPI.BaseURL),
		zap.String("query", query),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.SerpAPI.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to create new http request", append(fields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		err = stripRequestURL(err)
		r.log.ErrorContext(ctx, "Failed to send request to SerpAPI", append(fields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to send request to SerpAPI: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		r.log.ErrorContext(ctx, "Received non-OK response from SerpAPI", append(fields, zap.Int("status_code", resp.StatusCode))...)
		return nil, fmt.Errorf("received non-OK response from SerpAPI: %d - %s", resp.StatusCode, string(body))
	}

	var payload dto.SerpAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		r.log.ErrorContext(ctx, "Failed to decode SerpAPI response", append(fields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	r.log.DebugContext(ctx, "SerpAPI returned organic results", append(fields, zap.Int("count", len(payload.OrganicResults)))...)

	return payload.OrganicResults, nil
}

// stripRequestURL drops the request URL from a transport error. The URL
// carries api_key in its query string and the error text reaches the user.
func stripRequestURL(err error) error {
	var uErr *url.Error
	if errors.As(err, &uErr) {
		return fmt.Errorf("%s request: %w", uErr.Op, uErr.Err)
	}
	return err
}
