package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang-stock-sentiment/internal/sentiment/dto"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSentimentService struct {
	results map[string]*dto.SentimentResult
	calls   []string
}

func (f *fakeSentimentService) Analyze(ctx context.Context, ticker string) *dto.SentimentResult {
	f.calls = append(f.calls, ticker)
	if strings.TrimSpace(ticker) == "" {
		return &dto.SentimentResult{Outcome: dto.OutcomeNoTicker, Text: common.NoTickerText}
	}
	if r, ok := f.results[ticker]; ok {
		return r
	}
	return &dto.SentimentResult{Ticker: ticker, Outcome: dto.OutcomeCompleted, Text: "Neutral."}
}

func newTestServer(t *testing.T, svc *fakeSentimentService) *echo.Echo {
	t.Helper()
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	RegisterMiddleware(e, logger.NewNop())

	h := NewSentimentHandler(svc, logger.NewNop())
	h.RegisterPageRoutes(e)
	h.RegisterRoutes(e.Group("/api/v1/sentiment"))
	return e
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	e.ServeHTTP(rec, req)
	return rec
}

func parsePage(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func TestGetNullPage(t *testing.T) {
	for _, target := range []string{"/get", "/get/"} {
		t.Run(target, func(t *testing.T) {
			e := newTestServer(t, &fakeSentimentService{})

			rec := serve(e, target)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
			doc := parsePage(t, rec)
			assert.Equal(t, "No ticker provided.", doc.Find("#message").Text())
		})
	}
}

func TestGetSentimentPage_UppercasesTicker(t *testing.T) {
	svc := &fakeSentimentService{results: map[string]*dto.SentimentResult{
		"aapl": {Ticker: "aapl", Outcome: dto.OutcomeCompleted, Text: "Bullish <strong> demand."},
	}}
	e := newTestServer(t, svc)

	rec := serve(e, "/get/aapl")

	assert.Equal(t, http.StatusOK, rec.Code)
	doc := parsePage(t, rec)
	assert.Equal(t, "AAPL", doc.Find("#ticker").Text())
	assert.Equal(t, "Bullish <strong> demand.", doc.Find("#analysis").Text())
	assert.Equal(t, 0, doc.Find("#analysis strong").Length())
	assert.Equal(t, []string{"aapl"}, svc.calls)
}

func TestGetSentimentPage_FailuresStillRender(t *testing.T) {
	svc := &fakeSentimentService{results: map[string]*dto.SentimentResult{
		"FAIL": {Ticker: "FAIL", Outcome: dto.OutcomeFetchFailed, Text: "Error fetching web results for FAIL: timeout"},
		"GPT":  {Ticker: "GPT", Outcome: dto.OutcomeAnalysisFailed, Text: "Error from GPT API: 500"},
	}}
	e := newTestServer(t, svc)

	rec := serve(e, "/get/FAIL")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Error fetching web results for FAIL: timeout", parsePage(t, rec).Find("#analysis").Text())

	rec = serve(e, "/get/GPT")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Error from GPT API: 500", parsePage(t, rec).Find("#analysis").Text())
}

func TestGetSentiment_JSON(t *testing.T) {
	svc := &fakeSentimentService{results: map[string]*dto.SentimentResult{
		"MSFT": {Ticker: "MSFT", Outcome: dto.OutcomeEmptyAnalysis, Text: "No analysis returned.", Digest: "- A\nB\n(C)"},
	}}
	e := newTestServer(t, svc)

	rec := serve(e, "/api/v1/sentiment/MSFT")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	var body dto.SentimentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, dto.SentimentResponse{
		Ticker:  "MSFT",
		Outcome: dto.OutcomeEmptyAnalysis,
		Text:    "No analysis returned.",
		Digest:  "- A\nB\n(C)",
	}, body)
}

func TestGetSentiment_MissingTicker(t *testing.T) {
	svc := &fakeSentimentService{}
	e := newTestServer(t, svc)

	for _, target := range []string{"/api/v1/sentiment", "/api/v1/sentiment/"} {
		rec := serve(e, target)

		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "No ticker provided.", body.Error)
	}
	assert.Empty(t, svc.calls)
}
