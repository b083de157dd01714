package http

import (
	"net/http"
	"strings"

	"golang-stock-sentiment/internal/sentiment/dto"
	"golang-stock-sentiment/internal/sentiment/service"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SentimentHandler handles HTTP requests for ticker sentiment.
type SentimentHandler struct {
	sentimentService service.SentimentService
	logger           *logger.Logger
}

// NewSentimentHandler creates a new SentimentHandler.
func NewSentimentHandler(sentimentService service.SentimentService, logger *logger.Logger) *SentimentHandler {
	return &SentimentHandler{sentimentService: sentimentService, logger: logger}
}

// RegisterPageRoutes registers the HTML page routes.
func (h *SentimentHandler) RegisterPageRoutes(e *echo.Echo) {
	e.GET("/get", h.GetNullPage)
	e.GET("/get/", h.GetNullPage)
	e.GET("/get/:ticker", h.GetSentimentPage)
}

// RegisterRoutes registers the JSON API routes to the Echo group.
func (h *SentimentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.MissingTicker)
	g.GET("/", h.MissingTicker)
	g.GET("/:ticker", h.GetSentiment)
}

// GetNullPage renders the page shown when no ticker is given.
func (h *SentimentHandler) GetNullPage(c echo.Context) error {
	result := h.sentimentService.Analyze(c.Request().Context(), "")
	return c.Render(http.StatusOK, nullPageTemplate, dto.NullPageData{Data: result.Text})
}

// GetSentimentPage runs the analysis and renders it as HTML.
func (h *SentimentHandler) GetSentimentPage(c echo.Context) error {
	ticker := c.Param("ticker")
	result := h.sentimentService.Analyze(c.Request().Context(), ticker)
	if result.Outcome == dto.OutcomeNoTicker {
		return c.Render(http.StatusOK, nullPageTemplate, dto.NullPageData{Data: result.Text})
	}

	return c.Render(http.StatusOK, sentimentTemplate, dto.SentimentPageData{
		Ticker: strings.ToUpper(result.Ticker),
		AIText: result.Text,
	})
}

// GetSentiment godoc
// @Summary Analyze a ticker
// @Description Search recent news for a ticker and ask the model for a sentiment brief. Every pipeline outcome, including upstream failures, is returned with status 200.
// @Tags sentiment
// @Produce  json
// @Param   ticker  path    string true    "Stock ticker"
// @Success 200 {object} dto.SentimentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /sentiment/{ticker} [get]
func (h *SentimentHandler) GetSentiment(c echo.Context) error {
	result := h.sentimentService.Analyze(c.Request().Context(), c.Param("ticker"))
	if result.Outcome == dto.OutcomeNoTicker {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: result.Text})
	}

	h.logger.DebugContext(c.Request().Context(), "Sentiment analyzed",
		logger.StringField("ticker", result.Ticker),
		logger.StringField("outcome", string(result.Outcome)),
	)

	return c.JSON(http.StatusOK, dto.NewSentimentResponse(result))
}

// MissingTicker godoc
// @Summary Analyze without a ticker
// @Tags sentiment
// @Produce  json
// @Failure 400 {object} dto.ErrorResponse
// @Router /sentiment [get]
func (h *SentimentHandler) MissingTicker(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: common.NoTickerText})
}
