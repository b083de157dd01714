package repository

import (
	"fmt"
	"strings"
)

var analystBrief = []string{
	"What the company does (1-2 lines)",
	"Today's main catalyst or news moving the stock",
	"Sentiment (Bullish, Bearish, Neutral) and why",
	"Possible intraday price action or volatility range estimate",
}

// BuildAnalystSystemPrompt returns the fixed instruction for the news analyst.
func BuildAnalystSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You are a professional stock market news analyst. ")
	sb.WriteString("Given web search results about a stock, summarize:")
	for _, point := range analystBrief {
		sb.WriteString("\n- ")
		sb.WriteString(point)
	}
	return sb.String()
}

// BuildAnalysisUserPrompt embeds the ticker and the search digest verbatim.
func BuildAnalysisUserPrompt(ticker, digest string) string {
	return fmt.Sprintf("Ticker: %s\n\nWeb Search Results:\n%s\n\nGive your analysis:", ticker, digest)
}
