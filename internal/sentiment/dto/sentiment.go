package dto

// Outcome is the terminal state a sentiment request ended in.
type Outcome string

const (
	OutcomeNoTicker       Outcome = "no_ticker"
	OutcomeFetchFailed    Outcome = "fetch_failed"
	OutcomeAnalysisFailed Outcome = "analysis_failed"
	OutcomeEmptyAnalysis  Outcome = "empty_analysis"
	OutcomeCompleted      Outcome = "completed"
)

// SentimentResult is what the pipeline produced for one request.
type SentimentResult struct {
	Ticker  string
	Outcome Outcome
	// Text is the display text: the analysis or a human readable error.
	Text   string
	Digest string
}

// SentimentResponse is the JSON body returned by the sentiment API.
type SentimentResponse struct {
	Ticker  string  `json:"ticker" example:"AAPL"`
	Outcome Outcome `json:"outcome" example:"completed"`
	Text    string  `json:"text"`
	Digest  string  `json:"digest,omitempty"`
}

// NewSentimentResponse maps a pipeline result to its API representation.
func NewSentimentResponse(result *SentimentResult) SentimentResponse {
	return SentimentResponse{
		Ticker:  result.Ticker,
		Outcome: result.Outcome,
		Text:    result.Text,
		Digest:  result.Digest,
	}
}

// NullPageData is rendered by null_page.html.
type NullPageData struct {
	Data string
}

// SentimentPageData is rendered by sentiment.html.
type SentimentPageData struct {
	Ticker string
	AIText string
}
