package common

// Texts shown to the user for each pipeline outcome.
const (
	NoTickerText        = "No ticker provided."
	NoRecentNewsText    = "No recent news found."
	NoAnalysisText      = "No analysis returned."
	FetchErrorPrefix    = "Error fetching web results for "
	AnalysisErrorPrefix = "Error from GPT API: "
)

// Fixed parameters of the outbound calls.
const (
	SearchEngine        = "google"
	SearchNumResults    = 5
	AnalysisTemperature = 0.3
)

// AI providers selectable through ai.provider.
const (
	AIProviderOpenAI = "openai"
	AIProviderGemini = "gemini"
)
