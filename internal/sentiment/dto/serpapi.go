package dto

// SerpAPIResponse is the subset of the SerpAPI search.json payload the fetcher reads.
type SerpAPIResponse struct {
	OrganicResults []OrganicResult `json:"organic_results"`
}

// OrganicResult is a single organic search hit. Missing fields decode as "".
type OrganicResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}
