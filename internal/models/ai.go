package models

// RecommendationsResult is the response for the AI recommendation routes.
// Success is false when the collection is empty and no call was made.
type RecommendationsResult struct {
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
	Recommendations string `json:"recommendations,omitempty"`
	TotalPokemon    int    `json:"totalPokemon,omitempty"`
}

// AnalysisResult is the response for GET /api/ai/analysis
type AnalysisResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	Analysis     string `json:"analysis,omitempty"`
	TotalPokemon int    `json:"totalPokemon,omitempty"`
}

// FactsResult is the response for the public AI demo route
type FactsResult struct {
	Success bool   `json:"success"`
	Facts   string `json:"facts"`
}
