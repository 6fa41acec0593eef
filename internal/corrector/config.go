package corrector

// Suggestion is one ranked correction candidate for a single token.
type Suggestion struct {
	Term     string `json:"term"`
	Distance int    `json:"distance"`
}

// CorrectionResult is the outcome of correcting a full text.
// Corrections maps each original token that changed to its replacement.
type CorrectionResult struct {
	Original    string            `json:"original"`
	Corrected   string            `json:"corrected"`
	Corrections map[string]string `json:"corrections"`
}
