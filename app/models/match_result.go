package models

// MatchType enum cho kết quả matching
type MatchType string

const (
	MatchTypeExact MatchType = "exact_match"
	MatchTypeFuzzy MatchType = "fuzzy_match"
	MatchTypeNone  MatchType = "no_match"
)

// Candidate một địa chỉ golden thỏa điều kiện match
type Candidate struct {
	MatchedAddress string  `json:"matched_address"`
	Confidence     float64 `json:"confidence"`
	GoldenRecord   Record  `json:"golden_record"`
}

// MatchResult kết quả resolve một địa chỉ input.
//
// Confidence is always in [0,1]: 1.0 for exact matches, best score / 100
// otherwise, including no_match so callers can observe near misses.
type MatchResult struct {
	MatchType       MatchType   `json:"match_type"`
	Confidence      float64     `json:"confidence"`
	InputAddress    string      `json:"input_address"`
	NormalizedInput string      `json:"normalized_input"`
	MatchedAddress  string      `json:"matched_address,omitempty"`
	GoldenRecord    Record      `json:"golden_record,omitempty"`
	MatchCount      int         `json:"match_count"`
	Matches         []Candidate `json:"matches"`
}
