package models

// MatchResponse is the success body of POST /match-jobs.
type MatchResponse struct {
	AnalysisResult
	UsedCV bool `json:"used_cv"`
}

type ErrorResponse struct {
	Error   string        `json:"error"`
	Details *ErrorDetails `json:"details,omitempty"`
}

// ErrorDetails carries the diagnostic side of a failed analysis.
type ErrorDetails struct {
	Kind        string `json:"kind"`
	Error       string `json:"error"`
	RawResponse string `json:"raw_response,omitempty"`
	Exception   string `json:"exception,omitempty"`
}
