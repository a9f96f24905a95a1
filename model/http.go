package model

type MatchRequest struct {
	Frequency     float64 `json:"frequency"`
	Transposition string  `json:"transposition,omitempty"`
}

type MatchResponse struct {
	Note      string  `json:"note"`
	Octave    int     `json:"octave"`
	Cents     float64 `json:"cents"`
	Frequency float64 `json:"frequency"`
	Tuning    string  `json:"tuning"`
}

type NoteInfo struct {
	Note      string  `json:"note"`
	Index     int     `json:"index"`
	Frequency float64 `json:"frequency"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
