package model

import "time"

type TimedMatch struct {
	// storing it in millis for space savings (32 vs. 64), and no practice
	// session runs anywhere near the ~1200 hour limit
	OffsetMs  uint32
	Note      string
	Octave    int
	Cents     float64
	Frequency float64
}

type Session struct {
	Id        string
	StartedAt time.Time
	Matches   []TimedMatch
}

type SessionMetadata struct {
	Instrument    string
	Transposition string
	NumMatches    uint
}
