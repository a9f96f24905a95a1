package scale

import "fmt"

// Match binds a note to the octave it was found in and the signed cents
// distance from the note to the measured frequency. Values are never
// mutated; transposition returns a new Match.
type Match struct {
	Note     Note
	Octave   int
	Distance MusicalDistance
}

// Frequency returns the canonical frequency of the matched note at the
// matched octave.
func (m Match) Frequency() Frequency {
	return m.Note.Frequency().Shifted(m.Octave)
}

// InTransposition remaps the match into the written scale of a transposing
// instrument (e.g. ASharp for a B-flat instrument). The distance carries
// over unchanged: it measures the acoustic input, not the label.
func (m Match) InTransposition(transposition Note) Match {
	if transposition == C {
		return m
	}
	offset := (12 - transposition.Index()) + m.Note.Index()
	transposed := AllNotes[offset%12]
	octave := m.Octave
	if offset > 11 {
		octave++
	}
	return Match{Note: transposed, Octave: octave, Distance: m.Distance}
}

func (m Match) String() string {
	return fmt.Sprintf("%v%d (%+.1f cents)", m.Note, m.Octave, m.Distance.Cents())
}
