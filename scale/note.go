package scale

import (
	"errors"
	"fmt"
	"math"
)

// Note is one of the 12 equal-temperament pitch classes, ordered
// chromatically from C.
type Note uint8

const (
	C Note = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// AllNotes is the chromatic scale starting at C. Iteration order matters:
// the nearest-note scan keeps the first minimum it encounters.
var AllNotes = []Note{C, CSharp, D, DSharp, E, F, FSharp, G, GSharp, A, ASharp, B}

// Canonical octave-0 frequencies, standard pitch (A4 = 440 Hz).
var baseFrequencies = [12]Frequency{
	16.35160, // C
	17.32391, // C#
	18.35405, // D
	19.44544, // D#
	20.60172, // E
	21.82676, // F
	23.12465, // F#
	24.49971, // G
	25.95654, // G#
	27.50000, // A
	29.13524, // A#
	30.86771, // B
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (n Note) Index() int {
	return int(n)
}

// Frequency returns the note's canonical frequency at octave 0.
func (n Note) Frequency() Frequency {
	return baseFrequencies[n]
}

func (n Note) String() string {
	return noteNames[n]
}

// NoteNamed looks up a note by its display label ("C", "C#", ... "B").
func NoteNamed(name string) (Note, bool) {
	for _, n := range AllNotes {
		if noteNames[n] == name {
			return n, true
		}
	}
	return C, false
}

var ErrInvalidFrequency = errors.New("frequency must be positive and finite")

// ClosestNote finds the equal-temperament note nearest to the given
// frequency, the octave it falls in, and the signed cents distance from
// that note to the input.
//
// A non-nil error with a non-zero Match means the boundary correction
// failed to converge; the returned match is the uncorrected fast result.
// That path indicates a logic error and is not expected to be reachable.
func ClosestNote(f Frequency) (Match, error) {
	if fv := float64(f); fv <= 0 || math.IsNaN(fv) || math.IsInf(fv, 0) {
		return Match{}, ErrInvalidFrequency
	}

	// Normalize into the canonical octave-0 range.
	normalized := f
	for normalized > B.Frequency() {
		normalized = normalized.Shifted(-1)
	}
	for normalized < C.Frequency() {
		normalized = normalized.Shifted(1)
	}

	// Fast scan: nearest of the 12 canonical notes by absolute cents.
	best := C
	bestDistance := C.Frequency().Distance(normalized)
	for _, n := range AllNotes[1:] {
		d := n.Frequency().Distance(normalized)
		if math.Abs(d.Cents()) < math.Abs(bestDistance.Cents()) {
			best = n
			bestDistance = d
		}
	}

	octave := normalized.DistanceInOctaves(f)
	if octave < 0 {
		// Inputs below C0 collapse to octave 0.
		octave = 0
	}
	fast := Match{Note: best, Octave: octave, Distance: bestDistance}

	// The fast scan is only unreliable at the B/C wrap point, where the
	// true nearest note can lie across the octave boundary.
	if (fast.Note == C && fast.Distance.IsFlat()) || (fast.Note == B && fast.Distance.IsSharp()) {
		return correctAtBoundary(f, fast)
	}
	return fast, nil
}

// correctAtBoundary re-evaluates C and B in the matched octave and the one
// above against the original input. Candidates are ordered so that once one
// is worse than the running best, no later candidate can improve on it.
func correctAtBoundary(f Frequency, fast Match) (Match, error) {
	var best Match
	var haveBest bool
	for _, octave := range [2]int{fast.Octave, fast.Octave + 1} {
		for _, n := range [2]Note{C, B} {
			d := n.Frequency().Shifted(octave).Distance(f)
			if haveBest && math.Abs(d.Cents()) > math.Abs(best.Distance.Cents()) {
				return best, nil
			}
			best = Match{Note: n, Octave: octave, Distance: d}
			haveBest = true
		}
	}
	// Unreachable: the last candidate is always across the seam from the
	// input and must trip the early return.
	return fast, fmt.Errorf("boundary correction did not converge for %v Hz", float64(f))
}
