package scale

import "math"

// Frequency is a pitch in Hertz. Always > 0 in this package.
type Frequency float64

// MusicalDistance is a signed pitch distance in cents
// (100 cents = 1 semitone, 1200 cents = 1 octave).
type MusicalDistance float64

func (d MusicalDistance) IsFlat() bool {
	return d < 0
}

// IsSharp groups exactly-in-tune (0 cents) with sharp.
func (d MusicalDistance) IsSharp() bool {
	return d >= 0
}

func (d MusicalDistance) Cents() float64 {
	return float64(d)
}

// Shifted returns the frequency moved by the given number of octaves.
// Negative values shift down.
func (f Frequency) Shifted(octaves int) Frequency {
	return f * Frequency(math.Pow(2, float64(octaves)))
}

// DistanceInOctaves returns the number of whole octaves between f and to,
// positive when to is the higher pitch.
func (f Frequency) DistanceInOctaves(to Frequency) int {
	return int(math.Floor(math.Log2(float64(to) / float64(f))))
}

// Distance returns the distance from f to the other frequency in cents,
// positive when the other frequency is sharp of f.
func (f Frequency) Distance(to Frequency) MusicalDistance {
	return MusicalDistance(1200 * math.Log2(float64(to)/float64(f)))
}
