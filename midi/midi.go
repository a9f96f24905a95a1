package midi

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/mkofman/pitchmatch/scale"
	"gitlab.com/gomidi/midi/v2/smf"
)

// KeyFrequency returns the equal-temperament frequency of a MIDI key
// number (A4 = key 69 = 440 Hz).
func KeyFrequency(key uint8) scale.Frequency {
	return scale.Frequency(440 * math.Pow(2, (float64(key)-69)/12))
}

// ClosestNoteForKey matches a MIDI key number against the scale.
func ClosestNoteForKey(key uint8) (scale.Match, error) {
	return scale.ClosestNote(KeyFrequency(key))
}

func ReadMidiFile(path string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// smf.ReadFrom panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return &blank, fmt.Errorf("could not read midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("could not parse midi file: %w", err)
	}

	return res, nil
}
