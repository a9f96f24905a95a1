package cmd

import (
	"math"
	"strconv"

	"github.com/fatih/color"
	"github.com/mkofman/pitchmatch/constants"
	"github.com/mkofman/pitchmatch/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(matchCmd)
}

var matchCmd = &cobra.Command{
	Use:   "match <frequency> [transposition]",
	Short: "Matches a single frequency",
	Long:  `Matches a single frequency (Hz) against the scale, optionally remapped into a written transposition (e.g. A# for B-flat instruments)`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			panic("Need a frequency...")
		}
		freq, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			panic("Could not parse frequency: " + err.Error())
		}
		transposition := scale.C
		if len(args) > 1 {
			t, ok := scale.NoteNamed(args[1])
			if !ok {
				panic("Unknown transposition note: " + args[1])
			}
			transposition = t
		}

		m, err := scale.ClosestNote(scale.Frequency(freq))
		if err != nil {
			panic("Could not match: " + err.Error())
		}
		printMatch(m.InTransposition(transposition), scale.Frequency(freq))
	},
}

func printMatch(m scale.Match, measured scale.Frequency) {
	cents := m.Distance.Cents()
	switch {
	case math.Abs(cents) <= constants.InTuneCents:
		color.Green("%v%d  %+.1f cents  (%.2f Hz)", m.Note, m.Octave, cents, float64(measured))
	case m.Distance.IsFlat():
		color.Red("%v%d  %+.1f cents flat  (%.2f Hz)", m.Note, m.Octave, cents, float64(measured))
	default:
		color.Yellow("%v%d  %+.1f cents sharp  (%.2f Hz)", m.Note, m.Octave, cents, float64(measured))
	}
}
