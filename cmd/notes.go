package cmd

import (
	"fmt"

	"github.com/mkofman/pitchmatch/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(notesCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Prints the reference table",
	Long:  `Prints the canonical note frequencies for octaves 0 through 8`,
	Run: func(cmd *cobra.Command, args []string) {
		printNotes()
	},
}

func printNotes() {
	fmt.Print("    ")
	for octave := 0; octave <= 8; octave++ {
		fmt.Printf("%10d", octave)
	}
	fmt.Println()
	for _, n := range scale.AllNotes {
		fmt.Printf("%-4v", n)
		for octave := 0; octave <= 8; octave++ {
			fmt.Printf("%10.3f", float64(n.Frequency().Shifted(octave)))
		}
		fmt.Println()
	}
}
