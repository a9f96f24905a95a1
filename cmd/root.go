package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pitchmatch",
	Short: "Matches frequencies to the nearest equal-temperament note",
	Long:  `Matches measured frequencies to the nearest note of the twelve-tone equal-temperament scale, with octave and cents offset.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
