package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	midifile "github.com/mkofman/pitchmatch/midi"
	"github.com/mkofman/pitchmatch/scale"
	"github.com/mkofman/pitchmatch/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <dir> [maxFiles]",
	Short: "Analyzes midi files",
	Long:  `Matches every note-on in a directory of midi files and prints a pitch-class histogram`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			panic("Need a directory...")
		}
		var maxNum int
		if len(args) > 1 {
			arg, err := strconv.Atoi(args[1])
			if err != nil {
				panic(err)
			}
			maxNum = arg
		}
		analyze(args[0], maxNum)
	},
}

func analyze(dir string, maxNum int) {
	paths := util.GatherAllMidiPaths(dir, maxNum)
	counts := make(map[scale.Note]int)
	octaves := make(map[int]int)
	var total int

	for i, path := range paths {
		fmt.Printf("Processing %v of %v midi files\n", i+1, len(paths))
		parsed, err := midifile.ReadMidiFile(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		for _, track := range parsed.Tracks {
			for _, event := range track {
				var channel uint8
				var key uint8
				var velocity uint8
				if event.Message.GetNoteOn(&channel, &key, &velocity) {
					m, err := midifile.ClosestNoteForKey(key)
					if err != nil {
						continue
					}
					counts[m.Note]++
					octaves[m.Octave]++
					total++
				}
			}
		}
	}

	if total == 0 {
		fmt.Println("No notes found")
		return
	}

	fmt.Printf("\n%v notes across %v files\n", total, len(paths))
	for _, n := range scale.AllNotes {
		count := counts[n]
		width := count * 40 / total
		fmt.Printf("%-2v %6d %v\n", n, count, strings.Repeat("#", width))
	}

	octs := util.GetKeys(octaves)
	sort.Ints(octs)
	fmt.Printf("octaves %d through %d\n", octs[0], octs[len(octs)-1])
}
