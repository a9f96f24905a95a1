package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/mkofman/pitchmatch/db"
	midifile "github.com/mkofman/pitchmatch/midi"
	"github.com/mkofman/pitchmatch/model"
	"github.com/mkofman/pitchmatch/scale"
	"github.com/mkofman/pitchmatch/session"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var listenTransposition string
var listenInstrument string
var listenStoreMetadata bool

func init() {
	listenCmd.Flags().StringVar(&listenTransposition, "transposition", "C", "written transposition, e.g. A# for B-flat instruments")
	listenCmd.Flags().StringVar(&listenInstrument, "instrument", "", "instrument name stored with the session metadata")
	listenCmd.Flags().BoolVar(&listenStoreMetadata, "store", false, "store session metadata in DynamoDB")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Matches live MIDI input",
	Long:  `Matches live MIDI input and records the session until interrupted`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	transposition, ok := scale.NoteNamed(listenTransposition)
	if !ok {
		panic("Unknown transposition note: " + listenTransposition)
	}

	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	rec := session.NewRecorder()
	deb := debounce.New(50 * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			freq := midifile.KeyFrequency(key)
			m, err := scale.ClosestNote(freq)
			if err != nil {
				fmt.Printf("Skipping key %v because: %v\n", key, err)
				return
			}
			m = m.InTransposition(transposition)
			rec.Add(m, freq)
			deb(func() { printMatch(m, freq) })
		default:
			// ignore
		}
	})

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()

	path := rec.Save()
	fmt.Printf("Saved session %v (%v matches) to %v\n", rec.Id(), rec.Len(), path)

	if listenStoreMetadata {
		db.PutSessionMetadata(rec.Id(), model.SessionMetadata{
			Instrument:    listenInstrument,
			Transposition: transposition.String(),
			NumMatches:    uint(rec.Len()),
		})
	}
}
