package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mkofman/pitchmatch/constants"
	"github.com/mkofman/pitchmatch/model"
	"github.com/mkofman/pitchmatch/scale"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the match API",
	Long:  `Serves the match API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

func tuningLabel(d scale.MusicalDistance) string {
	switch {
	case math.Abs(d.Cents()) <= constants.InTuneCents:
		return "in tune"
	case d.IsFlat():
		return "flat"
	default:
		return "sharp"
	}
}

func HandleMatch(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body")
		return
	}

	var input model.MatchRequest
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}

	transposition := scale.C
	if input.Transposition != "" {
		t, ok := scale.NoteNamed(input.Transposition)
		if !ok {
			writeError(w, 400, "Unknown transposition note: "+input.Transposition)
			return
		}
		transposition = t
	}

	m, err := scale.ClosestNote(scale.Frequency(input.Frequency))
	if err == scale.ErrInvalidFrequency {
		writeError(w, 400, "Frequency must be positive and finite")
		return
	}
	if err != nil {
		// boundary correction fell through, which should never happen
		writeError(w, 500, err.Error())
		return
	}

	m = m.InTransposition(transposition)
	json.NewEncoder(w).Encode(model.MatchResponse{
		Note:      m.Note.String(),
		Octave:    m.Octave,
		Cents:     m.Distance.Cents(),
		Frequency: float64(m.Frequency()),
		Tuning:    tuningLabel(m.Distance),
	})
}

func HandleNotes(w http.ResponseWriter, r *http.Request) {
	res := make([]model.NoteInfo, 0, len(scale.AllNotes))
	for _, n := range scale.AllNotes {
		res = append(res, model.NoteInfo{
			Note:      n.String(),
			Index:     n.Index(),
			Frequency: float64(n.Frequency()),
		})
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/match", HandleMatch).Methods("POST")
	router.HandleFunc("/notes", HandleNotes).Methods("GET")

	handler := cors.Default().Handler(router)
	addr := ":" + constants.GetServePort()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
