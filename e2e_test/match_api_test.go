package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkofman/pitchmatch/cmd"
	"github.com/mkofman/pitchmatch/model"
	"github.com/stretchr/testify/assert"
)

func createMatchReqBody(t *testing.T, req model.MatchRequest) io.Reader {
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(data)
}

func TestMatchA4E2E(t *testing.T) {
	body := createMatchReqBody(t, model.MatchRequest{Frequency: 440})
	req := httptest.NewRequest(http.MethodPost, "/match", body)
	w := httptest.NewRecorder()
	cmd.HandleMatch(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var matchResponse model.MatchResponse
	err := json.Unmarshal(respBody, &matchResponse)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal("A", matchResponse.Note)
	assert.Equal(4, matchResponse.Octave)
	assert.InDelta(0, matchResponse.Cents, 1e-9)
	assert.InDelta(440.0, matchResponse.Frequency, 1e-9)
	assert.Equal("in tune", matchResponse.Tuning)
}

func TestMatchSharpInputE2E(t *testing.T) {
	body := createMatchReqBody(t, model.MatchRequest{Frequency: 445})
	req := httptest.NewRequest(http.MethodPost, "/match", body)
	w := httptest.NewRecorder()
	cmd.HandleMatch(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var matchResponse model.MatchResponse
	err := json.Unmarshal(respBody, &matchResponse)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal("A", matchResponse.Note)
	assert.Equal(4, matchResponse.Octave)
	assert.InDelta(19.56, matchResponse.Cents, 0.01)
	assert.Equal("sharp", matchResponse.Tuning)
}

func TestMatchTransposedE2E(t *testing.T) {
	body := createMatchReqBody(t, model.MatchRequest{Frequency: 440, Transposition: "A#"})
	req := httptest.NewRequest(http.MethodPost, "/match", body)
	w := httptest.NewRecorder()
	cmd.HandleMatch(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var matchResponse model.MatchResponse
	err := json.Unmarshal(respBody, &matchResponse)
	if err != nil {
		t.Fatal(err)
	}

	// concert A is written B on a B-flat instrument
	assert.Equal("B", matchResponse.Note)
	assert.Equal(4, matchResponse.Octave)
	assert.InDelta(0, matchResponse.Cents, 1e-9)
}

func TestMatchRejectsBadFrequencyE2E(t *testing.T) {
	for _, freq := range []float64{0, -440} {
		body := createMatchReqBody(t, model.MatchRequest{Frequency: freq})
		req := httptest.NewRequest(http.MethodPost, "/match", body)
		w := httptest.NewRecorder()
		cmd.HandleMatch(w, req)

		assert.Equal(t, w.Result().StatusCode, 400)
	}
}

func TestMatchRejectsUnknownTranspositionE2E(t *testing.T) {
	body := createMatchReqBody(t, model.MatchRequest{Frequency: 440, Transposition: "H"})
	req := httptest.NewRequest(http.MethodPost, "/match", body)
	w := httptest.NewRecorder()
	cmd.HandleMatch(w, req)

	assert.Equal(t, w.Result().StatusCode, 400)
}

func TestNotesEndpointE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	w := httptest.NewRecorder()
	cmd.HandleNotes(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var notes []model.NoteInfo
	err := json.Unmarshal(respBody, &notes)
	if err != nil {
		t.Fatal(err)
	}

	assert.Len(notes, 12)
	assert.Equal("C", notes[0].Note)
	assert.InDelta(16.35160, notes[0].Frequency, 1e-9)
	assert.Equal("B", notes[11].Note)
	assert.Equal(11, notes[11].Index)
}
