package session

import (
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mkofman/pitchmatch/constants"
	"github.com/mkofman/pitchmatch/model"
	"github.com/mkofman/pitchmatch/scale"
	"github.com/mkofman/pitchmatch/util"
)

// Recorder accumulates matches from a live run, stamped with their offset
// from the start of the session.
type Recorder struct {
	session model.Session
}

func NewRecorder() *Recorder {
	return &Recorder{
		session: model.Session{
			Id:        uuid.New().String(),
			StartedAt: time.Now(),
		},
	}
}

func (r *Recorder) Id() string {
	return r.session.Id
}

func (r *Recorder) Len() int {
	return len(r.session.Matches)
}

func (r *Recorder) Add(m scale.Match, measured scale.Frequency) {
	r.session.Matches = append(r.session.Matches, model.TimedMatch{
		OffsetMs:  uint32(time.Since(r.session.StartedAt).Milliseconds()),
		Note:      m.Note.String(),
		Octave:    m.Octave,
		Cents:     m.Distance.Cents(),
		Frequency: float64(measured),
	})
}

// Save writes the session as a gob file under the session dir and returns
// the path.
func (r *Recorder) Save() string {
	dir := constants.GetSessionDir()
	util.EnsureDir(dir)
	path := filepath.Join(dir, r.session.Id+".dat")
	util.CreateBinary(path, r.session)
	return path
}

func Load(path string) model.Session {
	return util.ReadBinaryOrPanic[model.Session](path)
}

// LoadAll reads every saved session in the session dir, oldest first.
func LoadAll() []model.Session {
	var res []model.Session
	dir := constants.GetSessionDir()
	paths, err := filepath.Glob(filepath.Join(dir, "*.dat"))
	if err != nil {
		panic("Could not list session dir: " + err.Error())
	}
	for _, path := range paths {
		res = append(res, Load(path))
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].StartedAt.Before(res[j].StartedAt)
	})
	return res
}
