package scale

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchFrequency(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(440.0, float64(Match{Note: A, Octave: 4}.Frequency()), 1e-9)
	assert.InDelta(261.6256, float64(Match{Note: C, Octave: 4}.Frequency()), 1e-9)
	assert.InDelta(16.35160, float64(Match{Note: C, Octave: 0}.Frequency()), 1e-9)
}

func TestInTranspositionConcertPitchIsIdentity(t *testing.T) {
	assert := assert.New(t)
	for _, n := range AllNotes {
		m := Match{Note: n, Octave: 3, Distance: 12.5}
		assert.Equal(m, m.InTransposition(C))
	}
}

func TestInTranspositionBFlatInstrument(t *testing.T) {
	assert := assert.New(t)

	// concert A is written B on a B-flat instrument
	m := Match{Note: A, Octave: 4, Distance: -3.2}.InTransposition(ASharp)
	assert.Equal(B, m.Note)
	assert.Equal(4, m.Octave)
	assert.Equal(MusicalDistance(-3.2), m.Distance)

	// concert C is written D
	m = Match{Note: C, Octave: 4}.InTransposition(ASharp)
	assert.Equal(D, m.Note)
	assert.Equal(4, m.Octave)

	// concert B wraps into the next written octave
	m = Match{Note: B, Octave: 4}.InTransposition(ASharp)
	assert.Equal(CSharp, m.Note)
	assert.Equal(5, m.Octave)
}

func TestInTranspositionFInstrument(t *testing.T) {
	assert := assert.New(t)
	m := Match{Note: C, Octave: 4}.InTransposition(F)
	assert.Equal(G, m.Note)
	assert.Equal(4, m.Octave)
}

func TestInTranspositionComposesModuloTwelve(t *testing.T) {
	for _, first := range AllNotes {
		for _, second := range AllNotes {
			name := fmt.Sprintf("%v then %v", first, second)
			t.Run(name, func(t *testing.T) {
				combined := AllNotes[(first.Index()+second.Index())%12]
				for _, n := range AllNotes {
					m := Match{Note: n, Octave: 4}
					twice := m.InTransposition(first).InTransposition(second)
					once := m.InTransposition(combined)
					assert.Equal(t, once.Note, twice.Note)
				}
			})
		}
	}
}

func TestInTranspositionKeepsDistance(t *testing.T) {
	assert := assert.New(t)
	m, err := ClosestNote(445)
	assert.NoError(err)
	transposed := m.InTransposition(ASharp)
	assert.Equal(m.Distance, transposed.Distance)
}

func TestMatchString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("A4 (+19.6 cents)", Match{Note: A, Octave: 4, Distance: 19.56}.String())
	assert.Equal("B3 (-3.0 cents)", Match{Note: B, Octave: 3, Distance: -3}.String())
}
