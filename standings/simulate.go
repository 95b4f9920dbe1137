package standings

import (
	"math/rand/v2"
	"sync"
)

// MaxSimulatedGoals is the upper bound (inclusive) of a simulated side's goals.
const MaxSimulatedGoals = 3

// ScoreSource produces results for fixtures the user does not play.
type ScoreSource interface {
	Score() (home, away int)
}

// UniformScoreSource draws each side's goals independently from 0..MaxSimulatedGoals.
type UniformScoreSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewUniformScoreSource(seed uint64) *UniformScoreSource {
	return &UniformScoreSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *UniformScoreSource) Score() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(MaxSimulatedGoals + 1), s.rng.IntN(MaxSimulatedGoals + 1)
}

// FixedScoreSource replays scores in order and repeats the last one when exhausted.
type FixedScoreSource struct {
	mu     sync.Mutex
	scores [][2]int
	next   int
}

func NewFixedScoreSource(scores ...[2]int) *FixedScoreSource {
	if len(scores) == 0 {
		scores = [][2]int{{0, 0}}
	}
	return &FixedScoreSource{scores: scores}
}

func (s *FixedScoreSource) Score() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc := s.scores[s.next]
	if s.next < len(s.scores)-1 {
		s.next++
	}
	return sc[0], sc[1]
}
