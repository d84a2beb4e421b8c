package mockapi

import (
	"math/rand"
	"sync"
)

type Outcome int

const (
	Success Outcome = iota
	Failure
)

func (o Outcome) String() string {
	if o == Failure {
		return "failure"
	}
	return "success"
}

// Strategy decides the outcome of one simulated call.
type Strategy interface {
	Attempt() Outcome
}

type StrategyFunc func() Outcome

func (f StrategyFunc) Attempt() Outcome {
	return f()
}

// Fixed always yields the same outcome.
type Fixed Outcome

func (f Fixed) Attempt() Outcome {
	return Outcome(f)
}

// Sequence replays the given outcomes in order and then repeats the last one.
type Sequence struct {
	mu       sync.Mutex
	outcomes []Outcome
	next     int
}

func NewSequence(outcomes ...Outcome) *Sequence {
	return &Sequence{outcomes: outcomes}
}

func (s *Sequence) Attempt() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.outcomes) == 0 {
		return Success
	}
	o := s.outcomes[s.next]
	if s.next < len(s.outcomes)-1 {
		s.next++
	}
	return o
}

// RandomStrategy fails when a uniform draw in [0,1) is below the failure rate.
type RandomStrategy struct {
	mu          sync.Mutex
	rng         *rand.Rand
	failureRate float64
}

func NewRandomStrategy(failureRate float64, seed int64) *RandomStrategy {
	return &RandomStrategy{
		rng:         rand.New(rand.NewSource(seed)),
		failureRate: failureRate,
	}
}

func (s *RandomStrategy) SetFailureRate(rate float64) {
	s.mu.Lock()
	s.failureRate = rate
	s.mu.Unlock()
}

func (s *RandomStrategy) FailureRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failureRate
}

func (s *RandomStrategy) Attempt() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rng.Float64() < s.failureRate {
		return Failure
	}
	return Success
}
