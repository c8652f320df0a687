package school

import (
	"math"
	"math/rand"
)

// Score tiers of the weighted distribution.
const (
	highScoreProb    = 0.70 // [16, 20]
	regularScoreProb = 0.25 // [11, 15]
	// the remaining 0.05 goes to [0, 10]

	MinScore     = 0
	MaxScore     = 20
	PassingScore = 11
)

// IsPassing reports whether score reaches the passing mark.
func IsPassing(score int) bool { return score >= PassingScore }

// Sampler draws weighted 0-20 scores.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Score returns a score in [0, 20]: 70% in [16, 20], 25% in [11, 15], 5% in [0, 10].
func (s *Sampler) Score() int {
	r := s.rng.Float64()
	switch {
	case r < highScoreProb:
		return 16 + s.rng.Intn(5)
	case r < highScoreProb+regularScoreProb:
		return 11 + s.rng.Intn(5)
	default:
		return s.rng.Intn(11)
	}
}

// RoundedMean returns the mean of scores rounded half up, or nil when scores is empty.
func RoundedMean(scores ...int) *int {
	if len(scores) == 0 {
		return nil
	}
	var sum int
	for _, sc := range scores {
		sum += sc
	}
	avg := int(math.Floor(float64(sum)/float64(len(scores)) + 0.5))
	return &avg
}

// FinalAverage is the rounded mean of the evaluated periods, nil if none is.
func FinalAverage(periods ...*int) *int {
	scores := make([]int, 0, len(periods))
	for _, p := range periods {
		if p != nil {
			scores = append(scores, *p)
		}
	}
	return RoundedMean(scores...)
}

// Period returns a pointer to n, for nullable period scores.
func Period(n int) *int { return &n }
