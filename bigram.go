package spell

import "math"

// AddBigram records c additional observations of the ordered pair
// (w1, w2), keyed as "w1 w2". Counts saturate the same way AddEntry's do.
func (s *Spell) AddBigram(w1, w2 string, c uint64) {
	key := foldTerm(w1) + " " + foldTerm(w2)
	if cur, ok := s.bigrams[key]; ok {
		s.bigrams[key] = saturatingAdd(cur, c)
	} else {
		s.bigrams[key] = c
	}
	if c < s.bigramCountMin {
		s.bigramCountMin = c
	}
}

// GetBigram returns the count recorded for (w1, w2), and whether it is
// present.
func (s *Spell) GetBigram(w1, w2 string) (uint64, bool) {
	c, ok := s.bigrams[foldTerm(w1)+" "+foldTerm(w2)]
	return c, ok
}

// bigramFloor is the minimum bigram count observed so far, used as the
// numerator of the smoothing estimate for unseen bigrams. An empty
// bigram dictionary floors at 1 rather than the zero value.
func (s *Spell) bigramFloor() uint64 {
	if len(s.bigrams) == 0 {
		return 1
	}
	return s.bigramCountMin
}

// bigramScore returns a log-probability for the ordered pair (prev,
// cur): the empirical log(count/N) when the pair has been observed, or
// a smoothing-floor estimate log(bigramFloor/(N*base^len(cur))) when it
// hasn't.
func (s *Spell) bigramScore(prev, cur string) float64 {
	if count, ok := s.GetBigram(prev, cur); ok {
		return math.Log(float64(count) / empiricalCorpusSize)
	}
	return math.Log(float64(s.bigramFloor()) / (empiricalCorpusSize * math.Pow(bigramSmoothingBase, float64(len([]rune(cur))))))
}
