package spell

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// Composition is one candidate segmentation of a phrase with no word
// boundaries (or the wrong ones): the original substring split into
// space-joined parts, the corresponding spell-corrected parts, the sum
// of per-part edit distances (plus one per boundary that had to be
// invented), and the summed log-probability used to rank candidates of
// equal distance.
type Composition struct {
	SegmentedString string
	CorrectedString string
	DistanceSum     int
	LogProbSum      float64
}

type segmentOptions struct {
	maxEditDistance  uint32
	maxWordLength    uint32
	ignoreTokenRegex *regexp.Regexp
}

// SegmentOption configures a single Segment call.
type SegmentOption func(*segmentOptions)

func (s *Spell) defaultSegmentOptions() *segmentOptions {
	return &segmentOptions{
		maxEditDistance: s.maxDictionaryEditDistance,
		maxWordLength:   s.prefixLength,
	}
}

// WithSegmentMaxEditDistance bounds per-part correction to d edits.
// Default is the dictionary's configured max.
func WithSegmentMaxEditDistance(d uint32) SegmentOption {
	return func(o *segmentOptions) { o.maxEditDistance = d }
}

// WithSegmentMaxWordLength bounds how wide a candidate part can be.
// Default is the dictionary's configured prefix length.
func WithSegmentMaxWordLength(n uint32) SegmentOption {
	return func(o *segmentOptions) { o.maxWordLength = n }
}

// WithSegmentIgnoreTokenRegex passes a part straight through,
// uncorrected and at no extra edit distance, when it fully matches re;
// it is scored with the same smoothing-floor estimate as an unseen
// single character.
func WithSegmentIgnoreTokenRegex(re *regexp.Regexp) SegmentOption {
	return func(o *segmentOptions) { o.ignoreTokenRegex = re }
}

var ligatureFolder = strings.NewReplacer(
	"ﬁ", "fi", "ﬂ", "fl", "ﬀ", "ff", "ﬃ", "ffi", "ﬄ", "ffl", "ﬅ", "st", "ﬆ", "st",
)

// Segment finds the highest-probability way to split phrase into
// dictionary words, using a ring-buffer dynamic program: for every
// start position it considers every part width up to max_word_length,
// scores the part either from its dictionary count or from a
// smoothing-floor estimate, and keeps whichever extension of the
// shorter composition ending just before it has the lowest total edit
// distance (ties broken by higher total log-probability).
func (s *Spell) Segment(phrase string, opts ...SegmentOption) (Composition, error) {
	o := s.defaultSegmentOptions()
	for _, opt := range opts {
		opt(o)
	}

	phraseRunes := []rune(phrase)
	n := len(phraseRunes)
	if n == 0 {
		return Composition{}, nil
	}

	k := int(o.maxWordLength)
	if k < 1 {
		k = 1
	}
	arraySize := minInt(n, k)
	compositions := make([]Composition, arraySize)
	circularIdx := -1

	for i := 0; i < n; i++ {
		jMax := minInt(n-i, k)
		for j := 1; j <= jMax; j++ {
			part := string(phraseRunes[i : i+j])
			separatorLength := 0

			partRunes := []rune(part)
			if i > 0 && unicode.IsSpace(partRunes[0]) {
				part = string(phraseRunes[i+1 : i+j])
			} else {
				separatorLength = 1
			}

			part = ligatureFolder.Replace(part)

			partDistance := len([]rune(part))
			part = stripInternalSpaces(part)
			partDistance -= len([]rune(part))

			correctedWord, logProb, extraDistance := s.scoreSegmentPart(part, o)
			partDistance += extraDistance

			destIdx := (j + circularIdx) % arraySize

			if i == 0 {
				compositions[destIdx] = Composition{
					SegmentedString: part,
					CorrectedString: correctedWord,
					DistanceSum:     partDistance,
					LogProbSum:      logProb,
				}
				continue
			}

			srcIdx := circularIdx
			candidateDistance := compositions[srcIdx].DistanceSum + separatorLength + partDistance
			candidateLogProb := compositions[srcIdx].LogProbSum + logProb

			replace := j == k ||
				candidateDistance < compositions[destIdx].DistanceSum ||
				(candidateDistance == compositions[destIdx].DistanceSum && candidateLogProb > compositions[destIdx].LogProbSum)

			if replace {
				compositions[destIdx] = Composition{
					SegmentedString: compositions[srcIdx].SegmentedString + " " + part,
					CorrectedString: compositions[srcIdx].CorrectedString + " " + correctedWord,
					DistanceSum:     candidateDistance,
					LogProbSum:      candidateLogProb,
				}
			}
		}

		circularIdx++
		if circularIdx == arraySize {
			circularIdx = 0
		}
	}

	return compositions[circularIdx], nil
}

// scoreSegmentPart scores a single candidate part, returning its
// correction, log-probability, and any extra edit distance beyond the
// whitespace-collapse cost already charged by the caller.
func (s *Spell) scoreSegmentPart(part string, o *segmentOptions) (word string, logProb float64, extraDistance int) {
	partLen := len([]rune(part))

	if o.ignoreTokenRegex != nil && regexFullMatch(o.ignoreTokenRegex, part) {
		return part, math.Log(1 / (empiricalCorpusSize * math.Pow(bigramSmoothingBase, float64(partLen)))), 0
	}

	top, _ := s.Lookup(part, WithVerbosity(VerbosityTop), WithMaxEditDistance(o.maxEditDistance))

	switch {
	case len(top) > 0 && top[0].Distance == 0:
		count := top[0].Count
		if count == 0 {
			count = 1
		}
		return top[0].Term, math.Log(float64(count) / empiricalCorpusSize), 0

	case partLen == 1 || (len(top) > 0 && partLen-1 == top[0].Distance):
		score := math.Log(1 / (empiricalCorpusSize * math.Pow(bigramSmoothingBase, float64(partLen))))
		if len(top) > 0 {
			return top[0].Term, score, top[0].Distance
		}
		return part, score, partLen

	default:
		// Unknown: no exact match, and no entry within range whose
		// distance is exactly partLen-1. The spec calls this
		// a zero-probability part; a literal -Inf score would make every
		// composition containing it equally unrankable, so it is floored
		// the same way an unseen bigram is, keeping the DP numerically
		// well-behaved.
		score := math.Log(float64(s.bigramFloor()) / (empiricalCorpusSize * math.Pow(bigramSmoothingBase, float64(partLen))))
		return part, score, partLen
	}
}

func stripInternalSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
