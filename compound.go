package spell

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// passthroughCount marks a compound-output slot that came from an
// ignore_non_words passthrough rather than a dictionary lookup, so it
// never wins the result's min-count computation.
const passthroughCount = ^uint64(0)

type compoundOptions struct {
	maxEditDistance uint32
	transferCasing  bool
	ignoreNonWords  bool
}

// LookupCompoundOption configures a single LookupCompound call.
type LookupCompoundOption func(*compoundOptions)

func (s *Spell) defaultCompoundOptions() *compoundOptions {
	return &compoundOptions{maxEditDistance: s.maxDictionaryEditDistance}
}

// WithCompoundMaxEditDistance bounds per-token correction to d edits.
// Default is the dictionary's configured max.
func WithCompoundMaxEditDistance(d uint32) LookupCompoundOption {
	return func(o *compoundOptions) { o.maxEditDistance = d }
}

// WithCompoundTransferCasing re-applies the phrase's casing pattern
// onto the corrected phrase as a whole. Default false.
func WithCompoundTransferCasing(b bool) LookupCompoundOption {
	return func(o *compoundOptions) { o.transferCasing = b }
}

// WithIgnoreNonWords passes tokens that look like integers or acronyms
// straight through uncorrected. Default false.
func WithIgnoreNonWords(b bool) LookupCompoundOption {
	return func(o *compoundOptions) { o.ignoreNonWords = b }
}

// LookupCompound corrects a whitespace-tokenized phrase one token at a
// time. For each token it first considers merging with its
// already-corrected predecessor (recovering from an accidental word
// split), and otherwise, when the token has no perfect single-word
// match, considers breaking it into two dictionary words (recovering
// from an accidental run-on) before falling back to the best single-term
// correction.
func (s *Spell) LookupCompound(phrase string, opts ...LookupCompoundOption) ([]Suggestion, error) {
	o := s.defaultCompoundOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.maxEditDistance > s.maxDictionaryEditDistance {
		return nil, fmt.Errorf("%w: compound max edit distance %d exceeds dictionary max %d", ErrInvalidArgument, o.maxEditDistance, s.maxDictionaryEditDistance)
	}

	tokens := strings.Fields(phrase)
	if len(tokens) == 0 {
		return []Suggestion{{Term: "", Distance: 0, Count: 0}}, nil
	}

	outputs := make([]Suggestion, 0, len(tokens))

	for i, tok := range tokens {
		if o.ignoreNonWords && (isNumericToken(tok) || isAcronymToken(tok)) {
			outputs = append(outputs, Suggestion{Term: tok, Distance: 0, Count: passthroughCount})
			continue
		}

		best := s.lookupBestOrSentinel(tok, o.maxEditDistance)

		if i > 0 && len([]rune(tok)) > 1 && len(outputs) > 0 {
			prev := outputs[len(outputs)-1]
			if prev.Distance > 0 && prev.Count != passthroughCount {
				if merged, ok := s.tryMerge(tokens[i-1], tok, prev, best, o.maxEditDistance); ok {
					outputs[len(outputs)-1] = merged
					continue
				}
			}
		}

		// A perfect single-token match, or a single character, is never
		// split further. Everything else — including a token with no
		// suggestion at all — gets a chance at a two-way split before
		// falling back to the uncorrected (or best-effort) single term.
		if best.Distance == 0 || len([]rune(tok)) == 1 {
			outputs = append(outputs, best)
			continue
		}

		outputs = append(outputs, s.trySplit(tok, best, o.maxEditDistance))
	}

	terms := make([]string, len(outputs))
	totalDistance := 0
	minCount := passthroughCount
	for i, out := range outputs {
		terms[i] = out.Term
		totalDistance += out.Distance
		if out.Count != passthroughCount && out.Count < minCount {
			minCount = out.Count
		}
	}
	if minCount == passthroughCount {
		minCount = 0
	}

	joined := strings.Join(terms, " ")
	if o.transferCasing {
		joined = transferCasing(phrase, joined, s.confusablesFold)
	}

	return []Suggestion{{Term: joined, Distance: totalDistance, Count: minCount}}, nil
}

// tryMerge decides whether prevToken+curTok should replace the separate
// (prev, cur) pair in the output: it wins outright when its combined
// edit cost is strictly lower, and on a tie it wins when its
// log-probability, scored the same way the segmenter scores unigrams,
// beats the bigram score of keeping prev and cur apart.
func (s *Spell) tryMerge(prevToken, curToken string, prev, cur Suggestion, maxEditDistance uint32) (Suggestion, bool) {
	mergedWord := prevToken + curToken
	merged := s.lookupBestOrSentinel(mergedWord, maxEditDistance)
	if merged.Distance > int(maxEditDistance) {
		return Suggestion{}, false
	}

	separateCost := prev.Distance + cur.Distance
	mergeCost := merged.Distance + 1

	if mergeCost < separateCost {
		return merged, true
	}
	if mergeCost == separateCost {
		mergedScore := math.Log(float64(maxUint64OrOne(merged.Count)) / empiricalCorpusSize)
		separateScore := s.bigramScore(prev.Term, cur.Term)
		if mergedScore > separateScore {
			return merged, true
		}
	}
	return Suggestion{}, false
}

// trySplit looks for the best two-way split of tok into dictionary
// words, competing against the token's own best single-term correction
// (single, which may be a sentinel if tok is unknown outright): a split
// only displaces it on strictly lower edit distance to tok, with ties
// broken by whichever side scores a higher estimated count. Mirrors
// SymSpell's classic LookupCompound split loop (try every split point,
// keep the lowest-distance / highest-count pairing), adapted to this
// package's Suggestion type and distance capability.
func (s *Spell) trySplit(tok string, single Suggestion, maxEditDistance uint32) Suggestion {
	tokRunes := []rune(tok)
	singleKnown := single.Distance <= int(maxEditDistance)

	best := single
	haveBest := singleKnown

	for j := 1; j < len(tokRunes); j++ {
		part1 := string(tokRunes[:j])
		part2 := string(tokRunes[j:])

		left, _ := s.Lookup(part1, WithVerbosity(VerbosityTop), WithMaxEditDistance(maxEditDistance))
		if len(left) == 0 {
			continue
		}
		right, _ := s.Lookup(part2, WithVerbosity(VerbosityTop), WithMaxEditDistance(maxEditDistance))
		if len(right) == 0 {
			continue
		}

		splitTerm := left[0].Term + " " + right[0].Term
		splitDistance := s.distanceFunc(tok, splitTerm, int(maxEditDistance)+1)
		if splitDistance < 0 {
			splitDistance = int(maxEditDistance) + 1
		}

		if haveBest {
			if splitDistance > best.Distance {
				continue
			}
			if splitDistance < best.Distance {
				haveBest = false
			}
		}

		candidate := Suggestion{
			Term:     splitTerm,
			Distance: splitDistance,
			Count:    s.splitPairCount(left[0], right[0], tok, single, singleKnown),
		}

		if !haveBest || candidate.Count > best.Count {
			best = candidate
			haveBest = true
		}
	}

	return best
}

// splitPairCount estimates a frequency count for the candidate split
// (left, right), so trySplit can rank split candidates against each
// other and against the token's single-term correction. An observed
// bigram count wins outright, boosted when the split reconstructs tok
// exactly or reuses the single-term correction's own word. Absent a
// bigram, the count is the Naive Bayes product of the two unigram
// probabilities, capped at the rarest observed bigram count.
func (s *Spell) splitPairCount(left, right Suggestion, tok string, single Suggestion, singleKnown bool) uint64 {
	joinedMatchesToken := left.Term+right.Term == tok

	if bigramCount, ok := s.GetBigram(left.Term, right.Term); ok {
		count := bigramCount
		switch {
		case singleKnown && joinedMatchesToken:
			count = maxUint64Of(count, saturatingAdd(single.Count, 2))
		case singleKnown && (left.Term == single.Term || right.Term == single.Term):
			count = maxUint64Of(count, saturatingAdd(single.Count, 1))
		case !singleKnown && joinedMatchesToken:
			count = maxUint64Of(count, saturatingAdd(maxUint64Of(left.Count, right.Count), 2))
		}
		return count
	}

	estimate := uint64(float64(left.Count) / empiricalCorpusSize * float64(right.Count))
	return minUint64(s.bigramFloor(), estimate)
}

func maxUint64OrOne(c uint64) uint64 {
	if c == 0 {
		return 1
	}
	return c
}

func maxUint64Of(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

func minUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func (s *Spell) lookupBestOrSentinel(token string, maxEditDistance uint32) Suggestion {
	results, _ := s.Lookup(token, WithVerbosity(VerbosityTop), WithMaxEditDistance(maxEditDistance))
	if len(results) == 0 {
		return Suggestion{Term: token, Distance: int(maxEditDistance) + 1, Count: 0}
	}
	return results[0]
}

func isNumericToken(t string) bool {
	if t == "" {
		return false
	}
	for _, r := range t {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isAcronymToken reports whether t looks like an acronym: at least two
// characters, and either every letter it has is uppercase or it
// contains a digit.
func isAcronymToken(t string) bool {
	runes := []rune(t)
	if len(runes) < 2 {
		return false
	}
	hasDigit, hasLower, hasLetter := false, false, false
	for _, r := range runes {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
			if unicode.IsLower(r) {
				hasLower = true
			}
		}
	}
	return (hasLetter && !hasLower) || hasDigit
}
