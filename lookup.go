package spell

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/corpusgo/spell/internal/wordhash"
)

// Verbosity controls how many suggestions Lookup returns.
type Verbosity int

const (
	// VerbosityTop returns at most one suggestion: the closest match,
	// ties broken by descending count.
	VerbosityTop Verbosity = iota

	// VerbosityClosest returns every suggestion at the minimum distance
	// found, ordered by descending count.
	VerbosityClosest

	// VerbosityAll returns every suggestion within the requested max
	// edit distance, ordered by ascending distance then descending
	// count.
	VerbosityAll
)

// Suggestion is a single correction candidate.
type Suggestion struct {
	Term     string
	Distance int
	Count    uint64
}

type lookupOptions struct {
	verbosity        Verbosity
	maxEditDistance  uint32
	includeUnknown   bool
	ignoreTokenRegex *regexp.Regexp
	transferCasing   bool
	distanceFunc     DistanceFunc
}

// LookupOption configures a single Lookup call.
type LookupOption func(*lookupOptions)

func (s *Spell) defaultLookupOptions() *lookupOptions {
	return &lookupOptions{
		verbosity:       VerbosityTop,
		maxEditDistance: s.maxDictionaryEditDistance,
		distanceFunc:    s.distanceFunc,
	}
}

// WithVerbosity sets how many suggestions are returned. Default
// VerbosityTop.
func WithVerbosity(v Verbosity) LookupOption {
	return func(o *lookupOptions) { o.verbosity = v }
}

// WithMaxEditDistance bounds the search to d edits, which must not
// exceed the dictionary's configured MaxDictionaryEditDistance. Default
// is the dictionary's configured max.
func WithMaxEditDistance(d uint32) LookupOption {
	return func(o *lookupOptions) { o.maxEditDistance = d }
}

// WithIncludeUnknown requests a sentinel suggestion (the input itself,
// at distance max_edit_distance+1, count 0) when nothing is found.
// Default false.
func WithIncludeUnknown(b bool) LookupOption {
	return func(o *lookupOptions) { o.includeUnknown = b }
}

// WithIgnoreTokenRegex passes an input straight through, as an exact,
// zero-count suggestion, when it fully matches re. Useful for URLs,
// numbers, or other tokens that should never be corrected.
func WithIgnoreTokenRegex(re *regexp.Regexp) LookupOption {
	return func(o *lookupOptions) { o.ignoreTokenRegex = re }
}

// WithTransferCasing re-applies the input's casing pattern onto the
// returned suggestion terms. Default false.
func WithTransferCasing(b bool) LookupOption {
	return func(o *lookupOptions) { o.transferCasing = b }
}

// LookupDistanceFunc overrides the distance capability for this call
// only. Default is the dictionary's configured DistanceFunc.
func LookupDistanceFunc(fn DistanceFunc) LookupOption {
	return func(o *lookupOptions) { o.distanceFunc = fn }
}

// Lookup returns correction candidates for a single token, searching
// the delete index out to the requested (or default) max edit
// distance.
func (s *Spell) Lookup(input string, opts ...LookupOption) ([]Suggestion, error) {
	o := s.defaultLookupOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.maxEditDistance > s.maxDictionaryEditDistance {
		return nil, fmt.Errorf("%w: lookup max edit distance %d exceeds dictionary max %d", ErrInvalidArgument, o.maxEditDistance, s.maxDictionaryEditDistance)
	}

	if o.ignoreTokenRegex != nil && regexFullMatch(o.ignoreTokenRegex, input) {
		return []Suggestion{{Term: input, Distance: 0, Count: 0}}, nil
	}

	// Matching and distance computation are case-insensitive: dictionary
	// terms are stored folded (see foldTerm), so the query is folded the
	// same way before it ever reaches the delete index or a distance
	// function. The original, unfolded input is kept around so
	// transfer_casing can restore the caller's casing pattern afterward.
	folded := foldTerm(input)

	inputLen := len([]rune(folded))
	if inputLen-int(s.longestWord) > int(o.maxEditDistance) {
		return s.finish(nil, input, o), nil
	}

	var results []Suggestion
	if count, ok := s.words[folded]; ok {
		results = append(results, Suggestion{Term: folded, Distance: 0, Count: count})
		if o.verbosity != VerbosityAll {
			return s.finish(results, input, o), nil
		}
	}

	if o.maxEditDistance == 0 {
		return s.finish(results, input, o), nil
	}

	results = append(results, s.searchDeleteIndex(folded, o)...)

	return s.finish(results, input, o), nil
}

// searchDeleteIndex is the BFS over delete variants of input's indexed
// prefix: each visited variant's bucket is probed, candidates are
// gated by length/suffix-prefix feasibility before the (possibly
// expensive) distance function runs, and the variant is itself expanded
// one more deletion deep as long as the tightened bound allows it.
func (s *Spell) searchDeleteIndex(input string, o *lookupOptions) []Suggestion {
	inputLen := len([]rune(input))
	inputPrefix := runePrefix(input, s.prefixLength)
	inputPrefixLen := len([]rune(inputPrefix))

	consideredSuggestions := map[string]bool{input: true}
	consideredDeletes := map[string]bool{inputPrefix: true}

	type queueItem struct {
		variant string
		depth   uint32
	}
	queue := []queueItem{{inputPrefix, 0}}
	maxEditDistanceBest := o.maxEditDistance

	var results []Suggestion

	for qi := 0; qi < len(queue); qi++ {
		item := queue[qi]
		variantRunes := []rune(item.variant)
		variantLen := len(variantRunes)

		if inputPrefixLen-variantLen > int(maxEditDistanceBest) {
			if o.verbosity == VerbosityAll {
				continue
			}
			break
		}

		if bucket, ok := s.deletes[wordhash.Hash(item.variant)]; ok {
			for _, w := range bucket {
				if consideredSuggestions[w] {
					continue
				}
				wLen := len([]rune(w))
				if absInt(inputLen-wLen) > int(maxEditDistanceBest) || wLen < variantLen {
					continue
				}
				wPrefixLen := minInt(wLen, int(s.prefixLength))
				if wPrefixLen-int(item.depth) > inputPrefixLen {
					continue
				}
				consideredSuggestions[w] = true

				dist := o.distanceFunc(input, w, int(maxEditDistanceBest))
				if dist < 0 {
					continue
				}
				if o.verbosity != VerbosityAll && dist < int(maxEditDistanceBest) {
					results = results[:0]
					maxEditDistanceBest = uint32(dist)
				}
				if dist <= int(maxEditDistanceBest) {
					results = append(results, Suggestion{Term: w, Distance: dist, Count: s.words[w]})
				}
			}
		}

		if item.depth < maxEditDistanceBest {
			for i := range variantRunes {
				nv := string(append(append([]rune{}, variantRunes[:i]...), variantRunes[i+1:]...))
				if !consideredDeletes[nv] {
					consideredDeletes[nv] = true
					queue = append(queue, queueItem{nv, item.depth + 1})
				}
			}
		}
	}

	return results
}

// finish applies the verbosity-dependent sort/trim, the
// include_unknown fallback, and an optional casing transfer. Every
// Lookup return path after the argument check and the ignore-token
// pass-through funnels through here so those three behaviors never
// need re-deriving per branch.
func (s *Spell) finish(results []Suggestion, input string, o *lookupOptions) []Suggestion {
	results = sortAndTrim(results, o.verbosity, o.maxEditDistance)

	if len(results) == 0 {
		if o.includeUnknown {
			results = []Suggestion{{Term: input, Distance: int(o.maxEditDistance) + 1, Count: 0}}
		}
		return results
	}

	if o.transferCasing {
		for i := range results {
			results[i].Term = transferCasing(input, results[i].Term, s.confusablesFold)
		}
	}
	return results
}

func sortAndTrim(results []Suggestion, verbosity Verbosity, maxEditDistance uint32) []Suggestion {
	if len(results) == 0 {
		return results
	}

	minDist := results[0].Distance
	for _, r := range results[1:] {
		if r.Distance < minDist {
			minDist = r.Distance
		}
	}

	switch verbosity {
	case VerbosityAll:
		filtered := make([]Suggestion, 0, len(results))
		for _, r := range results {
			if r.Distance <= int(maxEditDistance) {
				filtered = append(filtered, r)
			}
		}
		sort.Slice(filtered, func(i, j int) bool {
			if filtered[i].Distance != filtered[j].Distance {
				return filtered[i].Distance < filtered[j].Distance
			}
			if filtered[i].Count != filtered[j].Count {
				return filtered[i].Count > filtered[j].Count
			}
			return filtered[i].Term < filtered[j].Term
		})
		return filtered
	default: // VerbosityClosest, VerbosityTop
		filtered := make([]Suggestion, 0, len(results))
		for _, r := range results {
			if r.Distance == minDist {
				filtered = append(filtered, r)
			}
		}
		sort.Slice(filtered, func(i, j int) bool {
			if filtered[i].Count != filtered[j].Count {
				return filtered[i].Count > filtered[j].Count
			}
			return filtered[i].Term < filtered[j].Term
		})
		if verbosity == VerbosityTop && len(filtered) > 1 {
			filtered = filtered[:1]
		}
		return filtered
	}
}

func regexFullMatch(re *regexp.Regexp, s string) bool {
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}
