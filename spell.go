// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

// Package spell implements a high-throughput approximate string-correction
// engine based on the Symmetric Delete (SymSpell) algorithm: single-word
// correction, whole-phrase compound correction, and word segmentation,
// all driven off a delete index built once per dictionary.
package spell

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/corpusgo/spell/internal/wordhash"
)

// empiricalCorpusSize is the unigram corpus size constant ("N") used
// throughout both the bigram smoothing floor and the segmenter's
// unigram log-probability scoring. It is the same value carried by every
// SymSpell port in the ecosystem, derived from the Google Web Trillion
// Word Corpus.
const empiricalCorpusSize float64 = 1024908267229

// bigramSmoothingBase is the base of the smoothing-floor exponent
// (N * base^len(word)) applied to unseen bigrams and unknown
// segmentation parts. Kept as a named constant, per spec.md's note that
// this value is empirically tuned and should be re-tunable.
const bigramSmoothingBase float64 = 10.0

// EntryStatus reports what AddEntry did with an entry.
type EntryStatus int

const (
	// StatusBelowThreshold means the entry's cumulative count has not
	// yet reached CountThreshold; it is held in a shadow map.
	StatusBelowThreshold EntryStatus = iota

	// StatusUpdated means the term was already present and only its
	// count changed; the delete index was not touched.
	StatusUpdated

	// StatusAdded means the term is newly present and has been indexed.
	StatusAdded
)

// Spell is a SymSpell engine. It is not safe for concurrent mutation;
// concurrent lookups are safe only while no writer (AddEntry,
// RemoveEntry, a loader, or Load) is active.
type Spell struct {
	maxDictionaryEditDistance uint32
	prefixLength              uint32
	countThreshold            uint64
	distanceAlgorithm         DistanceAlgorithm
	distanceFunc              DistanceFunc
	logger                    *zap.Logger
	confusablesFold           bool

	words          map[string]uint64
	belowThreshold map[string]uint64
	deletes        map[uint32][]string
	bigrams        map[string]uint64
	bigramCountMin uint64
	longestWord    uint32
}

// New creates a Spell engine with the given options, or returns
// ErrInvalidArgument if the resulting configuration is inconsistent.
func New(opts ...Option) (*Spell, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
	}
	return buildFromConfig(cfg)
}

// buildFromConfig validates cfg and allocates an empty Spell from it.
// Shared by New and Load, which both arrive at a populated config by
// different routes (options alone, or options overridden by a
// persisted file's own settings).
func buildFromConfig(cfg *config) (*Spell, error) {
	if cfg.prefixLength < 1 {
		return nil, fmt.Errorf("%w: prefix length must be at least 1", ErrInvalidArgument)
	}
	if cfg.prefixLength < cfg.maxDictionaryEditDistance {
		return nil, fmt.Errorf("%w: prefix length must be >= max dictionary edit distance", ErrInvalidArgument)
	}

	distanceFunc := cfg.distanceFunc
	if cfg.distanceAlgorithm != UserProvided {
		distanceFunc = bundledDistanceFunc(cfg.distanceAlgorithm)
	} else if distanceFunc == nil {
		return nil, fmt.Errorf("%w: UserProvided distance algorithm requires WithDistanceFunc", ErrInvalidArgument)
	}

	return &Spell{
		maxDictionaryEditDistance: cfg.maxDictionaryEditDistance,
		prefixLength:              cfg.prefixLength,
		countThreshold:            cfg.countThreshold,
		distanceAlgorithm:         cfg.distanceAlgorithm,
		distanceFunc:              distanceFunc,
		logger:                    cfg.logger,
		confusablesFold:           cfg.confusablesFold,
		words:                     make(map[string]uint64),
		belowThreshold:            make(map[string]uint64),
		deletes:                   make(map[uint32][]string),
		bigrams:                   make(map[string]uint64),
		bigramCountMin:            math.MaxUint64,
	}, nil
}

// AddEntry adds term w with cumulative count c. If w's accumulated count
// (including any prior below-threshold accrual) has not yet reached
// CountThreshold, the entry is held in a shadow map and
// StatusBelowThreshold is returned. Otherwise the term is promoted (or
// updated, if already present) and StatusAdded/StatusUpdated is
// returned. Counts saturate at the maximum uint64 rather than
// overflowing.
func (s *Spell) AddEntry(w string, c uint64) EntryStatus {
	w = foldTerm(w)
	if cur, ok := s.words[w]; ok {
		s.words[w] = saturatingAdd(cur, c)
		return StatusUpdated
	}

	prevBelow, hadBelow := s.belowThreshold[w]
	total := saturatingAdd(prevBelow, c)

	if total < s.countThreshold {
		s.belowThreshold[w] = total
		return StatusBelowThreshold
	}

	if hadBelow {
		delete(s.belowThreshold, w)
	}

	s.words[w] = total
	s.indexTerm(w)
	return StatusAdded
}

// indexTerm computes every delete variant of w's prefix and appends w to
// each variant's bucket, deduplicating within a bucket.
func (s *Spell) indexTerm(w string) {
	prefix := runePrefix(w, s.prefixLength)
	for _, variant := range deleteVariants(prefix, s.maxDictionaryEditDistance) {
		h := wordhash.Hash(variant)
		bucket := s.deletes[h]
		if !containsString(bucket, w) {
			s.deletes[h] = append(bucket, w)
		}
	}

	if n := uint32(len([]rune(w))); n > s.longestWord {
		s.longestWord = n
	}
}

// RemoveEntry removes term w from the dictionary and every delete bucket
// it populated. Returns ErrNotFound if w isn't present.
func (s *Spell) RemoveEntry(w string) error {
	w = foldTerm(w)
	if _, ok := s.words[w]; !ok {
		return ErrNotFound
	}

	prefix := runePrefix(w, s.prefixLength)
	for _, variant := range deleteVariants(prefix, s.maxDictionaryEditDistance) {
		h := wordhash.Hash(variant)
		bucket := s.deletes[h]
		bucket = removeString(bucket, w)
		if len(bucket) == 0 {
			delete(s.deletes, h)
		} else {
			s.deletes[h] = bucket
		}
	}

	delete(s.words, w)
	// max_length is an upper bound; it is not recomputed eagerly.
	return nil
}

// GetEntry returns the count for term w, and whether it is present.
func (s *Spell) GetEntry(w string) (uint64, bool) {
	c, ok := s.words[foldTerm(w)]
	return c, ok
}

// foldTerm normalizes a term to the casing under which it is stored and
// matched. Dictionary terms and lookup queries are both folded to lower
// case so that e.g. "mEmEbers" can match a stored "members"; the
// original, unfolded input is retained by Lookup for transfer_casing to
// restore the caller's casing pattern on the output.
func foldTerm(w string) string {
	return strings.ToLower(w)
}

// GetLongestWord returns the length, in runes, of the longest present
// term. It may be a stale upper bound after removals.
func (s *Spell) GetLongestWord() uint32 {
	return s.longestWord
}

// Stats summarizes the current dictionary and delete index, for
// diagnostics; it is not consulted by any query path.
type Stats struct {
	TermCount      int
	DeleteBuckets  int
	TotalFrequency uint64
	MaxFrequency   uint64
	MaxLength      uint32
}

// Stats returns a snapshot of dictionary/index statistics.
func (s *Spell) Stats() Stats {
	stats := Stats{
		TermCount:     len(s.words),
		DeleteBuckets: len(s.deletes),
		MaxLength:     s.longestWord,
	}
	for _, freq := range s.words {
		stats.TotalFrequency = saturatingAdd(stats.TotalFrequency, freq)
		if freq > stats.MaxFrequency {
			stats.MaxFrequency = freq
		}
	}
	return stats
}

// deleteVariants enumerates every string obtained by deleting 0..maxDist
// characters from word, including word itself. Recursion halts once
// maxDist deletions have been applied or the string can no longer
// shrink (it is empty).
func deleteVariants(word string, maxDist uint32) []string {
	seen := map[string]bool{word: true}
	generateDeletesRecursive([]rune(word), 0, maxDist, seen)

	result := make([]string, 0, len(seen))
	for v := range seen {
		result = append(result, v)
	}
	return result
}

func generateDeletesRecursive(runes []rune, depth, maxDist uint32, seen map[string]bool) {
	if depth >= maxDist || len(runes) == 0 {
		return
	}
	for i := range runes {
		variant := make([]rune, 0, len(runes)-1)
		variant = append(variant, runes[:i]...)
		variant = append(variant, runes[i+1:]...)
		v := string(variant)
		if !seen[v] {
			seen[v] = true
			generateDeletesRecursive(variant, depth+1, maxDist, seen)
		}
	}
}

// runePrefix returns the first n runes of s, or all of s if it's
// shorter than n runes.
func runePrefix(s string, n uint32) string {
	runes := []rune(s)
	if uint32(len(runes)) <= n {
		return s
	}
	return string(runes[:n])
}

func containsString(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func removeString(xs []string, x string) []string {
	for i, v := range xs {
		if v == x {
			return append(xs[:i], xs[i+1:]...)
		}
	}
	return xs
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return math.MaxUint64
	}
	return sum
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
