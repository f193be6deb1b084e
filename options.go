package spell

import (
	"fmt"

	"go.uber.org/zap"
)

// Option configures a Spell instance at construction time. Invalid
// combinations are rejected eagerly by New rather than surfacing later
// as a confusing lookup failure.
type Option func(*config) error

type config struct {
	maxDictionaryEditDistance uint32
	prefixLength              uint32
	countThreshold            uint64
	distanceAlgorithm         DistanceAlgorithm
	distanceFunc              DistanceFunc
	logger                    *zap.Logger
	confusablesFold           bool
}

func defaultConfig() *config {
	return &config{
		maxDictionaryEditDistance: 2,
		prefixLength:              7,
		countThreshold:            1,
		distanceAlgorithm:         DamerauOSA,
		logger:                    zap.NewNop(),
	}
}

// MaxDictionaryEditDistance sets the maximum number of deletes applied
// when building the index. Queries may request any max edit distance up
// to this bound. Default 2.
func MaxDictionaryEditDistance(d uint32) Option {
	return func(c *config) error {
		c.maxDictionaryEditDistance = d
		return nil
	}
}

// PrefixLength sets how much of each term's prefix is indexed. Must be
// at least 1 and at least MaxDictionaryEditDistance. Default 7.
func PrefixLength(n uint32) Option {
	return func(c *config) error {
		c.prefixLength = n
		return nil
	}
}

// CountThreshold sets the minimum cumulative count a term must reach
// before it is indexed. Default 1 (every entry is indexed immediately).
func CountThreshold(n uint64) Option {
	return func(c *config) error {
		c.countThreshold = n
		return nil
	}
}

// WithDistanceAlgorithm selects one of the bundled distance algorithms.
// Default DamerauOSA.
func WithDistanceAlgorithm(alg DistanceAlgorithm) Option {
	return func(c *config) error {
		if alg == UserProvided {
			return fmt.Errorf("WithDistanceAlgorithm: use WithDistanceFunc to supply a user algorithm")
		}
		c.distanceAlgorithm = alg
		return nil
	}
}

// WithDistanceFunc installs a user-provided distance capability,
// equivalent to spec.md's USER_PROVIDED distance_algorithm.
func WithDistanceFunc(fn DistanceFunc) Option {
	return func(c *config) error {
		if fn == nil {
			return fmt.Errorf("WithDistanceFunc: fn must not be nil")
		}
		c.distanceAlgorithm = UserProvided
		c.distanceFunc = fn
		return nil
	}
}

// WithLogger installs a structured logger used to report recovered
// parse/encoding errors during loading. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return fmt.Errorf("WithLogger: logger must not be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithConfusablesFold enables Unicode confusable-skeleton folding of the
// casing source in the "similar" (differing-length) case-transfer path;
// the equal-length path is unaffected. Folding keeps visually
// confusable characters from throwing off the common-prefix walk. Off
// by default.
func WithConfusablesFold(enabled bool) Option {
	return func(c *config) error {
		c.confusablesFold = enabled
		return nil
	}
}
