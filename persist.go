package spell

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tidwall/gjson"
)

// currentDataVersion is bumped whenever Save's on-disk schema changes
// in an incompatible way. Load rejects any other version rather than
// risk silently misinterpreting it.
const currentDataVersion = 3

// Save writes a gzip-compressed JSON snapshot of s to filename: its
// construction options, dictionary, below-threshold shadow map, delete
// index and bigram dictionary, sufficient for Load to reconstruct an
// equivalent engine.
func (s *Spell) Save(filename string) error {
	deletesOut := make(map[string][]string, len(s.deletes))
	for h, bucket := range s.deletes {
		deletesOut[strconv.FormatUint(uint64(h), 10)] = bucket
	}

	payload := map[string]interface{}{
		"data_version": currentDataVersion,
		"options": map[string]interface{}{
			"max_dictionary_edit_distance": s.maxDictionaryEditDistance,
			"prefix_length":                s.prefixLength,
			"count_threshold":              s.countThreshold,
			"distance_algorithm":           int(s.distanceAlgorithm),
		},
		"words":            s.words,
		"below_threshold":  s.belowThreshold,
		"deletes":          deletesOut,
		"bigrams":          s.bigrams,
		"bigram_count_min": s.bigramCountMin,
		"longest_word":     s.longestWord,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encoding snapshot: %v", ErrEncoding, err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrIO, filename, err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if _, err := gz.Write(raw); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrIO, filename, err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("%w: flushing %s: %v", ErrIO, filename, err)
	}
	return nil
}

// Load reconstructs a Spell from a snapshot written by Save. opts are
// applied first, so a caller can still set a logger or an overriding
// user-provided distance function; any options.* field present in the
// snapshot itself then takes precedence over the corresponding option,
// except distance_algorithm, which yields to an explicit
// WithDistanceFunc.
func Load(filename string, opts ...Option) (*Spell, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrIO, filename, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: gzip header in %s: %v", ErrIO, filename, err)
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrIO, filename, err)
	}

	gj := gjson.ParseBytes(raw)
	version := gj.Get("data_version").Int()
	if version != currentDataVersion {
		return nil, fmt.Errorf("%w: %s has data_version %d, this build supports %d", ErrEncoding, filename, version, currentDataVersion)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
	}

	if v := gj.Get("options.max_dictionary_edit_distance"); v.Exists() {
		cfg.maxDictionaryEditDistance = uint32(v.Uint())
	}
	if v := gj.Get("options.prefix_length"); v.Exists() {
		cfg.prefixLength = uint32(v.Uint())
	}
	if v := gj.Get("options.count_threshold"); v.Exists() {
		cfg.countThreshold = v.Uint()
	}
	if v := gj.Get("options.distance_algorithm"); v.Exists() && cfg.distanceAlgorithm != UserProvided {
		cfg.distanceAlgorithm = DistanceAlgorithm(v.Int())
	}

	s, err := buildFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	gj.Get("words").ForEach(func(key, value gjson.Result) bool {
		s.words[key.String()] = value.Uint()
		return true
	})
	gj.Get("below_threshold").ForEach(func(key, value gjson.Result) bool {
		s.belowThreshold[key.String()] = value.Uint()
		return true
	})
	gj.Get("bigrams").ForEach(func(key, value gjson.Result) bool {
		s.bigrams[key.String()] = value.Uint()
		return true
	})

	deletesIn := make(map[string][]string)
	if err := json.Unmarshal([]byte(gj.Get("deletes").Raw), &deletesIn); err != nil {
		return nil, fmt.Errorf("%w: decoding delete index in %s: %v", ErrEncoding, filename, err)
	}
	for k, bucket := range deletesIn {
		h, convErr := strconv.ParseUint(k, 10, 32)
		if convErr != nil {
			return nil, fmt.Errorf("%w: bad delete-index key %q in %s: %v", ErrEncoding, k, filename, convErr)
		}
		s.deletes[uint32(h)] = bucket
	}

	s.bigramCountMin = gj.Get("bigram_count_min").Uint()
	s.longestWord = uint32(gj.Get("longest_word").Uint())

	return s, nil
}
