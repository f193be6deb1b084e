package spell

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// LoaderConfig controls how LoadDictionaryFile and
// LoadBigramDictionaryFile split and interpret each input line.
type LoaderConfig struct {
	// TermIndex is the field holding the dictionary term (or, for
	// bigrams with a custom Separator, the entire two-word key).
	TermIndex int `mapstructure:"term_index"`

	// CountIndex is the field holding the cumulative count.
	CountIndex int `mapstructure:"count_index"`

	// Separator splits each line into fields. Empty means "one or more
	// whitespace characters", matching strings.Fields.
	Separator string `mapstructure:"separator"`
}

// DefaultLoaderConfig matches the conventional two-column
// "term count" dictionary file.
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{TermIndex: 0, CountIndex: 1}
}

// NewLoaderConfigFromMap decodes a generic configuration map (as
// produced by a YAML/JSON/TOML unmarshal into map[string]interface{})
// into a LoaderConfig, applying defaults for any field left unset.
func NewLoaderConfigFromMap(m map[string]interface{}) (LoaderConfig, error) {
	cfg := DefaultLoaderConfig()
	if err := mapstructure.Decode(m, &cfg); err != nil {
		return LoaderConfig{}, fmt.Errorf("%w: decoding loader config: %v", ErrInvalidArgument, err)
	}
	if err := cfg.validate(); err != nil {
		return LoaderConfig{}, err
	}
	return cfg, nil
}

func (c LoaderConfig) validate() error {
	if c.TermIndex == c.CountIndex {
		return fmt.Errorf("%w: term_index and count_index must not be equal", ErrInvalidArgument)
	}
	if c.TermIndex < 0 || c.CountIndex < 0 {
		return fmt.Errorf("%w: term_index and count_index must be non-negative", ErrInvalidArgument)
	}
	return nil
}

func (c LoaderConfig) splitFields(line string) []string {
	if c.Separator == "" {
		return strings.Fields(line)
	}
	return strings.Split(line, c.Separator)
}

// LoadDictionaryFile reads a term/count dictionary from path, one
// entry per line, adding each parsed entry via AddEntry. Malformed
// lines are logged and counted as rejected rather than aborting the
// load. accepted reports whether any line parsed successfully.
func (s *Spell) LoadDictionaryFile(path string, cfg LoaderConfig) (accepted bool, rejected int, err error) {
	if err := cfg.validate(); err != nil {
		return false, 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return false, 0, fmt.Errorf("%w: opening %s: %v", ErrIO, path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := cfg.splitFields(line)
		maxIdx := maxInt(cfg.TermIndex, cfg.CountIndex)
		if maxIdx >= len(fields) {
			s.logParseError(path, lineNo, fmt.Errorf("expected at least %d fields, got %d", maxIdx+1, len(fields)))
			rejected++
			continue
		}

		term := fields[cfg.TermIndex]
		count, convErr := strconv.ParseUint(fields[cfg.CountIndex], 10, 64)
		if convErr != nil {
			s.logParseError(path, lineNo, convErr)
			rejected++
			continue
		}

		s.AddEntry(term, count)
		accepted = true
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return accepted, rejected, fmt.Errorf("%w: reading %s: %v", ErrIO, path, scanErr)
	}
	return accepted, rejected, nil
}

// LoadBigramDictionaryFile reads a bigram dictionary from path. With
// the default (whitespace) separator, term_index identifies the first
// of two adjacent whitespace-separated term fields; with a custom
// separator, the term_index-th field is the whole "w1 w2" bigram key.
func (s *Spell) LoadBigramDictionaryFile(path string, cfg LoaderConfig) (accepted bool, rejected int, err error) {
	if err := cfg.validate(); err != nil {
		return false, 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return false, 0, fmt.Errorf("%w: opening %s: %v", ErrIO, path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := cfg.splitFields(line)

		var w1, w2 string
		var countField int
		if cfg.Separator == "" {
			if cfg.TermIndex+1 >= len(fields) || cfg.CountIndex >= len(fields) {
				s.logParseError(path, lineNo, fmt.Errorf("expected at least %d fields, got %d", maxInt(cfg.TermIndex+2, cfg.CountIndex+1), len(fields)))
				rejected++
				continue
			}
			w1, w2 = fields[cfg.TermIndex], fields[cfg.TermIndex+1]
			countField = cfg.CountIndex
		} else {
			if cfg.TermIndex >= len(fields) || cfg.CountIndex >= len(fields) {
				s.logParseError(path, lineNo, fmt.Errorf("expected at least %d fields, got %d", maxInt(cfg.TermIndex+1, cfg.CountIndex+1), len(fields)))
				rejected++
				continue
			}
			parts := strings.Fields(fields[cfg.TermIndex])
			if len(parts) != 2 {
				s.logParseError(path, lineNo, fmt.Errorf("bigram key %q must contain exactly two words", fields[cfg.TermIndex]))
				rejected++
				continue
			}
			w1, w2 = parts[0], parts[1]
			countField = cfg.CountIndex
		}

		count, convErr := strconv.ParseUint(fields[countField], 10, 64)
		if convErr != nil {
			s.logParseError(path, lineNo, convErr)
			rejected++
			continue
		}

		s.AddBigram(w1, w2, count)
		accepted = true
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return accepted, rejected, fmt.Errorf("%w: reading %s: %v", ErrIO, path, scanErr)
	}
	return accepted, rejected, nil
}

// CreateDictionary tokenizes a plain-text corpus at path into runs of
// Unicode letters (digits and punctuation are never part of a token),
// lower-cases each token, and adds it with count 1 (repeated occurrences
// accumulate through AddEntry's normal counting).
func (s *Spell) CreateDictionary(path string) (termCount int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: opening %s: %v", ErrIO, path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var tok strings.Builder
	flush := func() {
		if tok.Len() == 0 {
			return
		}
		s.AddEntry(strings.ToLower(tok.String()), 1)
		termCount++
		tok.Reset()
	}

	for scanner.Scan() {
		for _, r := range scanner.Text() {
			if unicode.IsLetter(r) {
				tok.WriteRune(r)
			} else {
				flush()
			}
		}
		flush()
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return termCount, fmt.Errorf("%w: reading %s: %v", ErrIO, path, scanErr)
	}
	return termCount, nil
}

func (s *Spell) logParseError(source string, line int, cause error) {
	pe := &ParseError{Line: line, Source: source, Err: cause}
	s.logger.Warn("rejected dictionary line", zap.String("source", source), zap.Int("line", line), zap.Error(pe))
}
