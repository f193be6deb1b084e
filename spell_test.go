package spell

import (
	"errors"
	"testing"
)

func newWithExample(t *testing.T) *Spell {
	t.Helper()
	s, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if status := s.AddEntry("example", 1); status != StatusAdded {
		t.Fatalf("expected StatusAdded, got %v", status)
	}
	return s
}

func TestNewRejectsInconsistentConfig(t *testing.T) {
	if _, err := New(PrefixLength(0)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for zero prefix length, got %v", err)
	}
	if _, err := New(PrefixLength(1), MaxDictionaryEditDistance(2)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for prefix length < max edit distance, got %v", err)
	}
}

func TestAddEntryPromotion(t *testing.T) {
	s, err := New(CountThreshold(3))
	if err != nil {
		t.Fatal(err)
	}

	if status := s.AddEntry("example", 1); status != StatusBelowThreshold {
		t.Fatalf("expected StatusBelowThreshold, got %v", status)
	}
	if _, ok := s.GetEntry("example"); ok {
		t.Fatal("term should not be indexed before reaching the threshold")
	}

	if status := s.AddEntry("example", 2); status != StatusAdded {
		t.Fatalf("expected StatusAdded on crossing the threshold, got %v", status)
	}
	count, ok := s.GetEntry("example")
	if !ok {
		t.Fatal("term should be indexed after reaching the threshold")
	}
	if count != 3 {
		t.Fatalf("expected the accumulated below-threshold total to carry over, got %d", count)
	}

	if status := s.AddEntry("example", 1); status != StatusUpdated {
		t.Fatalf("expected StatusUpdated for an already-present term, got %v", status)
	}
	if count, _ := s.GetEntry("example"); count != 4 {
		t.Fatalf("expected count 4 after update, got %d", count)
	}
}

func TestLookupExactAndFuzzy(t *testing.T) {
	s := newWithExample(t)

	suggestions, err := s.Lookup("eample")
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(suggestions))
	}
	if suggestions[0].Term != "example" {
		t.Fatalf("expected example, got %s", suggestions[0].Term)
	}
	if suggestions[0].Distance != 1 {
		t.Fatalf("expected distance 1, got %d", suggestions[0].Distance)
	}

	exact, err := s.Lookup("example")
	if err != nil {
		t.Fatal(err)
	}
	if len(exact) != 1 || exact[0].Distance != 0 {
		t.Fatalf("expected a single exact match, got %v", exact)
	}
}

func TestLookupMaxEditDistanceZeroFindsOnlyExact(t *testing.T) {
	s := newWithExample(t)

	suggestions, err := s.Lookup("eample", WithMaxEditDistance(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected no matches at max edit distance 0, got %v", suggestions)
	}
}

func TestLookupRejectsOversizedMaxEditDistance(t *testing.T) {
	s := newWithExample(t)
	if _, err := s.Lookup("example", WithMaxEditDistance(99)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestLookupIncludeUnknown(t *testing.T) {
	s := newWithExample(t)

	suggestions, err := s.Lookup("zzzzzzzzzz", WithIncludeUnknown(true))
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("expected one sentinel suggestion, got %v", suggestions)
	}
	if suggestions[0].Term != "zzzzzzzzzz" || suggestions[0].Count != 0 {
		t.Fatalf("expected the input echoed back with count 0, got %+v", suggestions[0])
	}
	if suggestions[0].Distance != int(s.maxDictionaryEditDistance)+1 {
		t.Fatalf("expected sentinel distance max+1, got %d", suggestions[0].Distance)
	}
}

func TestRemoveEntry(t *testing.T) {
	s := newWithExample(t)

	if err := s.RemoveEntry("example"); err != nil {
		t.Fatal(err)
	}
	suggestions, err := s.Lookup("example")
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected zero matches after removal, got %v", suggestions)
	}
	if err := s.RemoveEntry("example"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound removing twice, got %v", err)
	}
}

func TestLongestWord(t *testing.T) {
	s := newWithExample(t)
	if got := s.GetLongestWord(); got != uint32(len("example")) {
		t.Fatalf("expected longest word length 7, got %d", got)
	}
}

func TestSaveLoad(t *testing.T) {
	s1 := newWithExample(t)
	path := t.TempDir() + "/test.dump"

	if err := s1.Save(path); err != nil {
		t.Fatal(err)
	}
	s2, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	suggestions, err := s2.Lookup("eample")
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 || suggestions[0].Term != "example" {
		t.Fatalf("expected one match for example, got %v", suggestions)
	}
	if got := s2.GetLongestWord(); got != s1.GetLongestWord() {
		t.Fatalf("expected longest word to round-trip, got %d want %d", got, s1.GetLongestWord())
	}
}

func TestCornerCaseEmptyEntry(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if status := s.AddEntry("", 1); status != StatusAdded {
		t.Fatalf("expected StatusAdded for an empty term, got %v", status)
	}

	suggestions, err := s.Lookup("a")
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(suggestions))
	}
	if suggestions[0].Term != "" {
		t.Fatalf("expected empty string match, got %q", suggestions[0].Term)
	}
}
