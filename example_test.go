package spell_test

import (
	"fmt"

	"github.com/corpusgo/spell"
)

func ExampleSpell_AddEntry() {
	s, _ := spell.New()

	// Add a new term, "example", to the dictionary.
	s.AddEntry("example", 10)

	// A second call accumulates rather than overwriting.
	s.AddEntry("example", 100)

	count, _ := s.GetEntry("example")
	fmt.Printf("Count for 'example' is: %v\n", count)
	// Output:
	// Count for 'example' is: 110
}

func ExampleSpell_Lookup() {
	s, _ := spell.New()
	s.AddEntry("example", 1)

	suggestions, _ := s.Lookup("eample")
	fmt.Printf("Suggestions are: %v\n", suggestions[0].Term)
	// Output:
	// Suggestions are: example
}

func ExampleSpell_Lookup_maxEditDistance() {
	s, _ := spell.New()
	s.AddEntry("example", 1)

	// Restrict the search to exact matches only.
	suggestions, _ := s.Lookup("eample", spell.WithMaxEditDistance(0))
	fmt.Printf("Suggestions are: %v\n", suggestions)
	// Output:
	// Suggestions are: []
}

func ExampleSpell_Lookup_verbosityAll() {
	s, _ := spell.New()
	s.AddEntry("example", 5)
	s.AddEntry("examples", 1)

	suggestions, _ := s.Lookup("eample", spell.WithVerbosity(spell.VerbosityAll))
	for _, sug := range suggestions {
		fmt.Printf("%s (distance=%d)\n", sug.Term, sug.Distance)
	}
	// Output:
	// example (distance=1)
	// examples (distance=2)
}

func ExampleSpell_LookupCompound() {
	s, _ := spell.New()
	s.AddEntry("going", 10)
	s.AddEntry("home", 10)

	suggestions, _ := s.LookupCompound("gong home")
	fmt.Println(suggestions[0].Term)
	// Output:
	// going home
}

func ExampleSpell_Segment() {
	s, _ := spell.New()
	s.AddEntry("the", 10)
	s.AddEntry("quick", 10)
	s.AddEntry("brown", 10)
	s.AddEntry("fox", 10)

	composition, _ := s.Segment("thequickbrownfox")
	fmt.Println(composition.SegmentedString)
	// Output:
	// the quick brown fox
}
