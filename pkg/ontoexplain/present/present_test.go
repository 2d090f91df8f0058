package present

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
)

const ns = "http://example.org/p#"

func classes(names ...string) []owl.Class {
	out := make([]owl.Class, len(names))
	for i, n := range names {
		out[i] = owl.NewClass(ns + n)
	}
	return out
}

func TestIndexedListSortsByShortName(t *testing.T) {
	l := NewIndexedList(classes("Pizza", "Food", "Margherita"))
	require.Equal(t, 3, l.Len())

	c, ok := l.At(1)
	require.True(t, ok)
	assert.Equal(t, "Food", c.ShortForm())
	c, _ = l.At(3)
	assert.Equal(t, "Pizza", c.ShortForm())

	_, ok = l.At(0)
	assert.False(t, ok)
	_, ok = l.At(4)
	assert.False(t, ok)
}

func TestIndexedListTieBreaksOnIRI(t *testing.T) {
	a := owl.NewClass("http://b.example.org/x#Pizza")
	b := owl.NewClass("http://a.example.org/x#Pizza")
	l := NewIndexedList([]owl.Class{a, b})
	assert.Equal(t, []owl.Class{b, a}, l.Classes())
}

func TestIndexedListDoesNotAliasInput(t *testing.T) {
	in := classes("B", "A")
	l := NewIndexedList(in)
	assert.Equal(t, "B", in[0].ShortForm())
	got := l.Classes()
	got[0] = owl.Thing
	first, _ := l.At(1)
	assert.Equal(t, "A", first.ShortForm())
}

func TestSubclassListing(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, Options{})
	p.SubclassListing(NewIndexedList(classes("Pizza", "Food", "Margherita")))

	want := strings.Join([]string{
		"",
		"Classes in the ontology (in alphabetical order):",
		"1. Food",
		"2. Margherita",
		"3. Pizza",
		"",
		"Choose a subclass, or enter 'q' to quit: ",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestSuperclassListing(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, Options{})
	p.SuperclassListing(owl.NewClass(ns+"Margherita"), NewIndexedList(classes("VegetarianPizza", "NamedPizza")))

	out := buf.String()
	assert.Contains(t, out, "Superclasses of Margherita (in alphabetical order):\n1. NamedPizza\n2. VegetarianPizza\n")
	assert.Contains(t, out, "Choose a superclass, or enter 'b' to go back, or 'q' to quit: ")
}

func TestExplanationMinimalAndFull(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, Options{})
	p.Explanation("Every Margherita is a Pizza", []string{"Every Margherita is a Pizza"}, false)
	assert.Equal(t, "\nWhy can we say that Every Margherita is a Pizza? \nBecause:\nEvery Margherita is a Pizza\n", buf.String())

	buf.Reset()
	p.Explanation("Every A is a C", []string{"Every A is a B", "Every B is a C"}, true)
	assert.Equal(t, "\nWhy can we say that Every A is a C? \nBecause:\n1. Every A is a B\n2. Every B is a C\n", buf.String())
}

func TestMenuAndMessages(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, Options{})
	p.ExplanationMenu()
	p.ChosenExplanation(false)
	p.ChosenExplanation(true)
	p.InvalidExplanationChoice()
	p.AfterExplanation()
	p.InvalidSelection(3)
	p.UnexpectedError()

	want := strings.Join([]string{
		"",
		"Choose the type of explanation:",
		"1. Minimal set of explanations",
		"2. Full Set of explanations",
		"Or press 'b' to go back",
		"Chosen explanation: 1. Minimal set of explanations",
		"Chosen explanation: 2. Full Set of explanations",
		"Invalid choice. Please choose 1 or 2, or press 'b' to go back.",
		"Press 'b' to go back, or 'r' to start again, or 'q' to quit",
		"Invalid selection. Please enter a number between 1 and 3.",
		"An Unexpected error occurred!",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestColorOption(t *testing.T) {
	var plain, colored bytes.Buffer
	New(&plain, Options{Color: false}).UnexpectedError()
	New(&colored, Options{Color: true}).UnexpectedError()

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, colored.String(), UnexpectedError)
}
