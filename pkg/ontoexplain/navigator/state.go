package navigator

import "github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"

// State is a step of the explorer dialogue
type State int

const (
	ChooseSubclass State = iota
	ChooseSuperclass
	ChooseExplanationType
	ShowExplanation
)

func (s State) String() string {
	switch s {
	case ChooseSubclass:
		return "ChooseSubclass"
	case ChooseSuperclass:
		return "ChooseSuperclass"
	case ChooseExplanationType:
		return "ChooseExplanationType"
	case ShowExplanation:
		return "ShowExplanation"
	default:
		return "Unknown"
	}
}

// OutcomeKind says what an input did to the dialogue
type OutcomeKind int

const (
	Stay OutcomeKind = iota
	Transition
	Terminate
)

func (k OutcomeKind) String() string {
	switch k {
	case Stay:
		return "Stay"
	case Transition:
		return "Transition"
	case Terminate:
		return "Terminate"
	default:
		return "Unknown"
	}
}

// Outcome is the result of handling one input
type Outcome struct {
	Kind  OutcomeKind
	State State
}

// Selection holds the classes chosen so far. Values are never modified; every
// method returns a new Selection.
type Selection struct {
	subclass   owl.Class
	superclass owl.Class
	hasSub     bool
	hasSuper   bool
}

// Subclass returns the chosen subclass, if any
func (s Selection) Subclass() (owl.Class, bool) { return s.subclass, s.hasSub }

// Superclass returns the chosen superclass, if any
func (s Selection) Superclass() (owl.Class, bool) { return s.superclass, s.hasSuper }

// WithSubclass sets the subclass
func (s Selection) WithSubclass(c owl.Class) Selection {
	s.subclass, s.hasSub = c, true
	return s
}

// WithSuperclass sets the superclass
func (s Selection) WithSuperclass(c owl.Class) Selection {
	s.superclass, s.hasSuper = c, true
	return s
}

// ClearSubclass drops both choices
func (s Selection) ClearSubclass() Selection {
	return Selection{}
}

// ClearSuperclass drops the superclass
func (s Selection) ClearSuperclass() Selection {
	s.superclass, s.hasSuper = owl.Class{}, false
	return s
}

// Cleared returns an empty selection
func (s Selection) Cleared() Selection { return Selection{} }
