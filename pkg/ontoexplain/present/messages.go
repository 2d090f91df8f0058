package present

// Dialogue text
const (
	ClassesHeader            = "\nClasses in the ontology (in alphabetical order):"
	ChooseSubclassPrompt     = "\nChoose a subclass, or enter 'q' to quit: "
	ChosenSubclassFmt        = "\nChosen subclass is: %s"
	SuperclassesHeaderFmt    = "Superclasses of %s (in alphabetical order):"
	ChooseSuperclassPrompt   = "\nChoose a superclass, or enter 'b' to go back, or 'q' to quit: "
	ChosenSuperclassFmt      = "\nChosen superclass is: %s"
	ExplanationMenuHeader    = "\nChoose the type of explanation:"
	MinimalOption            = "1. Minimal set of explanations"
	FullOption               = "2. Full Set of explanations"
	BackOption               = "Or press 'b' to go back"
	ChosenExplanationFmt     = "Chosen explanation: %s"
	WhyHeaderFmt             = "\nWhy can we say that %s? \nBecause:"
	InvalidExplanationChoice = "Invalid choice. Please choose 1 or 2, or press 'b' to go back."
	AfterExplanationPrompt   = "Press 'b' to go back, or 'r' to start again, or 'q' to quit"
	UnexpectedError          = "An Unexpected error occurred!"
	InvalidSelectionFmt      = "Invalid selection. Please enter a number between 1 and %d."
	NoClasses                = "No classes to choose from."
)
