// Package present writes the explorer dialogue: class listings, the explanation
// menu, explanations and status lines.
package present

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
)

// Options controls presentation
type Options struct {
	Color bool
}

// Presenter writes dialogue output to one writer
type Presenter struct {
	out    io.Writer
	header *color.Color
	chosen *color.Color
	warn   *color.Color
	fail   *color.Color
}

// New creates a presenter writing to out
func New(out io.Writer, opts Options) *Presenter {
	p := &Presenter{
		out:    out,
		header: color.New(color.Bold),
		chosen: color.New(color.FgCyan),
		warn:   color.New(color.FgYellow),
		fail:   color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.header, p.chosen, p.warn, p.fail} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *Presenter) line(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

func (p *Presenter) listing(l IndexedList) {
	for i, c := range l.classes {
		p.line(fmt.Sprintf("%d. %s", i+1, c.ShortForm()))
	}
}

// SubclassListing prints every class and the subclass prompt
func (p *Presenter) SubclassListing(l IndexedList) {
	_, _ = p.header.Fprintln(p.out, ClassesHeader)
	p.listing(l)
	p.line(ChooseSubclassPrompt)
}

// SuperclassListing prints the direct superclasses of sub and the superclass prompt
func (p *Presenter) SuperclassListing(sub owl.Class, l IndexedList) {
	_, _ = p.header.Fprintln(p.out, fmt.Sprintf(SuperclassesHeaderFmt, sub.ShortForm()))
	p.listing(l)
	p.line(ChooseSuperclassPrompt)
}

// ChosenSubclass confirms the subclass choice
func (p *Presenter) ChosenSubclass(c owl.Class) {
	_, _ = p.chosen.Fprintln(p.out, fmt.Sprintf(ChosenSubclassFmt, c.ShortForm()))
}

// ChosenSuperclass confirms the superclass choice
func (p *Presenter) ChosenSuperclass(c owl.Class) {
	_, _ = p.chosen.Fprintln(p.out, fmt.Sprintf(ChosenSuperclassFmt, c.ShortForm()))
}

// ExplanationMenu prints the explanation type menu
func (p *Presenter) ExplanationMenu() {
	_, _ = p.header.Fprintln(p.out, ExplanationMenuHeader)
	p.line(MinimalOption)
	p.line(FullOption)
	p.line(BackOption)
}

// ChosenExplanation confirms the explanation type
func (p *Presenter) ChosenExplanation(full bool) {
	option := MinimalOption
	if full {
		option = FullOption
	}
	_, _ = p.chosen.Fprintln(p.out, fmt.Sprintf(ChosenExplanationFmt, option))
}

// Explanation prints the header for the rendered subsumption followed by the
// rendered axioms. Numbered lines start at 1.
func (p *Presenter) Explanation(subsumption string, lines []string, numbered bool) {
	_, _ = p.header.Fprintln(p.out, fmt.Sprintf(WhyHeaderFmt, subsumption))
	for i, l := range lines {
		if numbered {
			l = fmt.Sprintf("%d. %s", i+1, l)
		}
		p.line(l)
	}
}

// AfterExplanation prints the post-display prompt
func (p *Presenter) AfterExplanation() {
	p.line(AfterExplanationPrompt)
}

// InvalidExplanationChoice reports an explanation type other than 1 or 2
func (p *Presenter) InvalidExplanationChoice() {
	_, _ = p.warn.Fprintln(p.out, InvalidExplanationChoice)
}

// InvalidSelection reports an index outside 1..count
func (p *Presenter) InvalidSelection(count int) {
	if count == 0 {
		_, _ = p.warn.Fprintln(p.out, NoClasses)
		return
	}
	_, _ = p.warn.Fprintln(p.out, fmt.Sprintf(InvalidSelectionFmt, count))
}

// UnexpectedError reports a collaborator failure
func (p *Presenter) UnexpectedError() {
	_, _ = p.fail.Fprintln(p.out, UnexpectedError)
}

// Lines prints one line per entry, used by the one-shot commands
func (p *Presenter) Lines(lines []string) {
	for _, l := range lines {
		p.line(l)
	}
}

// Classes prints a numbered listing without prompts
func (p *Presenter) Classes(l IndexedList) {
	p.listing(l)
}
