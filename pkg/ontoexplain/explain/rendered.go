package explain

import (
	"context"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/render"
)

// Explanation is a rendered justification for one subsumption
type Explanation struct {
	Subsumption string
	Axioms      []owl.Axiom
	Lines       []string
	Full        bool
	// Justifications counts the distinct justifications merged into Axioms
	Justifications int
}

// Render asks gen why sub is subsumed by super and renders the answer. The full
// form merges every justification with Flatten; otherwise one minimal
// justification is used.
func Render(ctx context.Context, gen Generator, r render.Renderer, sub, super owl.Class, full bool) (Explanation, error) {
	ax := owl.NewSubClassOf(sub, super)
	out := Explanation{Subsumption: r.Axiom(ax), Full: full}

	if full {
		justifications, err := gen.All(ctx, ax)
		if err != nil {
			return Explanation{}, err
		}
		out.Axioms = Flatten(justifications)
		out.Justifications = len(justifications)
	} else {
		justification, err := gen.Minimal(ctx, ax)
		if err != nil {
			return Explanation{}, err
		}
		out.Axioms = justification
		out.Justifications = 1
	}

	out.Lines = make([]string, len(out.Axioms))
	for i, a := range out.Axioms {
		out.Lines[i] = r.Axiom(a)
	}
	return out, nil
}
