// Package reasoner defines how the explorer asks for direct superclasses and
// holds the reduction shared by every implementation.
package reasoner

import (
	"context"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
)

// Reasoner answers classification queries over one ontology.
// Implementations: structural (pure Go), datalog (Google Mangle).
type Reasoner interface {
	// DirectSuperclasses returns the classes that directly subsume c
	DirectSuperclasses(ctx context.Context, c owl.Class) ([]owl.Class, error)
}

// SubsumersFunc returns every strict told-or-derived subsumer of a class
type SubsumersFunc func(c owl.Class) []owl.Class

// Direct reduces the subsumers of c to the direct ones.
//
// Classes equivalent to c (mutual subsumers) are dropped. A subsumer s is direct
// when no other subsumer t, not equivalent to s, lies below s. Classes with no
// named subsumer sit directly under owl:Thing.
func Direct(c owl.Class, subsumers SubsumersFunc) []owl.Class {
	if c.IsThing() {
		return nil
	}

	up := make(map[owl.IRI]map[owl.IRI]bool)
	above := func(x owl.Class) map[owl.IRI]bool {
		if s, ok := up[x.IRI]; ok {
			return s
		}
		s := make(map[owl.IRI]bool)
		for _, y := range subsumers(x) {
			s[y.IRI] = true
		}
		up[x.IRI] = s
		return s
	}

	var candidates []owl.Class
	seen := make(map[owl.IRI]bool)
	for _, s := range subsumers(c) {
		if s == c || seen[s.IRI] || s.IsThing() {
			continue
		}
		seen[s.IRI] = true
		if above(s)[c.IRI] {
			continue // equivalent to c
		}
		candidates = append(candidates, s)
	}

	var direct []owl.Class
	for _, s := range candidates {
		isDirect := true
		for _, t := range candidates {
			if t == s {
				continue
			}
			equivalent := above(t)[s.IRI] && above(s)[t.IRI]
			if !equivalent && above(t)[s.IRI] {
				isDirect = false
				break
			}
		}
		if isDirect {
			direct = append(direct, s)
		}
	}

	if len(direct) == 0 {
		return []owl.Class{owl.Thing}
	}
	return direct
}
