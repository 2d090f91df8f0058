package reasoner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
)

const ns = "http://example.org/r#"

func c(name string) owl.Class { return owl.NewClass(ns + name) }

// table maps a class short name to its full subsumer set
func table(m map[string][]string) SubsumersFunc {
	return func(x owl.Class) []owl.Class {
		var out []owl.Class
		for _, n := range m[x.ShortForm()] {
			out = append(out, c(n))
		}
		return out
	}
}

func TestDirectDropsIndirect(t *testing.T) {
	subs := table(map[string][]string{
		"Margherita":      {"NamedPizza", "Pizza", "Food", "VegetarianPizza"},
		"NamedPizza":      {"Pizza", "Food"},
		"VegetarianPizza": {"Pizza", "Food"},
		"Pizza":           {"Food"},
	})
	assert.Equal(t, []owl.Class{c("NamedPizza"), c("VegetarianPizza")}, Direct(c("Margherita"), subs))
	assert.Equal(t, []owl.Class{c("Food")}, Direct(c("Pizza"), subs))
}

func TestDirectTopLevelIsThing(t *testing.T) {
	subs := table(map[string][]string{})
	assert.Equal(t, []owl.Class{owl.Thing}, Direct(c("Food"), subs))
	assert.Empty(t, Direct(owl.Thing, subs))
}

func TestDirectWithEquivalents(t *testing.T) {
	// Pie ≡ Pizza, both under Food; Calzone under both
	subs := table(map[string][]string{
		"Calzone": {"Pizza", "Pie", "Food"},
		"Pizza":   {"Pie", "Food"},
		"Pie":     {"Pizza", "Food"},
	})
	assert.Equal(t, []owl.Class{c("Pizza"), c("Pie")}, Direct(c("Calzone"), subs))
	assert.Equal(t, []owl.Class{c("Food")}, Direct(c("Pizza"), subs), "equivalent class is not a superclass")
}
