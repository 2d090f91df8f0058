package present

import (
	"sort"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
)

// IndexedList is a class listing sorted by short name and addressed from 1
type IndexedList struct {
	classes []owl.Class
}

// NewIndexedList sorts a copy of classes by short name, then IRI
func NewIndexedList(classes []owl.Class) IndexedList {
	sorted := append([]owl.Class(nil), classes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].ShortForm(), sorted[j].ShortForm()
		if a != b {
			return a < b
		}
		return sorted[i].IRI < sorted[j].IRI
	})
	return IndexedList{classes: sorted}
}

// Len returns the number of entries
func (l IndexedList) Len() int { return len(l.classes) }

// At returns the class at 1-based index k
func (l IndexedList) At(k int) (owl.Class, bool) {
	if k < 1 || k > len(l.classes) {
		return owl.Class{}, false
	}
	return l.classes[k-1], true
}

// Classes returns the entries in listing order
func (l IndexedList) Classes() []owl.Class {
	return append([]owl.Class(nil), l.classes...)
}
