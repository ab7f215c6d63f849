// Package rules defines the atom-typing rule object and the parser
// that produces rule sequences from a TOML-shaped rule document.
package rules

import "github.com/cx-luo/dreiding/molecule"

// Conditions is the predicate a Rule tests an atom (and its
// neighborhood) against. Every field is optional; a zero-value pointer
// means wildcard: the condition is not checked.
type Conditions struct {
	Element          *molecule.Element
	FormalCharge     *int
	Degree           *int
	LonePairs        *int
	StericNumber     *int
	Hybridization    *molecule.Hybridization
	IsInRing         *bool
	IsAromatic       *bool
	IsAntiAromatic   *bool
	IsResonant       *bool
	SmallestRingSize *int

	// NeighborElements maps an element to the exact required
	// count of neighbors of that element; elements absent from the map
	// must have zero neighbors of that element.
	NeighborElements map[molecule.Element]int

	// NeighborTypes maps an atom-type string to the exact required
	// count of neighbors currently carrying that type.
	NeighborTypes map[string]int
}

// Rule is one entry of the typing engine's rule list.
type Rule struct {
	Name         string
	Priority     int
	AssignedType string
	Conditions   Conditions
}
