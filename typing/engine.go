// Package typing implements the priority-ordered fixed-point atom
// typing engine.
package typing

import (
	"fmt"
	"sort"

	"github.com/cx-luo/dreiding/molecule"
	"github.com/cx-luo/dreiding/rules"
)

// maxRounds bounds the fixed-point loop; the finite priority lattice
// guarantees convergence well inside this ceiling.
const maxRounds = 100

// AssignmentError reports that the fixed-point loop stopped (by
// converging or by exhausting its round budget) with atoms still
// untyped.
type AssignmentError struct {
	UntypedAtomIDs []int
	RoundsCompleted int
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("typing: %d atom(s) untyped after %d rounds", len(e.UntypedAtomIDs), e.RoundsCompleted)
}

const minPriority = -1 << 31

type atomState struct {
	typ      string
	priority int
}

// AssignTypes runs the priority-sorted fixed-point solver over m using
// ruleSet, returning one type string per atom in ascending atom-id
// order, or an *AssignmentError if some atom never matches any rule
// within 100 rounds.
func AssignTypes(m *molecule.AnnotatedMolecule, ruleSet []rules.Rule) ([]string, error) {
	sorted := make([]rules.Rule, len(ruleSet))
	copy(sorted, ruleSet)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].Name < sorted[j].Name
	})

	states := make([]atomState, len(m.Atoms))
	for i := range states {
		states[i].priority = minPriority
	}

	round := 0
	for ; round < maxRounds; round++ {
		changed := false
		for atomID := range m.Atoms {
			for _, r := range sorted {
				if !ruleMatches(m, states, atomID, r.Conditions) {
					continue
				}
				if r.Priority > states[atomID].priority {
					states[atomID] = atomState{typ: r.AssignedType, priority: r.Priority}
					changed = true
				}
				break
			}
		}
		if !changed {
			break
		}
	}

	var untyped []int
	out := make([]string, len(states))
	for i, s := range states {
		if s.priority == minPriority {
			untyped = append(untyped, i)
		}
		out[i] = s.typ
	}
	if len(untyped) > 0 {
		return nil, &AssignmentError{UntypedAtomIDs: untyped, RoundsCompleted: round}
	}
	return out, nil
}

// ruleMatches reports whether every condition specified by c holds
// for atomID, given the current (possibly partial) type assignment in
// states.
func ruleMatches(m *molecule.AnnotatedMolecule, states []atomState, atomID int, c rules.Conditions) bool {
	a := m.Atoms[atomID]

	if c.Element != nil && *c.Element != a.Element {
		return false
	}
	if c.FormalCharge != nil && *c.FormalCharge != a.FormalCharge {
		return false
	}
	if c.Degree != nil && *c.Degree != a.Degree {
		return false
	}
	if c.LonePairs != nil && *c.LonePairs != a.LonePairs {
		return false
	}
	if c.StericNumber != nil && *c.StericNumber != a.StericNumber {
		return false
	}
	if c.Hybridization != nil && *c.Hybridization != a.Hybridization {
		return false
	}
	if c.IsInRing != nil && *c.IsInRing != a.IsInRing {
		return false
	}
	if c.IsAromatic != nil && *c.IsAromatic != a.IsAromatic {
		return false
	}
	if c.IsAntiAromatic != nil && *c.IsAntiAromatic != a.IsAntiAromatic {
		return false
	}
	if c.IsResonant != nil && *c.IsResonant != a.IsResonant {
		return false
	}
	if c.SmallestRingSize != nil && *c.SmallestRingSize != a.SmallestRingSize {
		return false
	}

	if len(c.NeighborElements) > 0 && !neighborElementsMatch(m, atomID, c.NeighborElements) {
		return false
	}
	if len(c.NeighborTypes) > 0 && !neighborTypesMatch(m, states, atomID, c.NeighborTypes) {
		return false
	}
	return true
}

func neighborElementsMatch(m *molecule.AnnotatedMolecule, atomID int, want map[molecule.Element]int) bool {
	counts := make(map[molecule.Element]int)
	for _, nb := range m.Adjacency(atomID) {
		counts[m.Atoms[nb.AtomID].Element]++
	}
	for element, count := range want {
		if counts[element] != count {
			return false
		}
	}
	for element, count := range counts {
		if _, listed := want[element]; !listed && count != 0 {
			return false
		}
	}
	return true
}

// neighborTypesMatch checks the neighbor-type histogram using each
// neighbor's *current* type in states; an untyped neighbor is not
// counted toward any histogram entry, so a required positive count
// that depends on it simply fails to match this round.
func neighborTypesMatch(m *molecule.AnnotatedMolecule, states []atomState, atomID int, want map[string]int) bool {
	counts := make(map[string]int)
	for _, nb := range m.Adjacency(atomID) {
		if t := states[nb.AtomID].typ; t != "" {
			counts[t]++
		}
	}
	for typ, count := range want {
		if counts[typ] != count {
			return false
		}
	}
	for typ, count := range counts {
		if _, listed := want[typ]; !listed && count != 0 {
			return false
		}
	}
	return true
}
