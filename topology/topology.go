// Package topology enumerates and canonicalizes the bonded
// interaction terms (bonds, angles, proper and improper torsions)
// that a DREIDING-typed molecule contributes to a force field.
package topology

import (
	"sort"

	"github.com/cx-luo/dreiding/molecule"
)

// TypedAtom is one row of a MolecularTopology's atom table.
type TypedAtom struct {
	ID            int
	Element       molecule.Element
	Hybridization molecule.Hybridization
	AtomType      string
}

// Bond is a canonical, deduplicated bonded pair with i < j.
type Bond struct {
	I, J  int
	Order molecule.BondOrder
}

// Angle is a canonical, deduplicated (i, center, k) triple with i < k.
type Angle struct {
	Center int
	I, K   int
}

// ProperDihedral is a canonical, deduplicated (i, j, k, l) quadruple:
// the lexicographic minimum of itself and its reverse.
type ProperDihedral struct {
	I, J, K, L int
}

// ImproperDihedral is a canonical, deduplicated improper term: center
// plus the three plane atoms (p1 < p2 < p3), axis implicit.
type ImproperDihedral struct {
	Center         int
	P1, P2, P3     int
}

// MolecularTopology is the immutable output of BuildTopology.
type MolecularTopology struct {
	Atoms             []TypedAtom
	Bonds             []Bond
	Angles            []Angle
	ProperDihedrals   []ProperDihedral
	ImproperDihedrals []ImproperDihedral
}

// BuildTopology enumerates every bonded interaction term implied by m
// and atomTypes. It is infallible by contract: every precondition is
// established by the perception and typing phases that run before it.
func BuildTopology(m *molecule.AnnotatedMolecule, atomTypes []string) MolecularTopology {
	topo := MolecularTopology{
		Atoms: make([]TypedAtom, len(m.Atoms)),
	}
	for i, a := range m.Atoms {
		topo.Atoms[i] = TypedAtom{ID: a.ID, Element: a.Element, Hybridization: a.Hybridization, AtomType: atomTypes[i]}
	}

	topo.Bonds = buildBonds(m)
	topo.Angles = buildAngles(m)
	topo.ProperDihedrals = buildProperDihedrals(m)
	topo.ImproperDihedrals = buildImproperDihedrals(m)
	return topo
}

func buildBonds(m *molecule.AnnotatedMolecule) []Bond {
	seen := make(map[[2]int]molecule.BondOrder, len(m.Bonds))
	for _, b := range m.Bonds {
		i, j := b.A, b.B
		if i > j {
			i, j = j, i
		}
		seen[[2]int{i, j}] = b.Order
	}
	out := make([]Bond, 0, len(seen))
	for pair, order := range seen {
		out = append(out, Bond{I: pair[0], J: pair[1], Order: order})
	}
	sort.Slice(out, func(x, y int) bool {
		if out[x].I != out[y].I {
			return out[x].I < out[y].I
		}
		return out[x].J < out[y].J
	})
	return out
}

func buildAngles(m *molecule.AnnotatedMolecule) []Angle {
	seen := make(map[[3]int]struct{})
	var out []Angle
	for center := range m.Atoms {
		neighbors := m.Adjacency(center)
		if len(neighbors) < 2 {
			continue
		}
		for x := 0; x < len(neighbors); x++ {
			for y := x + 1; y < len(neighbors); y++ {
				i, k := neighbors[x].AtomID, neighbors[y].AtomID
				if i > k {
					i, k = k, i
				}
				key := [3]int{i, center, k}
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, Angle{Center: center, I: i, K: k})
			}
		}
	}
	sort.Slice(out, func(x, y int) bool {
		if out[x].I != out[y].I {
			return out[x].I < out[y].I
		}
		if out[x].Center != out[y].Center {
			return out[x].Center < out[y].Center
		}
		return out[x].K < out[y].K
	})
	return out
}

func buildProperDihedrals(m *molecule.AnnotatedMolecule) []ProperDihedral {
	seen := make(map[[4]int]struct{})
	var out []ProperDihedral
	for _, b := range m.Bonds {
		j, k := b.A, b.B
		for _, side := range [2][2]int{{j, k}, {k, j}} {
			j, k = side[0], side[1]
			for _, ni := range m.Adjacency(j) {
				i := ni.AtomID
				if i == k {
					continue
				}
				for _, nl := range m.Adjacency(k) {
					l := nl.AtomID
					if l == j || l == i {
						continue
					}
					tuple := canonicalDihedral(i, j, k, l)
					if _, ok := seen[tuple]; ok {
						continue
					}
					seen[tuple] = struct{}{}
					out = append(out, ProperDihedral{I: tuple[0], J: tuple[1], K: tuple[2], L: tuple[3]})
				}
			}
		}
	}
	sort.Slice(out, func(x, y int) bool {
		ax := [4]int{out[x].I, out[x].J, out[x].K, out[x].L}
		ay := [4]int{out[y].I, out[y].J, out[y].K, out[y].L}
		return lessTuple4(ax, ay)
	})
	return out
}

// canonicalDihedral returns (i, j, k, l) or its full reverse (l, k, j,
// i), whichever is lexicographically smaller.
func canonicalDihedral(i, j, k, l int) [4]int {
	fwd := [4]int{i, j, k, l}
	rev := [4]int{l, k, j, i}
	if lessTuple4(rev, fwd) {
		return rev
	}
	return fwd
}

func lessTuple4(a, b [4]int) bool {
	for idx := 0; idx < 4; idx++ {
		if a[idx] != b[idx] {
			return a[idx] < b[idx]
		}
	}
	return false
}

// buildImproperDihedrals finds every degree-3 SP2/Resonant center:
// the DREIDING convention generates one out-of-plane term per choice
// of axis neighbor, but the canonical form keeps only the center plus
// its three neighbors sorted ascending, with no axis marker, so the
// three candidate terms per center collapse under deduplication to a
// single stored entry per center (consistent with benzene producing
// exactly one improper per ring carbon).
func buildImproperDihedrals(m *molecule.AnnotatedMolecule) []ImproperDihedral {
	seen := make(map[int]struct{})
	var out []ImproperDihedral
	for center, a := range m.Atoms {
		if a.Degree != 3 {
			continue
		}
		if a.Hybridization != molecule.SP2 && a.Hybridization != molecule.Resonant {
			continue
		}
		if _, ok := seen[center]; ok {
			continue
		}
		seen[center] = struct{}{}
		neighbors := m.Adjacency(center)
		p1, p2, p3 := sort3(neighbors[0].AtomID, neighbors[1].AtomID, neighbors[2].AtomID)
		out = append(out, ImproperDihedral{Center: center, P1: p1, P2: p2, P3: p3})
	}
	sort.Slice(out, func(x, y int) bool { return out[x].Center < out[y].Center })
	return out
}

func sort3(a, b, c int) (int, int, int) {
	s := [3]int{a, b, c}
	sort.Ints(s[:])
	return s[0], s[1], s[2]
}
