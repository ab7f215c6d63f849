package molecule

import "sort"

// perceiveKekulize is Pass 2: rewrite every Aromatic bond into Single
// or Double, consistent with elemental valence.
func perceiveKekulize(m *AnnotatedMolecule) error {
	var aromaticBondIDs []int
	for _, b := range m.Bonds {
		if b.Order != Aromatic {
			continue
		}
		if !m.Atoms[b.A].IsInRing || !m.Atoms[b.B].IsInRing {
			return perceptionErrorf("kekulize", "aromatic bond %d (%d-%d) has an endpoint outside any ring", b.ID, b.A, b.B)
		}
		aromaticBondIDs = append(aromaticBondIDs, b.ID)
	}
	if len(aromaticBondIDs) == 0 {
		return nil
	}
	sort.Ints(aromaticBondIDs)

	for _, component := range partitionAromaticComponents(m, aromaticBondIDs) {
		if err := kekulizeComponent(m, component); err != nil {
			return err
		}
	}
	m.rebuildAdjacency()
	return nil
}

// partitionAromaticComponents groups aromatic bonds into connected
// components via BFS over aromatic adjacency.
func partitionAromaticComponents(m *AnnotatedMolecule, aromaticBondIDs []int) [][]int {
	bondByID := make(map[int]AnnotatedBond, len(aromaticBondIDs))
	atomBonds := make(map[int][]int)
	for _, bid := range aromaticBondIDs {
		b := m.Bonds[bid]
		bondByID[bid] = b
		atomBonds[b.A] = append(atomBonds[b.A], bid)
		atomBonds[b.B] = append(atomBonds[b.B], bid)
	}

	visited := make(map[int]bool, len(aromaticBondIDs))
	var components [][]int
	for _, startBond := range aromaticBondIDs {
		if visited[startBond] {
			continue
		}
		var component []int
		queue := []int{startBond}
		visited[startBond] = true
		for len(queue) > 0 {
			bid := queue[0]
			queue = queue[1:]
			component = append(component, bid)
			b := bondByID[bid]
			for _, atomID := range [2]int{b.A, b.B} {
				for _, nb := range atomBonds[atomID] {
					if !visited[nb] {
						visited[nb] = true
						queue = append(queue, nb)
					}
				}
			}
		}
		sort.Ints(component)
		components = append(components, component)
	}
	return components
}

// kekulizeComponent backtracks over one connected aromatic component,
// trying Double before Single on each bond in ascending bond-id order,
// so the first satisfying assignment found is deterministic. A bond
// is Double only if both endpoints still need one; the search
// succeeds only when every atom's final double-bond
// count matches its requirement exactly.
func kekulizeComponent(m *AnnotatedMolecule, bondIDs []int) error {
	needs := make(map[int]int)
	for _, bid := range bondIDs {
		b := m.Bonds[bid]
		for _, atomID := range [2]int{b.A, b.B} {
			if _, ok := needs[atomID]; !ok {
				needs[atomID] = boolToInt(atomNeedsAromaticDouble(m, atomID))
			}
		}
	}

	used := make(map[int]int, len(needs))
	assigned := make(map[int]BondOrder, len(bondIDs))

	var backtrack func(idx int) bool
	backtrack = func(idx int) bool {
		if idx == len(bondIDs) {
			for atomID, need := range needs {
				if used[atomID] != need {
					return false
				}
			}
			return true
		}
		bid := bondIDs[idx]
		b := m.Bonds[bid]
		if used[b.A] < needs[b.A] && used[b.B] < needs[b.B] {
			used[b.A]++
			used[b.B]++
			assigned[bid] = Double
			if backtrack(idx + 1) {
				return true
			}
			used[b.A]--
			used[b.B]--
		}
		assigned[bid] = Single
		if backtrack(idx + 1) {
			return true
		}
		return false
	}

	if !backtrack(0) {
		return perceptionErrorf("kekulize", "no valence-consistent Kekulé assignment exists for the aromatic system containing bond %d", bondIDs[0])
	}
	for bid, order := range assigned {
		m.setBondOrder(bid, order)
	}
	return nil
}

// atomNeedsAromaticDouble reports whether an aromatic-system atom must
// receive exactly one double bond to satisfy its valence, versus
// donating a lone pair to the system instead (e.g. furan's oxygen).
func atomNeedsAromaticDouble(m *AnnotatedMolecule, atomID int) bool {
	a := m.Atoms[atomID]
	switch a.Element {
	case C:
		return true
	case N, P:
		return a.Degree == 2
	case O, S:
		return false
	default:
		return true
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
