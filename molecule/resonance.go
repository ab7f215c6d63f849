package molecule

// perceiveResonance is Pass 5: a two-stage pass over the atoms and
// rings Pass 3/4 already characterized.
//
// Stage 1 recognizes named delocalized functional groups by their
// connectivity shape — carboxylate, nitro, guanidinium,
// thiourea/thioamide, amide, phosphate/phosphoryl, plus every
// aromatic or anti-aromatic ring system — and marks their member
// atoms IsResonant and IsInConjugatedSystem directly, recording a
// ResonanceSystem for each. These are the groups with more than one
// reasonable Lewis structure.
//
// Stage 2 propagates IsInConjugatedSystem outward along bonds linking
// any two atoms that carry a p orbital (a multiple bond, a donor lone
// pair, a formal charge, or an atom stage 1 already flagged), without
// promoting anything to IsResonant: a neutral, non-aromatic conjugated
// chain (a plain diene) is conjugated but not resonant. Halogen
// oxyanion terminal oxygens (perchlorate and the like) are excluded
// from this propagation outright, since their anionic charge would
// otherwise union them with the central halogen's multiple bonds and
// register as a false-positive resonance system.
func perceiveResonance(m *AnnotatedMolecule) error {
	markAromaticResonanceSystems(m)

	claimed := make([]bool, len(m.Atoms))
	templates := []func(m *AnnotatedMolecule, atomID int, claimed []bool) bool{
		matchCarboxylateResonance,
		matchNitroResonance,
		matchGuanidinium,
		matchThioamideOrThiourea,
		matchAmideResonance,
		matchPhosphateResonance,
	}
	for atomID := range m.Atoms {
		if claimed[atomID] {
			continue
		}
		for _, tpl := range templates {
			if tpl(m, atomID, claimed) {
				break
			}
		}
	}

	propagateConjugation(m)
	return nil
}

// markAromaticResonanceSystems groups atoms already flagged
// IsAromatic or IsAntiAromatic by Pass 4 into their connected
// components (a BFS over bonds joining two such atoms, which merges
// fused ring systems automatically) and marks each component resonant.
func markAromaticResonanceSystems(m *AnnotatedMolecule) {
	visited := make([]bool, len(m.Atoms))
	for start := range m.Atoms {
		if visited[start] {
			continue
		}
		a := m.Atoms[start]
		if !a.IsAromatic && !a.IsAntiAromatic {
			continue
		}
		queue := []int{start}
		visited[start] = true
		var atoms []int
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			atoms = append(atoms, cur)
			for _, nb := range m.Adjacency(cur) {
				na := m.Atoms[nb.AtomID]
				if visited[nb.AtomID] || (!na.IsAromatic && !na.IsAntiAromatic) {
					continue
				}
				visited[nb.AtomID] = true
				queue = append(queue, nb.AtomID)
			}
		}
		recordResonantSystem(m, atoms, nil)
	}
}

// recordResonantSystem marks every atom in atomIDs IsResonant and
// IsInConjugatedSystem, claims them (if claimed is non-nil) so later
// stage-1 templates skip them, and records the induced bonds as a new
// ResonanceSystem.
func recordResonantSystem(m *AnnotatedMolecule, atomIDs []int, claimed []bool) {
	atomSet := make(map[int]struct{}, len(atomIDs))
	for _, id := range atomIDs {
		atomSet[id] = struct{}{}
		m.Atoms[id].IsResonant = true
		m.Atoms[id].IsInConjugatedSystem = true
		if claimed != nil {
			claimed[id] = true
		}
	}
	bondSet := make(map[int]struct{})
	for _, b := range m.Bonds {
		if _, ok := atomSet[b.A]; !ok {
			continue
		}
		if _, ok := atomSet[b.B]; !ok {
			continue
		}
		bondSet[b.ID] = struct{}{}
	}
	m.ResonanceSystems = append(m.ResonanceSystems, ResonanceSystem{Atoms: atomSet, Bonds: bondSet})
}

// matchCarboxylateResonance recognizes the carboxylate shape (sp2
// carbon bonded to exactly two terminal oxygens, one double, one
// single) and flags all three atoms resonant.
func matchCarboxylateResonance(m *AnnotatedMolecule, atomID int, claimed []bool) bool {
	a := m.Atoms[atomID]
	if a.Element != C || a.Degree != 3 {
		return false
	}
	term := terminalOxygens(m, atomID)
	if len(term) != 2 {
		return false
	}
	haveDouble, haveSingle := false, false
	for _, nb := range term {
		switch nb.Order {
		case Double:
			haveDouble = true
		case Single:
			haveSingle = true
		}
	}
	if !haveDouble || !haveSingle {
		return false
	}
	ids := []int{atomID, term[0].AtomID, term[1].AtomID}
	recordResonantSystem(m, ids, claimed)
	return true
}

// matchNitroResonance recognizes the nitro shape (sp2 nitrogen bonded
// to exactly two terminal oxygens, one double, one single) and flags
// all three atoms resonant.
func matchNitroResonance(m *AnnotatedMolecule, atomID int, claimed []bool) bool {
	a := m.Atoms[atomID]
	if a.Element != N || a.Degree != 3 {
		return false
	}
	term := terminalOxygens(m, atomID)
	if len(term) != 2 {
		return false
	}
	haveDouble, haveSingle := false, false
	for _, nb := range term {
		switch nb.Order {
		case Double:
			haveDouble = true
		case Single:
			haveSingle = true
		}
	}
	if !haveDouble || !haveSingle {
		return false
	}
	ids := []int{atomID, term[0].AtomID, term[1].AtomID}
	recordResonantSystem(m, ids, claimed)
	return true
}

// matchGuanidinium recognizes a central carbon bonded to exactly three
// nitrogens, one by a double bond and two by single bonds: the
// guanidinium cation, delocalized equally across all three nitrogens.
func matchGuanidinium(m *AnnotatedMolecule, atomID int, claimed []bool) bool {
	a := m.Atoms[atomID]
	if a.Element != C || a.Degree != 3 {
		return false
	}
	nbs := m.Adjacency(atomID)
	doubleCount, singleCount := 0, 0
	ids := []int{atomID}
	for _, nb := range nbs {
		if m.Atoms[nb.AtomID].Element != N {
			return false
		}
		switch nb.Order {
		case Double:
			doubleCount++
		case Single:
			singleCount++
		}
		ids = append(ids, nb.AtomID)
	}
	if doubleCount != 1 || singleCount != 2 {
		return false
	}
	recordResonantSystem(m, ids, claimed)
	return true
}

// matchThioamideOrThiourea recognizes a carbon double-bonded to sulfur
// with at least one single-bonded nitrogen neighbor: thioamide (one
// nitrogen) or thiourea (two).
func matchThioamideOrThiourea(m *AnnotatedMolecule, atomID int, claimed []bool) bool {
	a := m.Atoms[atomID]
	if a.Element != C || a.Degree != 3 {
		return false
	}
	var sulfur *NeighborRef
	var nitrogens []NeighborRef
	for _, nb := range m.Adjacency(atomID) {
		switch {
		case m.Atoms[nb.AtomID].Element == S && nb.Order == Double:
			cp := nb
			sulfur = &cp
		case m.Atoms[nb.AtomID].Element == N && nb.Order == Single:
			nitrogens = append(nitrogens, nb)
		}
	}
	if sulfur == nil || len(nitrogens) == 0 {
		return false
	}
	ids := []int{atomID, sulfur.AtomID}
	for _, nb := range nitrogens {
		ids = append(ids, nb.AtomID)
	}
	recordResonantSystem(m, ids, claimed)
	return true
}

// matchAmideResonance recognizes a carbon double-bonded to a terminal
// oxygen with at least one single-bonded nitrogen neighbor: the amide
// group. All-neutral and non-aromatic, it would never reach is_resonant
// through formal charge or ring membership alone, so it needs its own
// template.
func matchAmideResonance(m *AnnotatedMolecule, atomID int, claimed []bool) bool {
	a := m.Atoms[atomID]
	if a.Element != C || a.Degree != 3 {
		return false
	}
	var oxygen *NeighborRef
	var nitrogens []NeighborRef
	oxygenCount := 0
	for _, nb := range m.Adjacency(atomID) {
		switch m.Atoms[nb.AtomID].Element {
		case O:
			oxygenCount++
			if nb.Order == Double && m.Atoms[nb.AtomID].Degree == 1 {
				cp := nb
				oxygen = &cp
			}
		case N:
			if nb.Order == Single {
				nitrogens = append(nitrogens, nb)
			}
		}
	}
	if oxygen == nil || oxygenCount != 1 || len(nitrogens) == 0 {
		return false
	}
	ids := []int{atomID, oxygen.AtomID}
	for _, nb := range nitrogens {
		ids = append(ids, nb.AtomID)
	}
	recordResonantSystem(m, ids, claimed)
	return true
}

// matchPhosphateResonance recognizes a central phosphorus bonded to
// terminal oxygens with at least one double and one single bond: the
// phosphate/phosphoryl group.
func matchPhosphateResonance(m *AnnotatedMolecule, atomID int, claimed []bool) bool {
	a := m.Atoms[atomID]
	if a.Element != P || a.Degree != 4 {
		return false
	}
	term := terminalOxygens(m, atomID)
	haveDouble, haveSingle := false, false
	for _, nb := range term {
		switch nb.Order {
		case Double:
			haveDouble = true
		case Single:
			haveSingle = true
		}
	}
	if !haveDouble || !haveSingle {
		return false
	}
	ids := []int{atomID}
	for _, nb := range term {
		ids = append(ids, nb.AtomID)
	}
	recordResonantSystem(m, ids, claimed)
	return true
}

// propagateConjugation is stage 2: union every pair of bonded atoms
// that each carry a p orbital, and mark every component of two or
// more IsInConjugatedSystem. It never sets IsResonant — that's stage
// 1's job alone.
func propagateConjugation(m *AnnotatedMolecule) {
	n := len(m.Atoms)
	demoted := make([]bool, n)
	for i := range m.Atoms {
		demoted[i] = isHalogenOxyanionOxygen(m, i)
	}

	qualifies := make([]bool, n)
	for i := range m.Atoms {
		if demoted[i] {
			continue
		}
		a := m.Atoms[i]
		qualifies[i] = a.IsResonant || a.IsAromatic || a.IsAntiAromatic || atomHasPOrbital(m, i)
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for _, b := range m.Bonds {
		if qualifies[b.A] && qualifies[b.B] {
			union(b.A, b.B)
		}
	}

	members := make(map[int][]int)
	for i := range m.Atoms {
		if !qualifies[i] {
			continue
		}
		members[find(i)] = append(members[find(i)], i)
	}
	for _, atoms := range members {
		if len(atoms) < 2 {
			continue
		}
		for _, atomID := range atoms {
			m.Atoms[atomID].IsInConjugatedSystem = true
		}
	}
}

// isHalogenOxyanionOxygen reports whether atomID is the anionic
// terminal oxygen of a halogen oxyanion (perchlorate and the like): a
// degree-1, formally -1 oxygen single-bonded to a halogen. Stage 2
// excludes these from conjugation entirely, since the halogen's other
// double-bonded terminal oxygens would otherwise pull this one into a
// false-positive resonance system by peripheral propagation.
func isHalogenOxyanionOxygen(m *AnnotatedMolecule, atomID int) bool {
	a := m.Atoms[atomID]
	if a.Element != O || a.Degree != 1 || a.FormalCharge != -1 {
		return false
	}
	nbs := m.Adjacency(atomID)
	if len(nbs) != 1 {
		return false
	}
	switch m.Atoms[nbs[0].AtomID].Element {
	case Cl, Br, I:
		return true
	default:
		return false
	}
}

// atomHasPOrbital reports whether atomID can participate in π
// conjugation: it carries a multiple bond, has a lone pair to donate,
// or is formally charged with an empty or filled p orbital.
func atomHasPOrbital(m *AnnotatedMolecule, atomID int) bool {
	a := m.Atoms[atomID]
	if a.FormalCharge != 0 {
		return true
	}
	if a.LonePairs >= 1 {
		return true
	}
	for _, nb := range m.Adjacency(atomID) {
		if nb.Order == Double || nb.Order == Triple {
			return true
		}
	}
	return false
}
