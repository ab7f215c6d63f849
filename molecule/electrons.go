package molecule

// perceiveElectrons is Pass 3: populate FormalCharge and LonePairs for
// every atom. It is template-first, fallback-second: a fixed-order
// catalogue of pure predicates is tried against each unprocessed atom,
// and the first match wins, short-circuiting further templates for the
// atoms it consumes. Atoms no template claims fall back to a valence
// formula.
func perceiveElectrons(m *AnnotatedMolecule) error {
	processed := make([]bool, len(m.Atoms))

	templates := []func(m *AnnotatedMolecule, atomID int, processed []bool) bool{
		matchNitroCenter,
		matchNitrone,
		matchCarboxylate,
		matchTerminalOxyanion,
		matchAmmoniumOrIminium,
		matchPhosphonium,
		matchOxonium,
		matchEnolateOrPhenate,
	}

	for atomID := range m.Atoms {
		if processed[atomID] {
			continue
		}
		for _, tpl := range templates {
			if tpl(m, atomID, processed) {
				break
			}
		}
	}

	for atomID := range m.Atoms {
		if processed[atomID] {
			continue
		}
		if err := applyElectronFallback(m, atomID); err != nil {
			return err
		}
	}
	return nil
}

// applyElectronFallback implements the non-template path: lone_pairs
// = max(0, (valence_electrons - formal_charge - bond_order_sum) / 2),
// with formal_charge defaulting to 0 (the
// graph carries no input charge). Isolated atoms of elements lacking
// valence data default silently to (0, 0); bonded unknown elements
// fail perception.
func applyElectronFallback(m *AnnotatedMolecule, atomID int) error {
	a := &m.Atoms[atomID]
	ve := a.Element.ValenceElectrons()
	if ve == 0 {
		if a.Degree == 0 {
			a.FormalCharge = 0
			a.LonePairs = 0
			return nil
		}
		return perceptionErrorf("electrons", "atom %d (%s) has no valence data and cannot be bonded", atomID, a.Element)
	}
	bondOrderSum := m.BondOrderSum(atomID)
	v := ve - a.FormalCharge - bondOrderSum
	lonePairs := v / 2
	if lonePairs < 0 {
		lonePairs = 0
	}
	a.LonePairs = lonePairs
	return nil
}

// terminalOxygens returns the neighbor refs of atomID's degree-1
// oxygen neighbors.
func terminalOxygens(m *AnnotatedMolecule, atomID int) []NeighborRef {
	var out []NeighborRef
	for _, nb := range m.Adjacency(atomID) {
		if m.Atoms[nb.AtomID].Element == O && m.Atoms[nb.AtomID].Degree == 1 {
			out = append(out, nb)
		}
	}
	return out
}

// matchNitroCenter recognizes sp2 N bonded to exactly two terminal O
// (one double, one single) plus one other substituent: the nitro /
// nitrate pattern.
func matchNitroCenter(m *AnnotatedMolecule, atomID int, processed []bool) bool {
	a := &m.Atoms[atomID]
	if a.Element != N || a.Degree != 3 {
		return false
	}
	term := terminalOxygens(m, atomID)
	if len(term) != 2 {
		return false
	}
	var dbl, sgl *NeighborRef
	for i := range term {
		switch term[i].Order {
		case Double:
			dbl = &term[i]
		case Single:
			sgl = &term[i]
		}
	}
	if dbl == nil || sgl == nil {
		return false
	}
	a.FormalCharge = 1
	a.LonePairs = 0
	processed[atomID] = true
	setOxyanionTerminal(m, dbl.AtomID, sgl.AtomID, processed)
	return true
}

// matchNitrone recognizes a degree-3 N double-bonded to a carbon,
// single-bonded to a terminal oxygen, and single-bonded to one other
// substituent: the nitrone (R2C=N(+)(R')-O(-)) pattern. Without this
// template the nitrogen still falls through to
// matchAmmoniumOrIminium's generic bond-order-sum check and picks up
// its +1 charge, but the oxide oxygen is left unclaimed and lands in
// the generic valence fallback instead of the (-1, 3) every other
// anionic terminal oxygen template assigns.
func matchNitrone(m *AnnotatedMolecule, atomID int, processed []bool) bool {
	a := &m.Atoms[atomID]
	if a.Element != N || a.Degree != 3 {
		return false
	}
	nbs := m.Adjacency(atomID)
	var dblCarbon, termOxygen *NeighborRef
	other := 0
	for i := range nbs {
		switch {
		case nbs[i].Order == Double && m.Atoms[nbs[i].AtomID].Element == C:
			dblCarbon = &nbs[i]
		case nbs[i].Order == Single && m.Atoms[nbs[i].AtomID].Element == O && m.Atoms[nbs[i].AtomID].Degree == 1:
			termOxygen = &nbs[i]
		default:
			other++
		}
	}
	if dblCarbon == nil || termOxygen == nil || other != 1 {
		return false
	}
	a.FormalCharge = 1
	a.LonePairs = 0
	processed[atomID] = true
	setAtomElectrons(m, termOxygen.AtomID, -1, 3, processed)
	return true
}

// matchCarboxylate recognizes an sp2 carbon bonded to exactly two
// terminal O (one double, one single) plus one other substituent: the
// carboxylate pattern.
func matchCarboxylate(m *AnnotatedMolecule, atomID int, processed []bool) bool {
	a := &m.Atoms[atomID]
	if a.Element != C || a.Degree != 3 {
		return false
	}
	term := terminalOxygens(m, atomID)
	if len(term) != 2 {
		return false
	}
	var dbl, sgl *NeighborRef
	for i := range term {
		switch term[i].Order {
		case Double:
			dbl = &term[i]
		case Single:
			sgl = &term[i]
		}
	}
	if dbl == nil || sgl == nil {
		return false
	}
	a.FormalCharge = 0
	a.LonePairs = 0
	processed[atomID] = true
	setOxyanionTerminal(m, dbl.AtomID, sgl.AtomID, processed)
	return true
}

// matchTerminalOxyanion generalizes sulfonate, perchlorate-style
// halogen oxyanions, and phosphate/phosphoryl anions: a central S, P,
// or halogen bonded to one or more terminal oxygens where at least one
// is single-bonded. The central atom keeps formal charge 0 (the
// negative charge is carried entirely by the single-bonded terminal
// oxygens, matching the minimal-formal-charge resonance structure).
func matchTerminalOxyanion(m *AnnotatedMolecule, atomID int, processed []bool) bool {
	a := &m.Atoms[atomID]
	switch a.Element {
	case S, P, Cl, Br, I:
	default:
		return false
	}
	term := terminalOxygens(m, atomID)
	if len(term) == 0 {
		return false
	}
	haveSingle := false
	for _, nb := range term {
		if nb.Order == Single {
			haveSingle = true
		}
	}
	if !haveSingle {
		return false
	}
	a.FormalCharge = 0
	a.LonePairs = 0
	processed[atomID] = true
	for _, nb := range term {
		if nb.Order == Single {
			setAtomElectrons(m, nb.AtomID, -1, 3, processed)
		} else {
			setAtomElectrons(m, nb.AtomID, 0, 2, processed)
		}
	}
	return true
}

// matchAmmoniumOrIminium recognizes a degree-4 neutral-valence N
// (ammonium) or a degree-3 N with one double bond (iminium); both
// exceed nitrogen's neutral bond-order budget of 3 by exactly one.
func matchAmmoniumOrIminium(m *AnnotatedMolecule, atomID int, processed []bool) bool {
	a := &m.Atoms[atomID]
	if a.Element != N {
		return false
	}
	if a.Degree != 3 && a.Degree != 4 {
		return false
	}
	if m.BondOrderSum(atomID) != 4 {
		return false
	}
	a.FormalCharge = 1
	a.LonePairs = 0
	processed[atomID] = true
	return true
}

// matchPhosphonium recognizes a degree-4 P with all single bonds:
// phosphonium.
func matchPhosphonium(m *AnnotatedMolecule, atomID int, processed []bool) bool {
	a := &m.Atoms[atomID]
	if a.Element != P || a.Degree != 4 {
		return false
	}
	if m.BondOrderSum(atomID) != 4 {
		return false
	}
	a.FormalCharge = 1
	a.LonePairs = 0
	processed[atomID] = true
	return true
}

// matchOxonium recognizes a degree-3 O with all single bonds: onium
// (protonated ether/carbonyl).
func matchOxonium(m *AnnotatedMolecule, atomID int, processed []bool) bool {
	a := &m.Atoms[atomID]
	if a.Element != O || a.Degree != 3 {
		return false
	}
	if m.BondOrderSum(atomID) != 3 {
		return false
	}
	a.FormalCharge = 1
	a.LonePairs = 1
	processed[atomID] = true
	return true
}

// matchEnolateOrPhenate recognizes a terminal, single-bonded O whose
// carbon neighbor is itself doubly bonded elsewhere or is a ring atom
// the enolate / phenate pattern: an anionic oxygen conjugated into
// an adjacent π system.
func matchEnolateOrPhenate(m *AnnotatedMolecule, atomID int, processed []bool) bool {
	a := &m.Atoms[atomID]
	if a.Element != O || a.Degree != 1 {
		return false
	}
	nbs := m.Adjacency(atomID)
	if len(nbs) != 1 || nbs[0].Order != Single {
		return false
	}
	carbon := nbs[0].AtomID
	c := m.Atoms[carbon]
	if c.Element != C {
		return false
	}
	conjugated := c.IsInRing
	if !conjugated {
		for _, cnb := range m.Adjacency(carbon) {
			if cnb.AtomID != atomID && cnb.Order == Double {
				conjugated = true
				break
			}
		}
	}
	if !conjugated {
		return false
	}
	a.FormalCharge = -1
	a.LonePairs = 3
	processed[atomID] = true
	return true
}

func setOxyanionTerminal(m *AnnotatedMolecule, doubleO, singleO int, processed []bool) {
	setAtomElectrons(m, doubleO, 0, 2, processed)
	setAtomElectrons(m, singleO, -1, 3, processed)
}

func setAtomElectrons(m *AnnotatedMolecule, atomID int, charge, lonePairs int, processed []bool) {
	m.Atoms[atomID].FormalCharge = charge
	m.Atoms[atomID].LonePairs = lonePairs
	processed[atomID] = true
}
