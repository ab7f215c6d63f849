package molecule

// perceiveHybridization is Pass 6: assign each atom's steric number
// and VSEPR hybridization class, the final step of the perception
// pipeline.
//
// Steric number is sigma-bond count (Degree) plus donor lone pairs.
// Elements that never hybridize (hydrogen, halogens, alkali/alkaline-
// earth metals, the carried transition metals) get steric_number 0
// and HybridizationNone outright. A steric number
// above 4 has no VSEPR geometry this model supports and fails
// perception. An atom Pass 5 flagged IsInConjugatedSystem (and not
// anti-aromatic, with a steric number that still leaves room for a p
// orbital) is assigned Resonant instead of the steric-number class:
// its orbital picture is the delocalized hybrid, not a single
// discrete geometry. An aromatic atom that doesn't meet that gate
// falls back to ordinary trigonal-planar SP2.
func perceiveHybridization(m *AnnotatedMolecule) error {
	for i := range m.Atoms {
		a := &m.Atoms[i]
		if !a.Element.Hybridizes() {
			a.StericNumber = 0
			a.Hybridization = HybridizationNone
			continue
		}

		sn := a.Degree + a.LonePairs
		if sn > 4 {
			return perceptionErrorf("hybridization", "atom %d (%s) has steric number %d, exceeding the VSEPR maximum of 4", i, a.Element, sn)
		}
		a.StericNumber = sn

		switch {
		case a.IsInConjugatedSystem && !a.IsAntiAromatic && (sn <= 3 || (sn == 4 && a.LonePairs >= 1)):
			// A lone pair delocalized into a conjugated π system no
			// longer occupies its own hybrid orbital: a formal steric
			// number of 4 collapses to the trigonal-planar 3, e.g. a
			// carboxylate oxygen.
			if sn == 4 {
				a.StericNumber = 3
			}
			a.Hybridization = Resonant
		case a.IsAromatic:
			a.StericNumber = 3
			a.Hybridization = SP2
		case sn <= 1:
			a.Hybridization = HybridizationNone
		case sn == 2:
			a.Hybridization = SP
		case sn == 3:
			a.Hybridization = SP2
		default:
			a.Hybridization = SP3
		}
	}
	return nil
}
