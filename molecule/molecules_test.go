package molecule

// Shared test fixtures: small, hand-built graphs exercising one
// recognizable functional group or ring system apiece.

func mustBond(t interface{ Fatalf(string, ...any) }, g *MolecularGraph, a, b int, order BondOrder) {
	if _, err := g.AddBond(a, b, order); err != nil {
		t.Fatalf("AddBond(%d, %d, %v): %v", a, b, order, err)
	}
}

// buildBenzene returns a 6-carbon aromatic ring, each carbon bearing
// one exocyclic hydrogen.
func buildBenzene(t interface{ Fatalf(string, ...any) }) *MolecularGraph {
	g := NewMolecularGraph()
	c := make([]int, 6)
	for i := range c {
		c[i] = g.AddAtom(C)
	}
	for i := 0; i < 6; i++ {
		mustBond(t, g, c[i], c[(i+1)%6], Aromatic)
	}
	for i := 0; i < 6; i++ {
		h := g.AddAtom(H)
		mustBond(t, g, c[i], h, Single)
	}
	return g
}

// buildPyridine returns a 6-membered aromatic ring with one nitrogen
// (degree 2, pyridine-type) and five carbons each bearing a hydrogen.
func buildPyridine(t interface{ Fatalf(string, ...any) }) *MolecularGraph {
	g := NewMolecularGraph()
	ring := make([]int, 6)
	ring[0] = g.AddAtom(N)
	for i := 1; i < 6; i++ {
		ring[i] = g.AddAtom(C)
	}
	for i := 0; i < 6; i++ {
		mustBond(t, g, ring[i], ring[(i+1)%6], Aromatic)
	}
	for i := 1; i < 6; i++ {
		h := g.AddAtom(H)
		mustBond(t, g, ring[i], h, Single)
	}
	return g
}

// buildFuran returns a 5-membered aromatic ring: one oxygen (degree 2,
// lone-pair donor) and four carbons each bearing a hydrogen.
func buildFuran(t interface{ Fatalf(string, ...any) }) *MolecularGraph {
	g := NewMolecularGraph()
	ring := make([]int, 5)
	ring[0] = g.AddAtom(O)
	for i := 1; i < 5; i++ {
		ring[i] = g.AddAtom(C)
	}
	for i := 0; i < 5; i++ {
		mustBond(t, g, ring[i], ring[(i+1)%5], Aromatic)
	}
	for i := 1; i < 5; i++ {
		h := g.AddAtom(H)
		mustBond(t, g, ring[i], h, Single)
	}
	return g
}

// buildCyclohexane returns a 6-membered saturated carbocycle: every
// ring bond is Single and every carbon carries two hydrogens.
func buildCyclohexane(t interface{ Fatalf(string, ...any) }) *MolecularGraph {
	g := NewMolecularGraph()
	c := make([]int, 6)
	for i := range c {
		c[i] = g.AddAtom(C)
	}
	for i := 0; i < 6; i++ {
		mustBond(t, g, c[i], c[(i+1)%6], Single)
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 2; j++ {
			h := g.AddAtom(H)
			mustBond(t, g, c[i], h, Single)
		}
	}
	return g
}

// buildAcetate returns the acetate anion: a methyl carbon bonded to a
// carboxylate carbon, which in turn carries one double-bonded and one
// single-bonded terminal oxygen.
func buildAcetate(t interface{ Fatalf(string, ...any) }) (g *MolecularGraph, carboxylC, doubleO, singleO int) {
	g = NewMolecularGraph()
	methylC := g.AddAtom(C)
	carboxylC = g.AddAtom(C)
	doubleO = g.AddAtom(O)
	singleO = g.AddAtom(O)
	mustBond(t, g, methylC, carboxylC, Single)
	mustBond(t, g, carboxylC, doubleO, Double)
	mustBond(t, g, carboxylC, singleO, Single)
	for i := 0; i < 3; i++ {
		h := g.AddAtom(H)
		mustBond(t, g, methylC, h, Single)
	}
	return g, carboxylC, doubleO, singleO
}

// buildNitromethane returns nitromethane's nitro center: a methyl
// carbon bonded to a nitrogen that carries one double-bonded and one
// single-bonded terminal oxygen.
func buildNitromethane(t interface{ Fatalf(string, ...any) }) (g *MolecularGraph, nitroN, doubleO, singleO int) {
	g = NewMolecularGraph()
	methylC := g.AddAtom(C)
	nitroN = g.AddAtom(N)
	doubleO = g.AddAtom(O)
	singleO = g.AddAtom(O)
	mustBond(t, g, methylC, nitroN, Single)
	mustBond(t, g, nitroN, doubleO, Double)
	mustBond(t, g, nitroN, singleO, Single)
	for i := 0; i < 3; i++ {
		h := g.AddAtom(H)
		mustBond(t, g, methylC, h, Single)
	}
	return g, nitroN, doubleO, singleO
}

// buildAmmonium returns a degree-4 nitrogen bonded to four hydrogens.
func buildAmmonium(t interface{ Fatalf(string, ...any) }) (g *MolecularGraph, n int) {
	g = NewMolecularGraph()
	n = g.AddAtom(N)
	for i := 0; i < 4; i++ {
		h := g.AddAtom(H)
		mustBond(t, g, n, h, Single)
	}
	return g, n
}

// buildEnolate returns the bare enolate skeleton O(-)-C=C, with no
// hydrogens attached.
func buildEnolate(t interface{ Fatalf(string, ...any) }) (g *MolecularGraph, o, c1, c2 int) {
	g = NewMolecularGraph()
	o = g.AddAtom(O)
	c1 = g.AddAtom(C)
	c2 = g.AddAtom(C)
	mustBond(t, g, o, c1, Single)
	mustBond(t, g, c1, c2, Double)
	return g, o, c1, c2
}

// buildPhenolate returns benzene with one ring carbon carrying an
// exocyclic single-bonded oxygen (the phenate anion).
func buildPhenolate(t interface{ Fatalf(string, ...any) }) (g *MolecularGraph, o int) {
	g = NewMolecularGraph()
	c := make([]int, 6)
	for i := range c {
		c[i] = g.AddAtom(C)
	}
	for i := 0; i < 6; i++ {
		mustBond(t, g, c[i], c[(i+1)%6], Aromatic)
	}
	for i := 1; i < 6; i++ {
		h := g.AddAtom(H)
		mustBond(t, g, c[i], h, Single)
	}
	o = g.AddAtom(O)
	mustBond(t, g, c[0], o, Single)
	return g, o
}

// buildAcetamide returns CH3-C(=O)-NH2: a methyl carbon, a carbonyl
// carbon double-bonded to oxygen and single-bonded to an amide
// nitrogen carrying two hydrogens.
func buildAcetamide(t interface{ Fatalf(string, ...any) }) (g *MolecularGraph, carbonylC, carbonylO, amideN int) {
	g = NewMolecularGraph()
	methylC := g.AddAtom(C)
	carbonylC = g.AddAtom(C)
	carbonylO = g.AddAtom(O)
	amideN = g.AddAtom(N)
	mustBond(t, g, methylC, carbonylC, Single)
	mustBond(t, g, carbonylC, carbonylO, Double)
	mustBond(t, g, carbonylC, amideN, Single)
	for i := 0; i < 3; i++ {
		h := g.AddAtom(H)
		mustBond(t, g, methylC, h, Single)
	}
	for i := 0; i < 2; i++ {
		h := g.AddAtom(H)
		mustBond(t, g, amideN, h, Single)
	}
	return g, carbonylC, carbonylO, amideN
}

// buildPerchlorate returns the perchlorate anion: a central chlorine
// bonded to three double-bonded terminal oxygens and one
// single-bonded (anionic) terminal oxygen.
func buildPerchlorate(t interface{ Fatalf(string, ...any) }) (g *MolecularGraph, cl, anionicO int) {
	g = NewMolecularGraph()
	cl = g.AddAtom(Cl)
	o1 := g.AddAtom(O)
	o2 := g.AddAtom(O)
	o3 := g.AddAtom(O)
	anionicO = g.AddAtom(O)
	mustBond(t, g, cl, o1, Double)
	mustBond(t, g, cl, o2, Double)
	mustBond(t, g, cl, o3, Double)
	mustBond(t, g, cl, anionicO, Single)
	return g, cl, anionicO
}

// buildNaphthalene returns the fused bicyclic aromatic system: two
// 6-membered rings sharing one edge (atoms 4 and 9), every peripheral
// carbon bearing one hydrogen.
func buildNaphthalene(t interface{ Fatalf(string, ...any) }) *MolecularGraph {
	g := NewMolecularGraph()
	c := make([]int, 10)
	for i := range c {
		c[i] = g.AddAtom(C)
	}
	bonds := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 9}, {9, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 9},
	}
	for _, b := range bonds {
		mustBond(t, g, c[b[0]], c[b[1]], Aromatic)
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6, 7, 8} {
		h := g.AddAtom(H)
		mustBond(t, g, c[i], h, Single)
	}
	return g
}

// buildHypervalentCarbon returns a carbon bonded to five hydrogens, a
// steric number of 5 with no valid VSEPR geometry.
func buildHypervalentCarbon(t interface{ Fatalf(string, ...any) }) *MolecularGraph {
	g := NewMolecularGraph()
	c := g.AddAtom(C)
	for i := 0; i < 5; i++ {
		h := g.AddAtom(H)
		mustBond(t, g, c, h, Single)
	}
	return g
}

// buildEthane returns H3C-CH3: two sp3 carbons, no charges, no rings.
func buildEthane(t interface{ Fatalf(string, ...any) }) *MolecularGraph {
	g := NewMolecularGraph()
	c1 := g.AddAtom(C)
	c2 := g.AddAtom(C)
	mustBond(t, g, c1, c2, Single)
	for _, c := range []int{c1, c2} {
		for i := 0; i < 3; i++ {
			h := g.AddAtom(H)
			mustBond(t, g, c, h, Single)
		}
	}
	return g
}
