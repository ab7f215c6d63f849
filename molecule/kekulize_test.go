package molecule

import "testing"

func countDoubles(m *AnnotatedMolecule, bondIDs []int) int {
	n := 0
	for _, id := range bondIDs {
		if m.Bonds[id].Order == Double {
			n++
		}
	}
	return n
}

func TestPerceiveKekulizeBenzeneAlternates(t *testing.T) {
	g := buildBenzene(t)
	m, err := Perceive(g)
	if err != nil {
		t.Fatalf("Perceive: %v", err)
	}
	ring := []int{0, 1, 2, 3, 4, 5}
	if got := countDoubles(m, ring); got != 3 {
		t.Fatalf("benzene ring double-bond count = %d, want 3", got)
	}
	for _, id := range ring {
		if m.Bonds[id].Order == Aromatic {
			t.Fatalf("bond %d still Aromatic after Kekulé expansion", id)
		}
	}
}

func TestPerceiveKekulizeFuranOxygenStaysSingle(t *testing.T) {
	g := buildFuran(t)
	m, err := Perceive(g)
	if err != nil {
		t.Fatalf("Perceive: %v", err)
	}
	// ring bonds: id0 (O-C1) and id4 (C4-O) touch the oxygen.
	if m.Bonds[0].Order != Single || m.Bonds[4].Order != Single {
		t.Fatalf("furan oxygen ring bonds = (%v, %v), want (single, single)", m.Bonds[0].Order, m.Bonds[4].Order)
	}
	if got := countDoubles(m, []int{0, 1, 2, 3, 4}); got != 2 {
		t.Fatalf("furan ring double-bond count = %d, want 2", got)
	}
}

func TestPerceiveKekulizePyridineNitrogenGetsOneDouble(t *testing.T) {
	g := buildPyridine(t)
	m, err := Perceive(g)
	if err != nil {
		t.Fatalf("Perceive: %v", err)
	}
	// ring bonds: id0 (N-C1) and id5 (C5-N) touch the nitrogen.
	doubles := countDoubles(m, []int{0, 5})
	if doubles != 1 {
		t.Fatalf("pyridine nitrogen incident double-bond count = %d, want 1", doubles)
	}
	if got := countDoubles(m, []int{0, 1, 2, 3, 4, 5}); got != 3 {
		t.Fatalf("pyridine ring double-bond count = %d, want 3", got)
	}
}
