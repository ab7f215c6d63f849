package molecule

import "fmt"

// PerceptionError reports a domain violation raised by one of the six
// perception passes. Stage identifies which pass failed so a caller
// can locate it without inspecting internals.
type PerceptionError struct {
	Stage  string
	Detail string
}

func (e *PerceptionError) Error() string {
	return fmt.Sprintf("molecule: perception failed at stage %q: %s", e.Stage, e.Detail)
}

func perceptionErrorf(stage, format string, args ...any) error {
	return &PerceptionError{Stage: stage, Detail: fmt.Sprintf(format, args...)}
}

// Perceive runs the six-pass perception pipeline over g and returns
// the resulting AnnotatedMolecule, or a *PerceptionError naming the
// stage and offending atoms. Passes run in strict order; each depends
// on the invariants its predecessors established.
func Perceive(g *MolecularGraph) (*AnnotatedMolecule, error) {
	m := newAnnotatedMolecule(g)

	if err := perceiveRings(m); err != nil {
		return nil, err
	}
	if err := perceiveKekulize(m); err != nil {
		return nil, err
	}
	if err := perceiveElectrons(m); err != nil {
		return nil, err
	}
	if err := perceiveAromaticity(m); err != nil {
		return nil, err
	}
	if err := perceiveResonance(m); err != nil {
		return nil, err
	}
	if err := perceiveHybridization(m); err != nil {
		return nil, err
	}

	return m, nil
}

// newAnnotatedMolecule copies g into a fresh workspace: atoms carry
// their element and degree, bonds carry their input order verbatim
// (Kekulé expansion rewrites them in Pass 2), and the adjacency list
// is built once up front.
func newAnnotatedMolecule(g *MolecularGraph) *AnnotatedMolecule {
	m := &AnnotatedMolecule{
		Atoms: make([]AnnotatedAtom, g.AtomCount()),
		Bonds: make([]AnnotatedBond, g.BondCount()),
	}
	for _, a := range g.Atoms() {
		m.Atoms[a.ID] = AnnotatedAtom{ID: a.ID, Element: a.Element}
	}
	for _, b := range g.Bonds() {
		m.Bonds[b.ID] = AnnotatedBond{ID: b.ID, A: b.A, B: b.B, Order: b.Order}
	}
	m.rebuildAdjacency()
	for i := range m.Atoms {
		m.Atoms[i].Degree = len(m.adjacency[i])
	}
	return m
}
