// Package dreiding converts a minimal chemical connectivity graph into
// a force-field-ready DREIDING topology: six-pass perception infers
// rings, Kekulé bond orders, formal charges, aromaticity, resonance,
// and hybridization; a priority-ordered rule engine assigns atom
// types; a canonical builder emits the deduplicated bonded terms.
package dreiding

import (
	"fmt"

	"github.com/cx-luo/dreiding/molecule"
	"github.com/cx-luo/dreiding/rules"
	"github.com/cx-luo/dreiding/topology"
	"github.com/cx-luo/dreiding/typing"
)

// TyperError is the unified sum type wrapping every stage's failure
// mode, so a caller can handle one error type regardless of which
// phase raised it.
type TyperError struct {
	Stage string
	Err   error
}

func (e *TyperError) Error() string {
	return fmt.Sprintf("dreiding: %s: %v", e.Stage, e.Err)
}

func (e *TyperError) Unwrap() error { return e.Err }

// AssignTopology runs the full pipeline using the bundled default
// ruleset.
func AssignTopology(g *molecule.MolecularGraph) (topology.MolecularTopology, error) {
	defaultRules, err := rules.GetDefaultRules()
	if err != nil {
		return topology.MolecularTopology{}, &TyperError{Stage: "rules", Err: err}
	}
	return AssignTopologyWithRules(g, defaultRules)
}

// AssignTopologyWithRules runs perceive -> assign_types -> build_topology
// over g using ruleSet, wrapping any stage failure in a *TyperError.
func AssignTopologyWithRules(g *molecule.MolecularGraph, ruleSet []rules.Rule) (topology.MolecularTopology, error) {
	annotated, err := molecule.Perceive(g)
	if err != nil {
		return topology.MolecularTopology{}, &TyperError{Stage: "perception", Err: err}
	}

	atomTypes, err := typing.AssignTypes(annotated, ruleSet)
	if err != nil {
		return topology.MolecularTopology{}, &TyperError{Stage: "typing", Err: err}
	}

	return topology.BuildTopology(annotated, atomTypes), nil
}
