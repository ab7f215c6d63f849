package rules

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/cx-luo/dreiding/molecule"
)

// RuleParseError reports a malformed rule document: an unknown
// condition key, an unparsable TOML document, or an invalid
// hybridization string.
type RuleParseError struct {
	LineOrKey string
	Reason    string
}

func (e *RuleParseError) Error() string {
	return fmt.Sprintf("rules: parse error at %q: %s", e.LineOrKey, e.Reason)
}

// rawDocument mirrors the TOML shape: a sequence of [[rule]] tables.
type rawDocument struct {
	Rule []rawRule `toml:"rule"`
}

type rawRule struct {
	Name       string        `toml:"name"`
	Priority   int           `toml:"priority"`
	Type       string        `toml:"type"`
	Conditions rawConditions `toml:"conditions"`
}

type rawConditions struct {
	Element          *string `toml:"element"`
	FormalCharge     *int    `toml:"formal_charge"`
	Degree           *int    `toml:"degree"`
	LonePairs        *int    `toml:"lone_pairs"`
	StericNumber     *int    `toml:"steric_number"`
	Hybridization    *string `toml:"hybridization"`
	IsInRing         *bool   `toml:"is_in_ring"`
	IsAromatic       *bool   `toml:"is_aromatic"`
	IsAntiAromatic   *bool   `toml:"is_anti_aromatic"`
	IsResonant       *bool   `toml:"is_resonant"`
	SmallestRingSize *int    `toml:"smallest_ring_size"`

	NeighborElements map[string]int `toml:"neighbor_elements"`
	NeighborTypes    map[string]int `toml:"neighbor_types"`
}

// ParseRules parses a TOML-shaped rule document into a sequence of
// Rule. Unknown condition keys and invalid
// hybridization strings are parse errors; rule order in the document
// carries no meaning.
func ParseRules(document string) ([]Rule, error) {
	var raw rawDocument
	meta, err := toml.Decode(document, &raw)
	if err != nil {
		return nil, &RuleParseError{LineOrKey: "<document>", Reason: err.Error()}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, &RuleParseError{LineOrKey: undecoded[0].String(), Reason: "unrecognized key"}
	}

	rules := make([]Rule, 0, len(raw.Rule))
	for i, rr := range raw.Rule {
		conditions, err := convertConditions(rr.Conditions)
		if err != nil {
			if rpe, ok := err.(*RuleParseError); ok && rpe.LineOrKey == "" {
				rpe.LineOrKey = fmt.Sprintf("rule[%d].conditions", i)
			}
			return nil, err
		}
		rules = append(rules, Rule{
			Name:         rr.Name,
			Priority:     rr.Priority,
			AssignedType: rr.Type,
			Conditions:   conditions,
		})
	}
	return rules, nil
}

func convertConditions(rc rawConditions) (Conditions, error) {
	c := Conditions{}

	if rc.Element != nil {
		e, err := molecule.ElementFromSymbol(*rc.Element)
		if err != nil {
			return Conditions{}, &RuleParseError{Reason: err.Error()}
		}
		c.Element = &e
	}
	c.FormalCharge = rc.FormalCharge
	c.Degree = rc.Degree
	c.LonePairs = rc.LonePairs
	c.StericNumber = rc.StericNumber
	c.IsInRing = rc.IsInRing
	c.IsAromatic = rc.IsAromatic
	c.IsAntiAromatic = rc.IsAntiAromatic
	c.IsResonant = rc.IsResonant
	c.SmallestRingSize = rc.SmallestRingSize

	if rc.Hybridization != nil {
		h, err := hybridizationFromString(*rc.Hybridization)
		if err != nil {
			return Conditions{}, &RuleParseError{Reason: err.Error()}
		}
		c.Hybridization = &h
	}

	if len(rc.NeighborElements) > 0 {
		c.NeighborElements = make(map[molecule.Element]int, len(rc.NeighborElements))
		for symbol, count := range rc.NeighborElements {
			e, err := molecule.ElementFromSymbol(symbol)
			if err != nil {
				return Conditions{}, &RuleParseError{Reason: err.Error()}
			}
			c.NeighborElements[e] = count
		}
	}
	if len(rc.NeighborTypes) > 0 {
		c.NeighborTypes = make(map[string]int, len(rc.NeighborTypes))
		for t, count := range rc.NeighborTypes {
			c.NeighborTypes[t] = count
		}
	}
	return c, nil
}

func hybridizationFromString(s string) (molecule.Hybridization, error) {
	switch s {
	case "SP":
		return molecule.SP, nil
	case "SP2":
		return molecule.SP2, nil
	case "SP3":
		return molecule.SP3, nil
	case "Resonant":
		return molecule.Resonant, nil
	case "None":
		return molecule.HybridizationNone, nil
	default:
		return molecule.HybridizationNone, fmt.Errorf("rules: invalid hybridization %q", s)
	}
}
