package rules

import (
	"testing"

	"github.com/cx-luo/dreiding/molecule"
)

func TestParseRulesBasic(t *testing.T) {
	doc := `
[[rule]]
name = "carbon-3"
priority = 300
type = "C_3"
[rule.conditions]
element = "C"
hybridization = "SP3"
`
	parsed, err := ParseRules(doc)
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("len(parsed) = %d, want 1", len(parsed))
	}
	r := parsed[0]
	if r.Name != "carbon-3" || r.Priority != 300 || r.AssignedType != "C_3" {
		t.Fatalf("parsed rule = %+v, unexpected fields", r)
	}
	if r.Conditions.Element == nil || *r.Conditions.Element != molecule.C {
		t.Fatalf("Conditions.Element = %v, want C", r.Conditions.Element)
	}
	if r.Conditions.Hybridization == nil || *r.Conditions.Hybridization != molecule.SP3 {
		t.Fatalf("Conditions.Hybridization = %v, want SP3", r.Conditions.Hybridization)
	}
}

func TestParseRulesNeighborTables(t *testing.T) {
	doc := `
[[rule]]
name = "hb-donor"
priority = 10
type = "H_HB"
[rule.conditions]
element = "H"
[rule.conditions.neighbor_elements]
O = 1
[rule.conditions.neighbor_types]
O_3 = 1
`
	parsed, err := ParseRules(doc)
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	c := parsed[0].Conditions
	if c.NeighborElements[molecule.O] != 1 {
		t.Fatalf("NeighborElements[O] = %d, want 1", c.NeighborElements[molecule.O])
	}
	if c.NeighborTypes["O_3"] != 1 {
		t.Fatalf(`NeighborTypes["O_3"] = %d, want 1`, c.NeighborTypes["O_3"])
	}
}

func TestParseRulesRejectsUnknownKey(t *testing.T) {
	doc := `
[[rule]]
name = "bad"
priority = 1
type = "X"
[rule.conditions]
not_a_real_condition = true
`
	if _, err := ParseRules(doc); err == nil {
		t.Fatal("expected error for unknown condition key")
	}
}

func TestParseRulesRejectsInvalidHybridization(t *testing.T) {
	doc := `
[[rule]]
name = "bad"
priority = 1
type = "X"
[rule.conditions]
hybridization = "NotAHybridization"
`
	if _, err := ParseRules(doc); err == nil {
		t.Fatal("expected error for invalid hybridization")
	}
}

func TestParseRulesRejectsUnknownElement(t *testing.T) {
	doc := `
[[rule]]
name = "bad"
priority = 1
type = "X"
[rule.conditions]
element = "Xx"
`
	if _, err := ParseRules(doc); err == nil {
		t.Fatal("expected error for unknown element symbol")
	}
}

func TestParseRulesMalformedTOML(t *testing.T) {
	if _, err := ParseRules("this is not [ valid toml"); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestGetDefaultRulesParsesAndCaches(t *testing.T) {
	first, err := GetDefaultRules()
	if err != nil {
		t.Fatalf("GetDefaultRules: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("expected a non-empty default ruleset")
	}
	second, err := GetDefaultRules()
	if err != nil {
		t.Fatalf("GetDefaultRules (second call): %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("cached call returned a different rule count: %d vs %d", len(first), len(second))
	}
}

func TestDefaultRulesContainBridgingHydrogen(t *testing.T) {
	all, err := GetDefaultRules()
	if err != nil {
		t.Fatalf("GetDefaultRules: %v", err)
	}
	found := false
	for _, r := range all {
		if r.AssignedType == "H_b" && r.Priority == 500 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an H_b rule at priority 500")
	}
}
