package rules

import (
	_ "embed"
	"sync"
)

//go:embed default_rules.toml
var defaultRuleDocument string

var (
	defaultRulesOnce sync.Once
	defaultRules     []Rule
	defaultRulesErr  error
)

// GetDefaultRules lazily parses the bundled default rule document
// exactly once per process and returns the cached result thereafter
// Safe for concurrent use: the first
// caller to reach the once.Do pays the parse cost, every later caller
// reads the already-built slice.
func GetDefaultRules() ([]Rule, error) {
	defaultRulesOnce.Do(func() {
		defaultRules, defaultRulesErr = ParseRules(defaultRuleDocument)
	})
	return defaultRules, defaultRulesErr
}
