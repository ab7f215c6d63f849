// Package molecule provides the chemical connectivity graph and the
// six-pass perception pipeline that lifts it into an annotated,
// force-field-ready workspace.
package molecule

import "fmt"

// Element is a closed enumeration of chemical elements recognized by
// the perception pipeline.
type Element int

// Supported elements. The set favors main-group chemistry relevant to
// DREIDING typing; transition metals are represented collectively as
// non-hybridizing "chemistry-lite" metal ions.
const (
	ElementUnknown Element = iota
	H
	He
	Li
	Be
	B
	C
	N
	O
	F
	Ne
	Na
	Mg
	Al
	Si
	P
	S
	Cl
	Ar
	K
	Ca
	Fe
	Zn
	Br
	I
)

type elementInfo struct {
	symbol          string
	atomicNumber    int
	valenceElectrons int // 0 = no valence data (transition metals etc.)
	hybridizes      bool
}

// elementData is indexed by Element; index 0 (ElementUnknown) is unused.
var elementData = [...]elementInfo{
	ElementUnknown: {"", 0, 0, false},
	H:               {"H", 1, 1, false},
	He:              {"He", 2, 2, false},
	Li:              {"Li", 3, 1, false},
	Be:              {"Be", 4, 2, false},
	B:               {"B", 5, 3, true},
	C:               {"C", 6, 4, true},
	N:               {"N", 7, 5, true},
	O:               {"O", 8, 6, true},
	F:               {"F", 9, 7, false},
	Ne:              {"Ne", 10, 8, false},
	Na:              {"Na", 11, 1, false},
	Mg:              {"Mg", 12, 2, false},
	Al:              {"Al", 13, 3, true},
	Si:              {"Si", 14, 4, true},
	P:               {"P", 15, 5, true},
	S:               {"S", 16, 6, true},
	Cl:              {"Cl", 17, 7, false},
	Ar:              {"Ar", 18, 8, false},
	K:               {"K", 19, 1, false},
	Ca:              {"Ca", 20, 2, false},
	Fe:              {"Fe", 26, 0, false},
	Zn:              {"Zn", 30, 0, false},
	Br:              {"Br", 35, 7, false},
	I:               {"I", 53, 7, false},
}

var symbolToElement = func() map[string]Element {
	m := make(map[string]Element, len(elementData))
	for e, info := range elementData {
		if info.symbol != "" {
			m[info.symbol] = Element(e)
		}
	}
	return m
}()

// ElementFromSymbol resolves an element from its periodic-table
// symbol, e.g. "C" -> C.
func ElementFromSymbol(symbol string) (Element, error) {
	e, ok := symbolToElement[symbol]
	if !ok {
		return ElementUnknown, fmt.Errorf("molecule: unknown element symbol %q", symbol)
	}
	return e, nil
}

// Symbol returns the periodic-table symbol for the element.
func (e Element) Symbol() string {
	if int(e) < 0 || int(e) >= len(elementData) {
		return ""
	}
	return elementData[e].symbol
}

// AtomicNumber returns the element's atomic number.
func (e Element) AtomicNumber() int {
	if int(e) < 0 || int(e) >= len(elementData) {
		return 0
	}
	return elementData[e].atomicNumber
}

// ValenceElectrons returns the element's default valence-electron
// count, or 0 if the element carries no valence data (most transition
// metals).
func (e Element) ValenceElectrons() int {
	if int(e) < 0 || int(e) >= len(elementData) {
		return 0
	}
	return elementData[e].valenceElectrons
}

// Hybridizes reports whether the element participates in
// hybridization perception. Alkali/alkaline-earth metals, halogens,
// noble gases, and the transition metals carried here never
// hybridize.
func (e Element) Hybridizes() bool {
	if int(e) < 0 || int(e) >= len(elementData) {
		return false
	}
	return elementData[e].hybridizes
}

// String implements fmt.Stringer, returning the element's symbol.
func (e Element) String() string {
	if s := e.Symbol(); s != "" {
		return s
	}
	return fmt.Sprintf("Element(%d)", int(e))
}
