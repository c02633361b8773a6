package gatenet

import "fmt"

// Program is the parse result: the top-level interface and netlist plus the
// table of named subcircuit definitions. It is immutable once Parse returns.
type Program struct {
	Subcircuits map[string]*Subcircuit
	Inputs      []string
	Outputs     []string
	Components  []Component
}

// Subcircuit is a named, reusable circuit definition. Its body may
// reference other subcircuits by name; references are not resolved or
// checked here.
type Subcircuit struct {
	Name       string
	Inputs     []string
	Outputs    []string
	Components []Component
}

// GateType classifies a component as one of the primitive gates or a
// subcircuit call (GateSub, with the referenced definition's name held in
// Component.Subcircuit).
type GateType int

const (
	GateAnd GateType = iota
	GateOr
	GateNot
	GateNand
	GateNor
	GateXor
	GateXnor
	GateSub
)

var gateNames = [...]string{
	GateAnd:  "AND",
	GateOr:   "OR",
	GateNot:  "NOT",
	GateNand: "NAND",
	GateNor:  "NOR",
	GateXor:  "XOR",
	GateXnor: "XNOR",
	GateSub:  "SUBCIRCUIT",
}

func (g GateType) String() string {
	if int(g) >= 0 && int(g) < len(gateNames) {
		return gateNames[g]
	}
	return fmt.Sprintf("GateType(%d)", int(g))
}

// Component is one instantiation statement: a primitive gate or a
// subcircuit call, binding named input signals to named output signals.
// Name is empty for subcircuit calls; the grammar carries no instance name
// for those, and downstream stages rely on that to tell the two apart.
type Component struct {
	Gate       GateType
	Subcircuit string // referenced definition name when Gate == GateSub
	Name       string // instance identifier for primitive gates
	Inputs     []string
	Outputs    []string
}
