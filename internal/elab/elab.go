// Package elab validates a parsed Program beyond syntax: subcircuit
// references, call arity, primitive gate arity, and signal connectivity.
// It never mutates the Program and is fail-fast like the parser.
package elab

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pborges/gatenet/internal/gatenet"
)

// Check runs all semantic checks over prog and returns the first failure.
func Check(prog *gatenet.Program) error {
	if err := checkRefs(prog); err != nil {
		return err
	}
	if err := checkCycles(prog); err != nil {
		return err
	}
	if err := checkScope(prog, "top level", prog.Inputs, prog.Outputs, prog.Components); err != nil {
		return err
	}
	for _, name := range sortedNames(prog.Subcircuits) {
		sub := prog.Subcircuits[name]
		scope := fmt.Sprintf("subcircuit %s", name)
		if err := checkScope(prog, scope, sub.Inputs, sub.Outputs, sub.Components); err != nil {
			return err
		}
	}
	return nil
}

// checkRefs verifies that every subcircuit call names a defined subcircuit.
func checkRefs(prog *gatenet.Program) error {
	check := func(scope string, components []gatenet.Component) error {
		for _, c := range components {
			if c.Gate != gatenet.GateSub {
				continue
			}
			if _, ok := prog.Subcircuits[c.Subcircuit]; !ok {
				return fmt.Errorf("%s: unknown subcircuit %q", scope, c.Subcircuit)
			}
		}
		return nil
	}
	if err := check("top level", prog.Components); err != nil {
		return err
	}
	for _, name := range sortedNames(prog.Subcircuits) {
		sub := prog.Subcircuits[name]
		if err := check(fmt.Sprintf("subcircuit %s", name), sub.Components); err != nil {
			return err
		}
	}
	return nil
}

// checkCycles rejects recursive subcircuit definitions: a subcircuit whose
// body, directly or through other subcircuits, instantiates itself.
func checkCycles(prog *gatenet.Program) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(prog.Subcircuits))

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		sub, ok := prog.Subcircuits[name]
		if !ok {
			return nil // missing refs are checkRefs's problem
		}
		switch state[name] {
		case done:
			return nil
		case visiting:
			cycle := append(path, name)
			return fmt.Errorf("subcircuit reference cycle: %s", strings.Join(cycle, " -> "))
		}
		state[name] = visiting
		for _, c := range sub.Components {
			if c.Gate != gatenet.GateSub {
				continue
			}
			if err := visit(c.Subcircuit, append(path, name)); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}

	for _, name := range sortedNames(prog.Subcircuits) {
		if err := visit(name, nil); err != nil {
			return err
		}
	}
	return nil
}

// checkScope validates one component list: gate and call-site arity, then
// connectivity. A signal may be read by any component in the scope as long
// as something in the scope drives it; statement order does not matter.
func checkScope(prog *gatenet.Program, scope string, inputs, outputs []string, components []gatenet.Component) error {
	driven := make(map[string]bool)
	for _, name := range inputs {
		driven[name] = true
	}
	for _, c := range components {
		if err := checkArity(prog, scope, c); err != nil {
			return err
		}
		for _, name := range c.Outputs {
			driven[name] = true
		}
	}
	for _, c := range components {
		for _, name := range c.Inputs {
			if !driven[name] {
				return fmt.Errorf("%s: signal %q read by %s is not driven", scope, name, describe(c))
			}
		}
	}
	for _, name := range outputs {
		if !driven[name] {
			return fmt.Errorf("%s: output signal %q is not driven", scope, name)
		}
	}
	return nil
}

func checkArity(prog *gatenet.Program, scope string, c gatenet.Component) error {
	if c.Gate == gatenet.GateSub {
		sub := prog.Subcircuits[c.Subcircuit]
		if len(c.Inputs) != len(sub.Inputs) {
			return fmt.Errorf("%s: call to subcircuit %s has %d inputs, definition has %d",
				scope, c.Subcircuit, len(c.Inputs), len(sub.Inputs))
		}
		if len(c.Outputs) != len(sub.Outputs) {
			return fmt.Errorf("%s: call to subcircuit %s has %d outputs, definition has %d",
				scope, c.Subcircuit, len(c.Outputs), len(sub.Outputs))
		}
		return nil
	}
	// NOT is the only unary gate; every other primitive needs at least two
	// inputs. All primitives drive exactly one output.
	if c.Gate == gatenet.GateNot {
		if len(c.Inputs) != 1 {
			return fmt.Errorf("%s: %s has %d inputs, want 1", scope, describe(c), len(c.Inputs))
		}
	} else if len(c.Inputs) < 2 {
		return fmt.Errorf("%s: %s has %d inputs, want at least 2", scope, describe(c), len(c.Inputs))
	}
	if len(c.Outputs) != 1 {
		return fmt.Errorf("%s: %s has %d outputs, want 1", scope, describe(c), len(c.Outputs))
	}
	return nil
}

func describe(c gatenet.Component) string {
	if c.Gate == gatenet.GateSub {
		return fmt.Sprintf("subcircuit call %s", c.Subcircuit)
	}
	return fmt.Sprintf("%s gate %s", c.Gate, c.Name)
}

func sortedNames(subs map[string]*gatenet.Subcircuit) []string {
	names := make([]string, 0, len(subs))
	for name := range subs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
