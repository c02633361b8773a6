package elab

import (
	"strings"
	"testing"

	"github.com/pborges/gatenet/internal/gatenet"
)

func check(t *testing.T, src string) error {
	t.Helper()
	prog, err := gatenet.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return Check(prog)
}

func TestCheckValidProgram(t *testing.T) {
	src := "SUBCIRCUIT Half\nINPUTS x, y\nOUTPUTS s, c\nXOR x1 IN(x, y) OUT(s)\nAND a1 IN(x, y) OUT(c)\nEND\n" +
		"INPUTS a, b, cin\nOUTPUTS sum, cout\n" +
		"Half IN(a, b) OUT(s1, c1)\n" +
		"Half IN(s1, cin) OUT(sum, c2)\n" +
		"OR o1 IN(c1, c2) OUT(cout)\n"
	if err := check(t, src); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestCheckComponentOrderIrrelevant(t *testing.T) {
	// o1 reads t1 before the gate driving t1 appears; connectivity is
	// order-independent.
	src := "INPUTS a, b\nOUTPUTS y\nOR o1 IN(t1, a) OUT(y)\nAND a1 IN(a, b) OUT(t1)\n"
	if err := check(t, src); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func errContains(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("error %q does not contain %q", err, want)
	}
}

func TestCheckUnknownSubcircuit(t *testing.T) {
	err := check(t, "INPUTS a\nOUTPUTS b\nFoo IN(a) OUT(b)\n")
	errContains(t, err, "unknown subcircuit")
}

func TestCheckCallArityMismatch(t *testing.T) {
	src := "SUBCIRCUIT Inv\nINPUTS x\nOUTPUTS y\nNOT n IN(x) OUT(y)\nEND\n" +
		"INPUTS a, b\nOUTPUTS c\nInv IN(a, b) OUT(c)\n"
	errContains(t, check(t, src), "2 inputs, definition has 1")
}

func TestCheckNotGateArity(t *testing.T) {
	err := check(t, "INPUTS a, b\nOUTPUTS c\nNOT n IN(a, b) OUT(c)\n")
	errContains(t, err, "want 1")
}

func TestCheckBinaryGateArity(t *testing.T) {
	err := check(t, "INPUTS a\nOUTPUTS c\nAND g IN(a) OUT(c)\n")
	errContains(t, err, "at least 2")
}

func TestCheckPrimitiveSingleOutput(t *testing.T) {
	err := check(t, "INPUTS a, b\nOUTPUTS c, d\nAND g IN(a, b) OUT(c, d)\n")
	errContains(t, err, "outputs, want 1")
}

func TestCheckUndrivenSignal(t *testing.T) {
	err := check(t, "INPUTS a\nOUTPUTS b\nAND g IN(a, ghost) OUT(b)\n")
	errContains(t, err, `"ghost"`)
}

func TestCheckUndrivenOutput(t *testing.T) {
	err := check(t, "INPUTS a, b\nOUTPUTS c, d\nAND g IN(a, b) OUT(c)\n")
	errContains(t, err, `output signal "d"`)
}

func TestCheckSubcircuitScopeIsolated(t *testing.T) {
	// A subcircuit body cannot read top-level signals.
	src := "SUBCIRCUIT S\nINPUTS x\nOUTPUTS y\nAND g IN(x, a) OUT(y)\nEND\n" +
		"INPUTS a, b\nOUTPUTS c\nS IN(a) OUT(c)\n"
	errContains(t, check(t, src), "subcircuit S")
}

func TestCheckReferenceCycle(t *testing.T) {
	src := "SUBCIRCUIT A\nINPUTS x\nOUTPUTS y\nB IN(x) OUT(y)\nEND\n" +
		"SUBCIRCUIT B\nINPUTS x\nOUTPUTS y\nA IN(x) OUT(y)\nEND\n" +
		"INPUTS a\nOUTPUTS b\nA IN(a) OUT(b)\n"
	errContains(t, check(t, src), "cycle")
}

func TestCheckSelfReferenceCycle(t *testing.T) {
	src := "SUBCIRCUIT A\nINPUTS x\nOUTPUTS y\nA IN(x) OUT(y)\nEND\n" +
		"INPUTS a\nOUTPUTS b\nA IN(a) OUT(b)\n"
	errContains(t, check(t, src), "A -> A")
}
