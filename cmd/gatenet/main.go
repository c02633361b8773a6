package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pborges/gatenet/internal/elab"
	"github.com/pborges/gatenet/internal/gatenet"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "check":
		if err := cmdCheck(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "dump":
		if err := cmdDump(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "gates":
		fmt.Println("AND")
		fmt.Println("OR")
		fmt.Println("NOT")
		fmt.Println("NAND")
		fmt.Println("NOR")
		fmt.Println("XOR")
		fmt.Println("XNOR")
	case "version":
		fmt.Println(version)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintln(os.Stderr, "unknown command:", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("gatenet - gate netlist language front end")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gatenet check <file.ckt>   parse and validate a circuit")
	fmt.Println("  gatenet dump <file.ckt>    parse a circuit and print its structure")
	fmt.Println("  gatenet gates              list primitive gate types")
	fmt.Println("  gatenet version")
}

func load(args []string) (*gatenet.Program, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected a single .ckt input")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, err
	}
	return gatenet.Parse(string(data))
}

func cmdCheck(args []string) error {
	prog, err := load(args)
	if err != nil {
		return err
	}
	if err := elab.Check(prog); err != nil {
		return err
	}
	fmt.Printf("ok: %d components, %d subcircuits\n", len(prog.Components), len(prog.Subcircuits))
	return nil
}

func cmdDump(args []string) error {
	prog, err := load(args)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(prog.Subcircuits))
	for name := range prog.Subcircuits {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sub := prog.Subcircuits[name]
		fmt.Printf("subcircuit %s\n", name)
		dumpBody(sub.Inputs, sub.Outputs, sub.Components)
	}
	fmt.Println("top level")
	dumpBody(prog.Inputs, prog.Outputs, prog.Components)
	return nil
}

func dumpBody(inputs, outputs []string, components []gatenet.Component) {
	fmt.Printf("  inputs:  %s\n", strings.Join(inputs, ", "))
	fmt.Printf("  outputs: %s\n", strings.Join(outputs, ", "))
	for _, c := range components {
		fmt.Printf("  %s\n", formatComponent(c))
	}
}

func formatComponent(c gatenet.Component) string {
	in := strings.Join(c.Inputs, ", ")
	out := strings.Join(c.Outputs, ", ")
	if c.Gate == gatenet.GateSub {
		return fmt.Sprintf("%s IN(%s) OUT(%s)", c.Subcircuit, in, out)
	}
	return fmt.Sprintf("%s %s IN(%s) OUT(%s)", c.Gate, c.Name, in, out)
}
