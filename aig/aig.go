//
// aig.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package aig implements the And-Inverter Graph intermediate
// representation the bit-parallel simulator evaluates: a flat,
// append-only array of constant/input/AND nodes in topological order,
// built by lowering a small set of primitive combinational cell types.
package aig

import "github.com/markkurossi/logiclock/netlist"

// AIG is an And-Inverter Graph over one module's combinational logic.
// Nodes is append-only and indices are stable: node 0 is always the
// constant-zero sentinel, and every AND node's fan-ins reference
// strictly lower-indexed nodes.
type AIG struct {
	Nodes []Node

	// Inputs lists, in the order the simulator expects a test-vector
	// batch to supply them, the combinational-input signals this AIG
	// was built against.
	Inputs []netlist.SignalID

	// Outputs lists the module's combinational-output signals, in the
	// order the module's CombinationalOutputs returns them.
	Outputs []netlist.SignalID
	// OutputLits holds the literal that drives each entry of Outputs.
	OutputLits []Lit

	// signalLit memoizes signal -> literal for every signal that has
	// been assigned a driving literal so far (inputs and cell outputs).
	signalLit map[netlist.SignalID]Lit
}

// Lit returns the literal driving the given signal, and whether one has
// been assigned yet.
func (a *AIG) Lit(sig netlist.SignalID) (Lit, bool) {
	l, ok := a.signalLit[sig]
	return l, ok
}

// NumNodes returns the number of nodes in the graph, including the
// constant sentinel.
func (a *AIG) NumNodes() int {
	return len(a.Nodes)
}
