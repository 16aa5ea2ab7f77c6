//
// builder.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aig

import (
	"fmt"

	"github.com/markkurossi/logiclock/netlist"
)

// Builder incrementally lowers a module's combinational cells into an
// AIG, memoizing signal -> literal so that every fan-in reference to
// the same signal resolves to the same literal.
type Builder struct {
	module netlist.Module
	aig    *AIG
}

// NewBuilder creates a builder for module, seeding the node array with
// the constant-zero sentinel and one KindInput node per combinational
// input.
func NewBuilder(module netlist.Module) *Builder {
	a := &AIG{
		Nodes:     []Node{{Kind: KindConst}},
		signalLit: make(map[netlist.SignalID]Lit),
	}
	for _, sig := range module.CombinationalInputs() {
		idx := len(a.Nodes)
		a.Nodes = append(a.Nodes, Node{Kind: KindInput, Signal: sig})
		a.signalLit[sig] = newLit(idx, false)
		a.Inputs = append(a.Inputs, sig)
	}
	return &Builder{module: module, aig: a}
}

// Build lowers every combinational cell of the module and resolves the
// literal driving each combinational output, returning the finished
// AIG. Encountering an unsupported cell type, a combinational cycle, or
// a signal with no driver is fatal.
func (b *Builder) Build() (*AIG, error) {
	order, err := b.topoSort()
	if err != nil {
		return nil, err
	}
	for _, cell := range order {
		if err := b.lower(cell); err != nil {
			return nil, err
		}
	}

	for _, sig := range b.module.CombinationalOutputs() {
		lit, ok := b.aig.signalLit[sig]
		if !ok {
			return nil, fmt.Errorf("%w: output %q has no driver",
				ErrMalformedNetlist, b.module.SignalName(sig))
		}
		b.aig.Outputs = append(b.aig.Outputs, sig)
		b.aig.OutputLits = append(b.aig.OutputLits, lit)
	}
	return b.aig, nil
}

// topoSort orders the module's cells so that every fan-in is driven
// before its cell is lowered, detecting combinational cycles.
func (b *Builder) topoSort() ([]netlist.Cell, error) {
	cells := b.module.Cells()

	driver := make(map[netlist.SignalID]netlist.Cell, len(cells))
	for _, c := range cells {
		driver[c.Output()] = c
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[netlist.SignalID]int, len(cells))
	var order []netlist.Cell

	var visit func(sig netlist.SignalID) error
	visit = func(sig netlist.SignalID) error {
		c, ok := driver[sig]
		if !ok {
			// Not driven by any cell: either a combinational input or
			// a missing driver, both resolved later when fan-ins are
			// actually fetched.
			return nil
		}
		switch state[c.Output()] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: combinational cycle through %q",
				ErrMalformedNetlist, b.module.SignalName(sig))
		}
		state[c.Output()] = visiting
		for _, in := range c.Inputs {
			if err := visit(in); err != nil {
				return err
			}
		}
		state[c.Output()] = done
		order = append(order, c)
		return nil
	}

	for _, c := range cells {
		if err := visit(c.Output()); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// lower appends the AND+invert expansion of one cell to the AIG and
// memoizes the literal driving its output signal.
func (b *Builder) lower(cell netlist.Cell) error {
	lits := make([]Lit, len(cell.Inputs))
	for i, sig := range cell.Inputs {
		lit, ok := b.aig.signalLit[sig]
		if !ok {
			return fmt.Errorf("%w: cell %q input %q has no driver",
				ErrMalformedNetlist, cell.Name, b.module.SignalName(sig))
		}
		lits[i] = lit
	}

	var out Lit
	switch cell.Type {
	case netlist.CellBuf:
		out = b.alias(lits[0])
	case netlist.CellNot:
		out = b.alias(lits[0]).Not()
	case netlist.CellAnd:
		out = b.foldAnd(lits)
	case netlist.CellNand:
		out = b.foldAnd(lits).Not()
	case netlist.CellOr:
		out = b.foldOr(lits)
	case netlist.CellNor:
		out = b.foldOr(lits).Not()
	case netlist.CellXor:
		out = b.foldXor(lits)
	case netlist.CellXnor:
		out = b.foldXor(lits).Not()
	case netlist.CellMux:
		if len(lits) != 3 {
			return fmt.Errorf("%w: MUX cell %q needs 3 inputs, got %d",
				ErrMalformedNetlist, cell.Name, len(lits))
		}
		out = b.mux(lits[0], lits[1], lits[2])
	default:
		return fmt.Errorf("%w: %s (cell %q)", ErrUnsupportedCell, cell.Type, cell.Name)
	}

	b.aig.signalLit[cell.Output()] = out
	return nil
}

// newAnd appends a new AND node and returns its (uninverted) literal.
func (b *Builder) newAnd(x, y Lit) Lit {
	idx := len(b.aig.Nodes)
	b.aig.Nodes = append(b.aig.Nodes, Node{Kind: KindAnd, Fanin0: x, Fanin1: y})
	return newLit(idx, false)
}

// alias gives x a fresh node of its own (AND(x, One) = x) so that a
// single-fanin cell (BUF, NOT) gets an independently toggleable node
// instead of silently sharing its fan-in's node index. Without this, a
// candidate signal driven by a bare buffer or inverter would alias its
// driver's node, and toggling it would incorrectly perturb every other
// fanout of that driver too.
func (b *Builder) alias(x Lit) Lit {
	return b.newAnd(x, One)
}

// newOr builds x OR y as Not(AND(Not(x), Not(y))).
func (b *Builder) newOr(x, y Lit) Lit {
	return b.newAnd(x.Not(), y.Not()).Not()
}

// newXor builds x XOR y as (x AND Not(y)) OR (Not(x) AND y), per the
// flattened De Morgan identity.
func (b *Builder) newXor(x, y Lit) Lit {
	return b.newOr(b.newAnd(x, y.Not()), b.newAnd(x.Not(), y))
}

// mux builds MUX(a, b, s) = (s AND b) OR (Not(s) AND a): s selects b.
func (b *Builder) mux(a, data1, s Lit) Lit {
	return b.newOr(b.newAnd(s, data1), b.newAnd(s.Not(), a))
}

func (b *Builder) foldAnd(lits []Lit) Lit {
	acc := lits[0]
	for _, l := range lits[1:] {
		acc = b.newAnd(acc, l)
	}
	return acc
}

func (b *Builder) foldOr(lits []Lit) Lit {
	acc := lits[0]
	for _, l := range lits[1:] {
		acc = b.newOr(acc, l)
	}
	return acc
}

func (b *Builder) foldXor(lits []Lit) Lit {
	acc := lits[0]
	for _, l := range lits[1:] {
		acc = b.newXor(acc, l)
	}
	return acc
}
