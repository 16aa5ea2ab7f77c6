//
// simulator.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sim

import (
	"github.com/markkurossi/logiclock/aig"
	"github.com/markkurossi/logiclock/netlist"
)

const allOnes = ^uint64(0)

// ToggleSet names the AIG node indices whose computed value should be
// XORed with 1 during a simulation pass, applied after the node's AND
// has been computed — "cut the wire and feed the opposite value
// downstream".
type ToggleSet map[int]bool

// Toggle builds a ToggleSet for the given node indices.
func Toggle(nodes ...int) ToggleSet {
	t := make(ToggleSet, len(nodes))
	for _, n := range nodes {
		t[n] = true
	}
	return t
}

// Outputs holds one 64-bit word per combinational output signal,
// produced by a single Eval call.
type Outputs map[netlist.SignalID]uint64

// Simulator evaluates one AIG over packed test-vector batches.
type Simulator struct {
	graph  *aig.AIG
	values []uint64
}

// New creates a simulator for graph. The simulator owns a reusable
// per-node value buffer sized once for the lifetime of the engine run.
func New(graph *aig.AIG) *Simulator {
	return &Simulator{
		graph:  graph,
		values: make([]uint64, graph.NumNodes()),
	}
}

// Eval runs one forward sweep of the AIG's node array for batch,
// XORing in toggles after each AND is computed, and returns one word
// per combinational output. Because every AND's fan-ins reference
// strictly lower-indexed nodes, a single left-to-right pass suffices.
func (s *Simulator) Eval(batch *Batch, toggles ToggleSet) Outputs {
	values := s.values
	values[0] = 0

	nodes := s.graph.Nodes
	for idx := 1; idx < len(nodes); idx++ {
		n := nodes[idx]
		var v uint64
		switch n.Kind {
		case aig.KindInput:
			v = batch.Words[n.Signal]
		case aig.KindAnd:
			v = fetch(values, n.Fanin0) & fetch(values, n.Fanin1)
		}
		if toggles[idx] {
			v ^= allOnes
		}
		values[idx] = v
	}

	out := make(Outputs, len(s.graph.Outputs))
	for i, sig := range s.graph.Outputs {
		out[sig] = fetch(values, s.graph.OutputLits[i])
	}
	return out
}

// fetch resolves a literal to its packed word, applying its inversion.
func fetch(values []uint64, lit aig.Lit) uint64 {
	v := values[lit.Node()]
	if lit.Inverted() {
		return v ^ allOnes
	}
	return v
}
