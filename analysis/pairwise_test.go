//
// pairwise_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package analysis

import (
	"testing"

	"github.com/markkurossi/logiclock/aig"
	"github.com/markkurossi/logiclock/netlist"
	"github.com/markkurossi/logiclock/netlist/fixtures"
	"github.com/markkurossi/logiclock/sim"
)

func buildCandidates(t *testing.T, m netlist.Module) (*sim.Simulator, []Candidate, *aig.AIG) {
	t.Helper()
	graph, err := aig.NewBuilder(m).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var candidates []Candidate
	for _, c := range m.Cells() {
		if m.SignalRole(c.Output()) != netlist.RoleInternal {
			continue
		}
		lit, ok := graph.Lit(c.Output())
		if !ok {
			t.Fatalf("no literal for %v", c.Output())
		}
		candidates = append(candidates, Candidate(lit.Node()))
	}
	return sim.New(graph), candidates, graph
}

func allOnesBatches(graph *aig.AIG, n int) []*sim.Batch {
	numBatches := (n + sim.WordBits - 1) / sim.WordBits
	if numBatches == 0 {
		numBatches = 1
	}
	batches := make([]*sim.Batch, numBatches)
	for k := range batches {
		b := sim.NewBatch(graph.Inputs)
		for i, sig := range graph.Inputs {
			// Vary each input's bit pattern so every combination of
			// values actually appears across the batch's 64 vectors.
			b.Words[sig] = uint64(0x1) << uint(i%64)
			for v := 0; v < sim.WordBits; v++ {
				b.SetVector(sig, v, (v>>uint(i))&1 == 1)
			}
		}
		batches[k] = b
	}
	return batches
}

// TestPairwiseIrreflexiveAndSymmetric checks the graph never reports a
// vertex adjacent to itself, and that adjacency is symmetric.
func TestPairwiseIrreflexiveAndSymmetric(t *testing.T) {
	m := fixtures.FullAdder()
	engine, candidates, graph := buildCandidates(t, m)
	batches := allOnesBatches(graph, 256)

	g := ComputePairwiseGraph(engine, candidates, batches)
	for i := 0; i < g.N(); i++ {
		if g.Adjacent(i, i) {
			t.Fatalf("vertex %d reports self-adjacency", i)
		}
		for j := 0; j < g.N(); j++ {
			if g.Adjacent(i, j) != g.Adjacent(j, i) {
				t.Fatalf("adjacency(%d,%d) != adjacency(%d,%d)", i, j, j, i)
			}
		}
	}
}

// TestTwoInvertersPairwiseSecure checks the canonical two-independent-
// inverters scenario: the two candidates must be pairwise-secure.
func TestTwoInvertersPairwiseSecure(t *testing.T) {
	m := fixtures.TwoInverters()
	engine, candidates, graph := buildCandidates(t, m)
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	batches := allOnesBatches(graph, 256)

	g := ComputePairwiseGraph(engine, candidates, batches)
	if !g.Adjacent(0, 1) {
		t.Fatalf("two independent inverters should be pairwise-secure")
	}
}

// TestBufferChainRedundant checks that a chain of buffers, which have
// bit-identical impact on the output, is rejected as redundant (no
// edge), even though the sensitivity predicate alone would pass it.
func TestBufferChainRedundant(t *testing.T) {
	m := fixtures.BufferChain3()
	engine, candidates, graph := buildCandidates(t, m)
	if len(candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(candidates))
	}
	batches := allOnesBatches(graph, 256)

	g := ComputePairwiseGraph(engine, candidates, batches)
	for i := 0; i < g.N(); i++ {
		for j := i + 1; j < g.N(); j++ {
			if g.Adjacent(i, j) {
				t.Fatalf("same-impact buffer chain candidates %d,%d reported as secure", i, j)
			}
		}
	}
}
