//
// clique_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimize

import (
	"testing"

	"github.com/markkurossi/logiclock/aig"
	"github.com/markkurossi/logiclock/analysis"
	"github.com/markkurossi/logiclock/netlist"
	"github.com/markkurossi/logiclock/netlist/fixtures"
	"github.com/markkurossi/logiclock/sim"
)

// pairwiseGraphOf runs the full AIG-build/simulate/analyze pipeline over
// m and returns its pairwise-security graph, exercised across one batch
// of 64 test vectors covering every input combination the fixture needs.
func pairwiseGraphOf(t *testing.T, m netlist.Module) *analysis.PairwiseGraph {
	t.Helper()
	graph, err := aig.NewBuilder(m).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var candidates []analysis.Candidate
	for _, c := range m.Cells() {
		if m.SignalRole(c.Output()) != netlist.RoleInternal {
			continue
		}
		lit, ok := graph.Lit(c.Output())
		if !ok {
			t.Fatalf("no literal for %v", c.Output())
		}
		candidates = append(candidates, analysis.Candidate(lit.Node()))
	}

	batch := sim.NewBatch(graph.Inputs)
	for i, sig := range graph.Inputs {
		for v := 0; v < sim.WordBits; v++ {
			batch.SetVector(sig, v, (v>>uint(i%6))&1 == 1)
		}
	}

	return analysis.ComputePairwiseGraph(sim.New(graph), candidates, []*sim.Batch{batch})
}

// TestSelectCliquesRespectsBudget checks that SelectCliques never
// returns more vertices in total than the budget allows, on the
// four-clique-plus-singletons fixture.
func TestSelectCliquesRespectsBudget(t *testing.T) {
	g := pairwiseGraphOf(t, fixtures.CliquePlusSingletons(3))

	cliques := SelectCliques(g, 3)
	total := 0
	for _, c := range cliques {
		total += len(c)
	}
	if total > 3 {
		t.Fatalf("SelectCliques exceeded budget: used %d of 3", total)
	}
}

// TestSelectCliquesFindsFullClique checks that, given enough budget, the
// optimizer recovers the fixture's full 4-vertex clique.
func TestSelectCliquesFindsFullClique(t *testing.T) {
	g := pairwiseGraphOf(t, fixtures.CliquePlusSingletons(2))

	cliques := SelectCliques(g, 4)
	var best Clique
	for _, c := range cliques {
		if c.Value() > best.Value() {
			best = c
		}
	}
	if len(best) != 4 {
		t.Fatalf("expected to recover the 4-vertex clique, got size %d", len(best))
	}
	if best.Value() != 6 {
		t.Fatalf("expected clique value 6, got %d", best.Value())
	}
}

// TestSelectCliquesExhaustiveMatchesGreedy checks the two clique
// strategies agree on the total value extracted when the budget covers
// the whole fixture clique.
func TestSelectCliquesExhaustiveMatchesGreedy(t *testing.T) {
	g := pairwiseGraphOf(t, fixtures.CliquePlusSingletons(0))

	greedy := SelectCliques(g, 4)
	exhaustive := SelectCliquesExhaustive(g, 4)

	var gv, ev int
	for _, c := range greedy {
		gv += c.Value()
	}
	for _, c := range exhaustive {
		ev += c.Value()
	}
	if gv != ev {
		t.Fatalf("greedy and exhaustive disagree on total clique value: %d vs %d", gv, ev)
	}
}
