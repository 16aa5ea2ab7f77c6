//
// coverage_test.go
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

func corruptionMatrixOf(t *testing.T, m netlist.Module) (*analysis.CorruptionMatrix, int) {
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
	batches := []*sim.Batch{batch}
	m2 := analysis.ComputeCorruptionMatrix(sim.New(graph), candidates, graph.Outputs, batches)
	return m2, len(batches) * sim.WordBits
}

// TestSelectByCoverageRespectsBudget checks the selection never exceeds
// budget candidates.
func TestSelectByCoverageRespectsBudget(t *testing.T) {
	matrix, _ := corruptionMatrixOf(t, fixtures.FullAdder())
	selected := SelectByCoverage(matrix, 2, nil)
	if len(selected) > 2 {
		t.Fatalf("SelectByCoverage exceeded budget: got %d", len(selected))
	}
}

// TestSelectByCoverageMonotonic checks that cover never decreases as
// more candidates are added, and that a full-budget selection covers at
// least as much as a smaller one.
func TestSelectByCoverageMonotonic(t *testing.T) {
	matrix, numVectors := corruptionMatrixOf(t, fixtures.FullAdder())

	small := SelectByCoverage(matrix, 1, nil)
	big := SelectByCoverage(matrix, matrix.NumCandidates(), nil)

	coverSmall := Cover(matrix, small, numVectors)
	coverBig := Cover(matrix, big, numVectors)
	if coverBig < coverSmall {
		t.Fatalf("coverage decreased with a larger budget: %v -> %v", coverSmall, coverBig)
	}
}

// TestSelectByCoverageHonorsPrefix checks that every prefix candidate is
// included in the final selection even if it offers no marginal gain.
func TestSelectByCoverageHonorsPrefix(t *testing.T) {
	matrix, _ := corruptionMatrixOf(t, fixtures.BufferChain3())
	selected := SelectByCoverage(matrix, 3, []int{1})

	found := false
	for _, c := range selected {
		if c == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("mandatory prefix candidate 1 missing from selection %v", selected)
	}
}

// TestSelectByCoverageDedupesRedundantRows checks that a chain of
// candidates with bit-identical corruption rows (the buffer chain) only
// ever contributes one unit of coverage gain, regardless of how many of
// them are selected.
func TestSelectByCoverageDedupesRedundantRows(t *testing.T) {
	matrix, numVectors := corruptionMatrixOf(t, fixtures.BufferChain3())

	one := SelectByCoverage(matrix, 1, nil)
	all := SelectByCoverage(matrix, matrix.NumCandidates(), nil)

	if Cover(matrix, one, numVectors) != Cover(matrix, all, numVectors) {
		t.Fatalf("redundant buffer-chain candidates should not add coverage beyond the first")
	}
}
