//
// pairwise.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package analysis

import (
	"github.com/markkurossi/logiclock/sim"
)

// Candidate names an AIG node index eligible for locking. Candidate
// indices into a []Candidate slice — not the node indices themselves —
// are what PairwiseGraph and CorruptionMatrix are indexed by.
type Candidate int

// ComputePairwiseGraph implements the §4.3.1 pairwise-security
// predicate: for every pair of candidates, four simulation passes
// (toggle ∅, {a}, {b}, {a,b}) decide whether the pair is pairwise-
// secure, with the common ∅-pass cached across every pair and batch.
// A pair whose single-toggle outputs are bit-identical on every
// (output, vector) is rejected as redundant (same-impact) even if it
// would otherwise pass the predicate.
func ComputePairwiseGraph(s *sim.Simulator, candidates []Candidate, batches []*sim.Batch) *PairwiseGraph {
	g := NewPairwiseGraph(len(candidates))

	baselines := make([]sim.Outputs, len(batches))
	for k, b := range batches {
		baselines[k] = s.Eval(b, nil)
	}

	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			if pairwiseSecure(s, candidates[i], candidates[j], batches, baselines) {
				g.addEdge(i, j)
			}
		}
	}
	return g
}

// pairwiseSecure evaluates one candidate pair across every batch,
// returning true iff the pair is pairwise-secure and not redundant.
func pairwiseSecure(s *sim.Simulator, a, b Candidate, batches []*sim.Batch, baselines []sim.Outputs) bool {
	redundant := true

	for k, batch := range batches {
		base := baselines[k]
		fa := s.Eval(batch, sim.Toggle(int(a)))
		fb := s.Eval(batch, sim.Toggle(int(b)))
		fab := s.Eval(batch, sim.Toggle(int(a), int(b)))

		for out, baseWord := range base {
			sensA := (baseWord ^ fa[out]) | (fb[out] ^ fab[out])
			sensB := (baseWord ^ fb[out]) | (fa[out] ^ fab[out])
			if sensA != sensB {
				return false
			}
			if fa[out] != fb[out] {
				redundant = false
			}
		}
	}
	return !redundant
}
