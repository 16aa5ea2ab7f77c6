//
// clique.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package optimize implements the two combinatorial selection
// strategies the driver chooses between: clique partitioning over the
// pairwise-security graph, and greedy maximum-coverage over the
// corruption matrix.
package optimize

import (
	"sort"

	"github.com/markkurossi/logiclock/analysis"
)

// Clique is an ordered, vertex-disjoint set of candidate indices that
// forms a complete subgraph of the pairwise-security graph.
type Clique []int

// Value is the number of pairwise-security constraints a clique
// satisfies: |c|*(|c|-1)/2.
func (c Clique) Value() int {
	n := len(c)
	return n * (n - 1) / 2
}

// SelectCliques partitions (a subset of) the graph's vertices into
// disjoint cliques whose total vertex count is at most budget,
// maximizing the sum of clique values. It repeatedly extracts a
// maximal clique from the remaining induced subgraph — truncated to
// the remaining budget — via greedy Bron-Kerbosch-style expansion,
// removes its vertices, and repeats. Ties are broken by lower vertex
// index for determinism. Isolated vertices become singleton cliques
// and are only emitted once no larger clique can use the remaining
// budget.
func SelectCliques(g *analysis.PairwiseGraph, budget int) []Clique {
	if budget <= 0 || g.N() == 0 {
		return nil
	}

	remaining := make(map[int]bool, g.N())
	for v := 0; v < g.N(); v++ {
		remaining[v] = true
	}

	var cliques []Clique
	used := 0
	for used < budget && len(remaining) > 0 {
		limit := budget - used
		best := maximalClique(g, remaining, limit)
		if len(best) == 0 {
			break
		}
		for _, v := range best {
			delete(remaining, v)
		}
		used += len(best)
		cliques = append(cliques, best)
	}
	return cliques
}

// maximalClique greedily grows a clique within remaining, capped at
// size limit, preferring at each step the candidate with the most
// connections into the current clique's common-neighbor pool, broken
// by lower vertex index.
func maximalClique(g *analysis.PairwiseGraph, remaining map[int]bool, limit int) Clique {
	if limit <= 0 {
		return nil
	}

	candidates := sortedKeys(remaining)

	// Seed with the lowest-indexed vertex of highest degree within the
	// remaining set, for determinism.
	seed := -1
	seedDeg := -1
	for _, v := range candidates {
		d := inducedDegree(g, remaining, v)
		if d > seedDeg {
			seed, seedDeg = v, d
		}
	}
	if seed < 0 {
		return nil
	}

	clique := Clique{seed}
	pool := make(map[int]bool)
	for u := range remaining {
		if u != seed && g.Adjacent(seed, u) {
			pool[u] = true
		}
	}

	for len(clique) < limit && len(pool) > 0 {
		next := -1
		nextDeg := -1
		for _, v := range sortedKeys(pool) {
			d := inducedDegree(g, pool, v)
			if d > nextDeg {
				next, nextDeg = v, d
			}
		}
		clique = append(clique, next)
		delete(pool, next)
		for u := range pool {
			if !g.Adjacent(next, u) {
				delete(pool, u)
			}
		}
	}
	return clique
}

// inducedDegree counts v's neighbors that also belong to set.
func inducedDegree(g *analysis.PairwiseGraph, set map[int]bool, v int) int {
	n := 0
	for u := range set {
		if u != v && g.Adjacent(v, u) {
			n++
		}
	}
	return n
}

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// SelectCliquesExhaustive is a brute-force maximum-weight clique
// partition, practical only for small graphs (the search is over all
// subsets of vertices up to budget). It is provided as the optional
// non-greedy variant §4.4 allows for small instances.
func SelectCliquesExhaustive(g *analysis.PairwiseGraph, budget int) []Clique {
	if budget <= 0 || g.N() == 0 {
		return nil
	}

	remaining := make(map[int]bool, g.N())
	for v := 0; v < g.N(); v++ {
		remaining[v] = true
	}

	var cliques []Clique
	used := 0
	for used < budget && len(remaining) > 0 {
		best := maxClique(g, remaining, budget-used)
		if len(best) == 0 {
			break
		}
		for _, v := range best {
			delete(remaining, v)
		}
		used += len(best)
		cliques = append(cliques, best)
	}
	return cliques
}

// maxClique finds the maximum clique within set, capped at limit
// vertices, by exhaustive search with pruning.
func maxClique(g *analysis.PairwiseGraph, set map[int]bool, limit int) Clique {
	vertices := sortedKeys(set)
	var best Clique

	var search func(candidates []int, current Clique)
	search = func(candidates []int, current Clique) {
		if len(current) > len(best) {
			best = append(Clique(nil), current...)
		}
		if len(current) >= limit {
			return
		}
		if len(current)+len(candidates) <= len(best) {
			return
		}
		for i, v := range candidates {
			ok := true
			for _, u := range current {
				if !g.Adjacent(u, v) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			search(candidates[i+1:], append(current, v))
		}
	}
	search(vertices, nil)
	return best
}
