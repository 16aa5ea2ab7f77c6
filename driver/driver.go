//
// driver.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package driver orchestrates the engine end to end: it enumerates
// locking candidates, builds the AIG, generates test vectors, dispatches
// to the pairwise or corruption optimizer (or an explicit lock-gate/
// mix-gate override), and assembles the result the CLI reports.
package driver

import (
	"fmt"

	"github.com/markkurossi/logiclock/aig"
	"github.com/markkurossi/logiclock/analysis"
	"github.com/markkurossi/logiclock/netlist"
	"github.com/markkurossi/logiclock/optimize"
	"github.com/markkurossi/logiclock/sim"
)

// Result is the outcome of one Run: the signals selected for XOR/XNOR
// locking plus their key bits, and/or the signal pairs selected for MUX
// mixing plus their key bits (an explicit -mix-gate override never mixes
// with the optimizer paths, so at most one of the two selection pairs
// is populated).
type Result struct {
	Signals []netlist.SignalID
	KeyBits []bool

	MuxPairs   [][2]netlist.SignalID
	MuxKeyBits []bool

	// names holds a human-readable label per entry of Signals, for
	// report rendering.
	names []string
	// coverCurve[i] is the corruption cover achieved by Signals[:i+1],
	// populated only for the Corruption and Hybrid targets; nil
	// otherwise (pairwise security is not a coverage notion).
	coverCurve []float64
}

// Run executes one end-to-end engine pass over module under cfg.
func Run(module netlist.Module, cfg Config) (*Result, error) {
	if (cfg.MixGate[0] == "") != (cfg.MixGate[1] == "") {
		return nil, fmt.Errorf("%w: mix-gate requires both signal names", ErrInvalidConfiguration)
	}

	budget, err := cfg.validate(len(module.Cells()))
	if err != nil {
		return nil, err
	}

	graph, err := aig.NewBuilder(module).Build()
	if err != nil {
		return nil, err
	}

	if cfg.LockGate != "" {
		return lockGateOverride(module, cfg.LockGate)
	}
	if cfg.MixGate[0] != "" {
		return mixGateOverride(module, cfg.MixGate)
	}

	candidates := enumerateCandidates(module, cfg.IncludeInputs)
	nodeOf := make([]analysis.Candidate, len(candidates))
	for i, sig := range candidates {
		lit, ok := graph.Lit(sig)
		if !ok {
			return nil, fmt.Errorf("%w: candidate %q has no AIG node",
				ErrInvalidConfiguration, module.SignalName(sig))
		}
		nodeOf[i] = analysis.Candidate(lit.Node())
	}

	batches := generateBatches(graph.Inputs, cfg.NumVectors, cfg.Seed)
	numVectors := len(batches) * sim.WordBits
	engine := sim.New(graph)

	var selected []int
	var coverCurve []float64

	switch cfg.Target {
	case Pairwise:
		pg := analysis.ComputePairwiseGraph(engine, nodeOf, batches)
		selected = flattenCliques(optimize.SelectCliques(pg, budget))

	case Corruption:
		matrix := analysis.ComputeCorruptionMatrix(engine, nodeOf, graph.Outputs, batches)
		selected = optimize.SelectByCoverage(matrix, budget, nil)
		coverCurve = cumulativeCover(matrix, selected, numVectors)

	case Hybrid:
		pg := analysis.ComputePairwiseGraph(engine, nodeOf, batches)
		prefix := largestClique(optimize.SelectCliques(pg, budget))
		matrix := analysis.ComputeCorruptionMatrix(engine, nodeOf, graph.Outputs, batches)
		selected = optimize.SelectByCoverage(matrix, budget, prefix)
		coverCurve = cumulativeCover(matrix, selected, numVectors)
	}

	signals := make([]netlist.SignalID, len(selected))
	for i, c := range selected {
		signals[i] = candidates[c]
	}
	keyBits, err := secureKeyBits(len(signals))
	if err != nil {
		return nil, err
	}

	return &Result{
		Signals:    signals,
		KeyBits:    keyBits,
		names:      namesFor(module, signals),
		coverCurve: coverCurve,
	}, nil
}

// lockGateOverride bypasses both optimizers and locks exactly the named
// signal, per the explicit -lock-gate escape hatch.
func lockGateOverride(module netlist.Module, name string) (*Result, error) {
	sig, ok := findSignal(module, name)
	if !ok {
		return nil, fmt.Errorf("%w: lock-gate %q not found", ErrSelectionImpossible, name)
	}
	keyBits, err := secureKeyBits(1)
	if err != nil {
		return nil, err
	}
	return &Result{
		Signals: []netlist.SignalID{sig},
		KeyBits: keyBits,
		names:   []string{name},
	}, nil
}

// mixGateOverride bypasses both optimizers and mixes exactly the named
// signal pair via a MUX, per the explicit -mix-gate escape hatch.
func mixGateOverride(module netlist.Module, names [2]string) (*Result, error) {
	a, ok := findSignal(module, names[0])
	if !ok {
		return nil, fmt.Errorf("%w: mix-gate %q not found", ErrSelectionImpossible, names[0])
	}
	b, ok := findSignal(module, names[1])
	if !ok {
		return nil, fmt.Errorf("%w: mix-gate %q not found", ErrSelectionImpossible, names[1])
	}
	keyBits, err := secureKeyBits(1)
	if err != nil {
		return nil, err
	}
	return &Result{
		MuxPairs:   [][2]netlist.SignalID{{a, b}},
		MuxKeyBits: keyBits,
	}, nil
}

func findSignal(module netlist.Module, name string) (netlist.SignalID, bool) {
	for _, c := range module.Cells() {
		sig := c.Output()
		if module.SignalName(sig) == name {
			return sig, true
		}
	}
	return 0, false
}

// flattenCliques concatenates every clique's members into one selection,
// in the order SelectCliques produced them.
func flattenCliques(cliques []optimize.Clique) []int {
	var out []int
	for _, c := range cliques {
		out = append(out, c...)
	}
	return out
}

// largestClique returns the highest-value clique among cliques (the
// first one on ties), or nil when no clique has more than one member, used
// as the hybrid target's mandatory coverage-optimizer prefix (§4.6: the
// pairwise-secure core is kept intact, then extended for coverage).
func largestClique(cliques []optimize.Clique) []int {
	var best optimize.Clique
	for _, c := range cliques {
		if c.Value() > best.Value() {
			best = c
		}
	}
	return best
}

// cumulativeCover computes, for each prefix length of selected, the
// corruption cover optimize.Cover would report, so the report can show
// how cover grows as candidates are added.
func cumulativeCover(m *analysis.CorruptionMatrix, selected []int, numVectors int) []float64 {
	curve := make([]float64, len(selected))
	for i := range selected {
		curve[i] = optimize.Cover(m, selected[:i+1], numVectors)
	}
	return curve
}

// namesFor resolves each signal's human-readable name, in order.
func namesFor(module netlist.Module, signals []netlist.SignalID) []string {
	names := make([]string, len(signals))
	for i, sig := range signals {
		names[i] = module.SignalName(sig)
	}
	return names
}
