//
// corruption.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package analysis

import (
	"github.com/markkurossi/logiclock/netlist"
	"github.com/markkurossi/logiclock/sim"
)

// CorruptionMatrix stores, per candidate, per combinational output,
// per batch, the 64-bit word of test vectors on which toggling that
// candidate flips that output: M[c][o][k] = f_out(∅)[o][k] XOR
// f_out({c})[o][k].
type CorruptionMatrix struct {
	Outputs []netlist.SignalID
	rows    [][][]uint64 // [candidate][output][batch]
}

// NumCandidates returns the number of candidates the matrix covers.
func (m *CorruptionMatrix) NumCandidates() int {
	return len(m.rows)
}

// Row returns the raw per-output, per-batch words for candidate c.
func (m *CorruptionMatrix) Row(c int) [][]uint64 {
	return m.rows[c]
}

// ComputeCorruptionMatrix implements §4.3.2: for every candidate,
// XOR the baseline (toggle ∅) output words against the single-toggle
// output words, per combinational output and per batch.
func ComputeCorruptionMatrix(s *sim.Simulator, candidates []Candidate, outputs []netlist.SignalID, batches []*sim.Batch) *CorruptionMatrix {
	baselines := make([]sim.Outputs, len(batches))
	for k, b := range batches {
		baselines[k] = s.Eval(b, nil)
	}

	m := &CorruptionMatrix{
		Outputs: outputs,
		rows:    make([][][]uint64, len(candidates)),
	}
	for ci, c := range candidates {
		row := make([][]uint64, len(outputs))
		for oi := range outputs {
			row[oi] = make([]uint64, len(batches))
		}
		for k, batch := range batches {
			toggled := s.Eval(batch, sim.Toggle(int(c)))
			base := baselines[k]
			for oi, out := range outputs {
				row[oi][k] = base[out] ^ toggled[out]
			}
		}
		m.rows[ci] = row
	}
	return m
}
