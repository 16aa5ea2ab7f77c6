//
// batch.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sim implements the bit-parallel combinational simulator: one
// forward sweep of an AIG's node array per 64-wide test-vector batch,
// with support for toggling an arbitrary subset of nodes.
package sim

import "github.com/markkurossi/logiclock/netlist"

// WordBits is the native word width: a Batch packs this many test
// vectors into one 64-bit word per input.
const WordBits = 64

// Batch packs WordBits test vectors, one bit per vector, into a 64-bit
// word per combinational input signal.
type Batch struct {
	Words map[netlist.SignalID]uint64
}

// NewBatch creates an empty batch with a zero word for every input.
func NewBatch(inputs []netlist.SignalID) *Batch {
	b := &Batch{Words: make(map[netlist.SignalID]uint64, len(inputs))}
	for _, sig := range inputs {
		b.Words[sig] = 0
	}
	return b
}

// SetVector assigns the bit at position vec (0..WordBits-1) of
// signal's word to value.
func (b *Batch) SetVector(signal netlist.SignalID, vec int, value bool) {
	w := b.Words[signal]
	if value {
		w |= 1 << uint(vec)
	} else {
		w &^= 1 << uint(vec)
	}
	b.Words[signal] = w
}
