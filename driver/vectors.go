//
// vectors.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package driver

import (
	"math/rand"

	"github.com/markkurossi/logiclock/netlist"
	"github.com/markkurossi/logiclock/sim"
)

// generateBatches samples N test vectors, rounded up to a multiple of
// sim.WordBits, from Bernoulli(1/2) independently per combinational
// input, using a seeded math/rand source. This PRNG is intentionally
// not cryptographic — §9 flags the fixed default seed as reproducible
// but insecure, distinct from the key-bit generator in keybits.go.
func generateBatches(inputs []netlist.SignalID, n int, seed int64) []*sim.Batch {
	numBatches := (n + sim.WordBits - 1) / sim.WordBits
	if numBatches == 0 {
		numBatches = 1
	}

	rng := rand.New(rand.NewSource(seed))
	batches := make([]*sim.Batch, numBatches)
	for k := range batches {
		b := sim.NewBatch(inputs)
		for _, sig := range inputs {
			b.Words[sig] = rng.Uint64()
		}
		batches[k] = b
	}
	return batches
}
