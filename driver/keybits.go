//
// keybits.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package driver

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// secureKeyBits draws n independent, secret key-bit values from a
// chacha20 keystream freshly keyed from crypto/rand. Unlike the
// fixed-seed test-vector PRNG in vectors.go, this path must never be
// reproducible — it backs the actual key the gate-insertion
// collaborator will wire into the locked netlist.
func secureKeyBits(n int) ([]bool, error) {
	if n == 0 {
		return nil, nil
	}

	var key [chacha20.KeySize]byte
	if _, err := rand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("driver: generating key stream key: %w", err)
	}
	var nonce [chacha20.NonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("driver: generating key stream nonce: %w", err)
	}

	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, fmt.Errorf("driver: initializing key stream: %w", err)
	}

	numBytes := (n + 7) / 8
	zero := make([]byte, numBytes)
	stream := make([]byte, numBytes)
	cipher.XORKeyStream(stream, zero)

	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = stream[i/8]&(1<<uint(i%8)) != 0
	}
	return bits, nil
}
