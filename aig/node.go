//
// node.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aig

import "github.com/markkurossi/logiclock/netlist"

// Kind identifies the role a Node plays.
type Kind byte

// Node kinds.
const (
	// KindConst is the single constant-zero sentinel at index 0.
	KindConst Kind = iota
	// KindInput carries an external combinational-input signal.
	KindInput
	// KindAnd is a two-input AND gate over two fan-in literals.
	KindAnd
)

func (k Kind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindInput:
		return "input"
	case KindAnd:
		return "and"
	default:
		return "?"
	}
}

// Node is one entry of the AIG's append-only node array. Fields not
// relevant to Kind are zero. AND fan-ins always reference lower-indexed
// nodes, so a single forward pass over Nodes suffices to evaluate any
// node.
type Node struct {
	Kind Kind

	// Signal is set for KindInput: the combinational-input signal this
	// node represents.
	Signal netlist.SignalID

	// Fanin0, Fanin1 are set for KindAnd: the two AND fan-in literals.
	Fanin0, Fanin1 Lit
}
