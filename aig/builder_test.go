//
// builder_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aig

import (
	"testing"

	"github.com/markkurossi/logiclock/netlist"
	"github.com/markkurossi/logiclock/netlist/fixtures"
)

func TestBuilderDeterministic(t *testing.T) {
	m := fixtures.TwoInverters()

	a, err := NewBuilder(m).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := NewBuilder(m).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(a.Nodes) != len(b.Nodes) {
		t.Fatalf("non-deterministic node count: %d vs %d", len(a.Nodes), len(b.Nodes))
	}
	for i := range a.Nodes {
		if a.Nodes[i] != b.Nodes[i] {
			t.Fatalf("non-deterministic node %d: %+v vs %+v", i, a.Nodes[i], b.Nodes[i])
		}
	}
}

// TestBuilderAliasesBufAndNot verifies that BUF/NOT cells each get their
// own node rather than sharing their fan-in's node index, since two
// parallel inverters must be independently toggleable.
func TestBuilderAliasesBufAndNot(t *testing.T) {
	m := fixtures.TwoInverters()
	graph, err := NewBuilder(m).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var candidates []netlist.SignalID
	for _, c := range m.Cells() {
		if m.SignalRole(c.Output()) == netlist.RoleInternal {
			candidates = append(candidates, c.Output())
		}
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}

	lit0, ok := graph.Lit(candidates[0])
	if !ok {
		t.Fatalf("no literal for candidate 0")
	}
	lit1, ok := graph.Lit(candidates[1])
	if !ok {
		t.Fatalf("no literal for candidate 1")
	}
	if lit0.Node() == lit1.Node() {
		t.Fatalf("two independent inverters alias the same node: %d", lit0.Node())
	}
}
