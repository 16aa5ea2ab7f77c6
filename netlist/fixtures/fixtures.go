//
// fixtures.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package fixtures builds small, in-memory netlist.Module values for
// the end-to-end scenarios spec'd for the logic-locking engine: two
// parallel inverters, a buffer chain, an exposed-input XOR, a MUX, a
// full adder, and a clique-plus-singletons circuit. These are test
// scaffolding, not a netlist parser — production netlists are supplied
// by an external collaborator per the engine's contract.
package fixtures

import "github.com/markkurossi/logiclock/netlist"

// Module is a minimal, hand-built netlist.Module.
type Module struct {
	name    string
	cells   []netlist.Cell
	roles   map[netlist.SignalID]netlist.SignalRole
	names   map[netlist.SignalID]string
	combIn  []netlist.SignalID
	combOut []netlist.SignalID
	next    netlist.SignalID
}

// New creates an empty module named name.
func New(name string) *Module {
	return &Module{
		name:  name,
		roles: make(map[netlist.SignalID]netlist.SignalRole),
		names: make(map[netlist.SignalID]string),
	}
}

// signal allocates a fresh signal with the given name and role.
func (m *Module) signal(name string, role netlist.SignalRole) netlist.SignalID {
	id := m.next
	m.next++
	m.roles[id] = role
	m.names[id] = name
	switch role {
	case netlist.RoleCombIn:
		m.combIn = append(m.combIn, id)
	case netlist.RoleCombOut:
		m.combOut = append(m.combOut, id)
	}
	return id
}

// in allocates a fresh combinational input.
func (m *Module) in(name string) netlist.SignalID {
	return m.signal(name, netlist.RoleCombIn)
}

// internal allocates a fresh internal (candidate) signal.
func (m *Module) internal(name string) netlist.SignalID {
	return m.signal(name, netlist.RoleInternal)
}

// cell appends a combinational cell driving output from inputs.
func (m *Module) cell(name string, typ netlist.CellType, output netlist.SignalID, inputs ...netlist.SignalID) {
	m.cells = append(m.cells, netlist.Cell{
		Name:    name,
		Type:    typ,
		Inputs:  inputs,
		Outputs: []netlist.SignalID{output},
	})
}

// observe allocates a fresh combinational output wired straight through
// a buffer from an internal candidate signal, the way a synthesizer
// leaves the driving cell's own wire as the internal candidate while a
// distinct port object represents the externally observable pin.
func (m *Module) observe(name string, from netlist.SignalID) netlist.SignalID {
	out := m.signal(name, netlist.RoleCombOut)
	m.cell(name+"_obs", netlist.CellBuf, out, from)
	return out
}

// Name implements netlist.Module.
func (m *Module) Name() string { return m.name }

// Cells implements netlist.Module.
func (m *Module) Cells() []netlist.Cell { return m.cells }

// SignalRole implements netlist.Module.
func (m *Module) SignalRole(id netlist.SignalID) netlist.SignalRole { return m.roles[id] }

// SignalName implements netlist.Module.
func (m *Module) SignalName(id netlist.SignalID) string { return m.names[id] }

// CombinationalInputs implements netlist.Module.
func (m *Module) CombinationalInputs() []netlist.SignalID { return m.combIn }

// CombinationalOutputs implements netlist.Module.
func (m *Module) CombinationalOutputs() []netlist.SignalID { return m.combOut }

// AllocInput implements netlist.Module.
func (m *Module) AllocInput(width int) []netlist.SignalID {
	ids := make([]netlist.SignalID, width)
	for i := range ids {
		ids[i] = m.in("key")
	}
	return ids
}

// TwoInverters builds two independent inverters over two independent
// inputs. Candidates: the two inverter outputs. With any non-trivial
// test vectors, the pair is pairwise-secure.
func TwoInverters() *Module {
	m := New("two_inverters")
	a := m.in("a")
	b := m.in("b")
	o0 := m.internal("inv0_out")
	o1 := m.internal("inv1_out")
	m.cell("inv0", netlist.CellNot, o0, a)
	m.cell("inv1", netlist.CellNot, o1, b)
	m.observe("o0", o0)
	m.observe("o1", o1)
	return m
}

// BufferChain3 builds a chain of three buffers. All three outputs are
// same-impact on every vector, so the pairwise graph is empty.
func BufferChain3() *Module {
	m := New("buffer_chain")
	a := m.in("a")
	w1 := m.internal("w1")
	w2 := m.internal("w2")
	w3 := m.internal("w3")
	m.cell("buf0", netlist.CellBuf, w1, a)
	m.cell("buf1", netlist.CellBuf, w2, w1)
	m.cell("buf2", netlist.CellBuf, w3, w2)
	m.observe("out", w3)
	return m
}

// XorExposedInputs builds out = XOR(a,b) with a and b's buffered copies
// exposed as candidates alongside the XOR's own output. The two input
// candidates are pairwise-secure relative to each other, but the XOR
// output has the same impact as toggling either input.
func XorExposedInputs() *Module {
	m := New("xor_exposed")
	a := m.in("a")
	b := m.in("b")

	ca := m.internal("ca")
	cb := m.internal("cb")
	xo := m.internal("xor0_out")
	m.cell("bufa", netlist.CellBuf, ca, a)
	m.cell("bufb", netlist.CellBuf, cb, b)
	m.cell("xor0", netlist.CellXor, xo, ca, cb)
	m.observe("out", xo)
	return m
}

// Mux builds out = MUX(d0, d1, s) with d0, d1, s each driven through a
// buffer and exposed as candidates. With vectors covering every
// select/data combination, d0 and d1 are pairwise-secure with each
// other but not with s.
func Mux() *Module {
	m := New("mux")
	d0 := m.in("d0")
	d1 := m.in("d1")
	sel := m.in("sel")

	cd0 := m.internal("cd0")
	cd1 := m.internal("cd1")
	cs := m.internal("cs")
	muxo := m.internal("mux0_out")
	m.cell("bufd0", netlist.CellBuf, cd0, d0)
	m.cell("bufd1", netlist.CellBuf, cd1, d1)
	m.cell("bufs", netlist.CellBuf, cs, sel)
	m.cell("mux0", netlist.CellMux, muxo, cd0, cd1, cs)
	m.observe("out", muxo)
	return m
}

// FullAdder builds a one-bit full adder: sum = a XOR b XOR cin, cout =
// majority(a,b,cin), exposing the internal half-adder XOR node, sum,
// and cout as candidates.
func FullAdder() *Module {
	m := New("full_adder")
	a := m.in("a")
	b := m.in("b")
	cin := m.in("cin")

	axb := m.internal("axb")
	sum := m.internal("sum")
	aandb := m.internal("aandb")
	axbandc := m.internal("axbandc")
	cout := m.internal("cout")

	m.cell("xor0", netlist.CellXor, axb, a, b)
	m.cell("xor1", netlist.CellXor, sum, axb, cin)
	m.cell("and0", netlist.CellAnd, aandb, a, b)
	m.cell("and1", netlist.CellAnd, axbandc, axb, cin)
	m.cell("or0", netlist.CellOr, cout, aandb, axbandc)

	m.observe("sum_out", sum)
	m.observe("cout_out", cout)
	return m
}

// CliquePlusSingletons builds a module whose candidate set contains one
// group of four mutually pairwise-secure signals (four independent
// inverters over four independent inputs) plus numSingletons chained
// buffer candidates, each observed on its own output, that are
// pairwise-secure with nothing.
func CliquePlusSingletons(numSingletons int) *Module {
	m := New("clique_plus_singletons")

	for i := 0; i < 4; i++ {
		name := string(rune('a' + i))
		in := m.in(name + "_in")
		out := m.internal(name + "_inv_out")
		m.cell(name+"_inv", netlist.CellNot, out, in)
		m.observe(name+"_out", out)
	}

	base := m.in("s_in")
	prev := base
	for i := 0; i < numSingletons; i++ {
		name := singletonName(i)
		w := m.internal(name)
		m.cell(name, netlist.CellBuf, w, prev)
		m.observe(name+"_out", w)
		prev = w
	}
	return m
}

func singletonName(i int) string {
	return "buf" + string(rune('0'+i))
}
