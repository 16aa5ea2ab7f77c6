//
// candidates.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package driver

import "github.com/markkurossi/logiclock/netlist"

// enumerateCandidates implements §4.6 step 1: outputs of supported
// combinational cells are locking candidates. When includeInputs is
// set (the §9 open-question relaxation), combinational inputs are
// appended too, demonstrating that nothing below candidate enumeration
// needs to change to support locking on primary inputs.
func enumerateCandidates(module netlist.Module, includeInputs bool) []netlist.SignalID {
	var out []netlist.SignalID
	seen := make(map[netlist.SignalID]bool)
	for _, cell := range module.Cells() {
		sig := cell.Output()
		if module.SignalRole(sig) == netlist.RoleInternal && !seen[sig] {
			seen[sig] = true
			out = append(out, sig)
		}
	}
	if includeInputs {
		out = append(out, module.CombinationalInputs()...)
	}
	return out
}
