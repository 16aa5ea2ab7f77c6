//
// errors.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aig

import "errors"

// ErrUnsupportedCell is returned when the builder encounters a cell
// type it cannot lower.
var ErrUnsupportedCell = errors.New("aig: unsupported cell type")

// ErrMalformedNetlist is returned for a combinational cycle, a missing
// port, or a cell output with no driver.
var ErrMalformedNetlist = errors.New("aig: malformed netlist")
