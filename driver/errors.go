//
// errors.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package driver

import "errors"

// ErrInvalidConfiguration is returned for an out-of-range key-percent,
// an nb-test-vectors below 4, an unknown optimization target, or a
// mutually exclusive flag combination.
var ErrInvalidConfiguration = errors.New("driver: invalid configuration")

// ErrInvalidKey is returned when an explicit key is malformed or
// shorter than the selected budget.
var ErrInvalidKey = errors.New("driver: invalid key")

// ErrSelectionImpossible is returned when an explicit lock-gate or
// mix-gate override names a signal that no cell of the module drives.
var ErrSelectionImpossible = errors.New("driver: selection impossible")
