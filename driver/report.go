//
// report.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package driver

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// Report renders the locked-cell, key-bit, and (where applicable)
// cumulative corruption-cover table to w.
func (r *Result) Report(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("#").SetAlign(tabulate.MR)
	tab.Header("Signal").SetAlign(tabulate.ML)
	tab.Header("Key bit").SetAlign(tabulate.MR)
	if len(r.coverCurve) > 0 {
		tab.Header("Cover").SetAlign(tabulate.MR)
	}

	for i, name := range r.names {
		row := tab.Row()
		row.Column(fmt.Sprintf("%d", i+1))
		row.Column(name)
		row.Column(fmt.Sprintf("%v", r.KeyBits[i]))
		if len(r.coverCurve) > 0 {
			row.Column(fmt.Sprintf("%.2f%%", r.coverCurve[i]*100))
		}
	}

	for i, pair := range r.MuxPairs {
		row := tab.Row()
		row.Column(fmt.Sprintf("mux%d", i+1))
		row.Column(fmt.Sprintf("%v / %v", pair[0], pair[1]))
		row.Column(fmt.Sprintf("%v", r.MuxKeyBits[i])).SetFormat(tabulate.FmtItalic)
	}

	tab.Print(w)
}

// Cover returns the final corruption cover achieved, or 0 for the
// Pairwise target (which has no coverage notion) and for explicit
// lock-gate/mix-gate overrides.
func (r *Result) Cover() float64 {
	if len(r.coverCurve) == 0 {
		return 0
	}
	return r.coverCurve[len(r.coverCurve)-1]
}
