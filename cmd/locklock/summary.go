//
// summary.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"

	"github.com/markkurossi/logiclock/driver"
	"github.com/markkurossi/text"
)

// writeSummary renders a short HTML summary fragment of a finished run,
// in the same text.Text-based prose style the teacher's doc generator
// uses for its own reports.
func writeSummary(w io.Writer, moduleName string, cfg driver.Config, result *driver.Result) {
	title := text.New().Plainf("Logic locking summary for %s", moduleName)
	fmt.Fprintf(w, "<h2>%s</h2>\n", title.HTML())

	body := text.New().Plainf("Target: %s.", cfg.Target)
	if len(result.Signals) > 0 {
		body = body.Plainf(" Locked %d signal(s)", len(result.Signals)).
			Oblique(fmt.Sprintf("(cover %.2f%%)", result.Cover()*100))
	}
	if len(result.MuxPairs) > 0 {
		body = body.Plainf(" Mixed %d signal pair(s) via MUX.", len(result.MuxPairs))
	}
	fmt.Fprintf(w, "<p>%s</p>\n", body.HTML())
}
