//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/markkurossi/logiclock/driver"
)

var (
	target        = flag.String("target", "pairwise", "optimization target: pairwise, corruption, hybrid")
	keyPercent    = flag.Float64("key-percent", 5, "key-bit budget as a percentage of combinational cells")
	keyBits       = flag.Int("key-bits", 0, "absolute key-bit budget; overrides -key-percent when > 0")
	nbTestVectors = flag.Int("nb-test-vectors", 1024, "number of test vectors to simulate")
	seed          = flag.Int64("seed", 1, "test-vector PRNG seed")
	includeInputs = flag.Bool("include-inputs", false, "allow primary inputs as locking candidates")
	lockGate      = flag.String("lock-gate", "", "lock exactly this signal, bypassing the optimizer")
	mixGate0      = flag.String("mix-gate-a", "", "first signal of an explicit MUX mix, bypassing the optimizer")
	mixGate1      = flag.String("mix-gate-b", "", "second signal of an explicit MUX mix, bypassing the optimizer")
	key           = flag.String("key", "", "")
	report        = flag.Bool("report", false, "print the coverage-vs-locked-cells report")
	summary       = flag.Bool("summary", false, "print an HTML run summary")
)

func main() {
	flag.Parse()

	if *key != "" {
		log.Fatal("-key: parsing a caller-supplied key is a gate-insertion collaborator concern, not this engine's")
	}

	objective, err := driver.ParseObjective(*target)
	if err != nil {
		log.Fatal(err)
	}

	cfg := driver.Config{
		Target:        objective,
		KeyBits:       *keyBits,
		KeyPercent:    *keyPercent,
		NumVectors:    *nbTestVectors,
		Seed:          *seed,
		IncludeInputs: *includeInputs,
		LockGate:      *lockGate,
		MixGate:       [2]string{*mixGate0, *mixGate1},
	}

	for _, file := range flag.Args() {
		module, err := loadBenchFile(file)
		if err != nil {
			log.Fatal(err)
		}

		result, err := driver.Run(module, cfg)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("%s: locked %d signal(s), mixed %d pair(s)\n",
			module.Name(), len(result.Signals), len(result.MuxPairs))

		if *report {
			result.Report(os.Stdout)
		}
		if *summary {
			writeSummary(os.Stdout, module.Name(), cfg, result)
		}
	}
}
