// SPDX-License-Identifier: MIT

// Command matchbench benchmarks the blossom matching engine on generated
// graphs.
//
//	matchbench run --config bench.yaml --out results.csv --metrics-addr :9090
//	matchbench solve --generator erdos-renyi --nodes 500 --probability 0.1 --seed 3
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "matchbench:", err)
		os.Exit(1)
	}
}
