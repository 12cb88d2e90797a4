// SPDX-License-Identifier: MIT

// Command lvgeom evaluates transform pipelines, classifies raw matrices and
// audits the property-tracking engine.
//
//	lvgeom eval camera.yaml
//	lvgeom classify 1 0 0 0  0 1 0 0  0 0 1 0  5 6 7 1
//	lvgeom audit --runs 128 --steps 512 --metrics-file audit.prom
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
