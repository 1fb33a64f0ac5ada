package batchconfig

import (
	"runtime"

	"github.com/rbxasset/meshconv/cmd/meshconv/config"
)

const (
	subsection = "batch"
)

// Workers returns the value of "workers" config parameter
// from "batch" section.
//
// Returns the number of available CPUs if the value is not
// a positive number.
func Workers(c *config.Config) int {
	v := config.IntSafe(c.Sub(subsection), "workers")
	if v > 0 {
		return int(v)
	}

	return runtime.NumCPU()
}
