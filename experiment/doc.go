// SPDX-License-Identifier: MIT

// Package experiment runs batches of matching benchmarks described by a
// YAML configuration and writes one CSV row per run.
//
// A Config lists instances (generator, size, seed, repetitions). The Runner
// builds every (instance, repetition) graph with package builder, solves it
// with FindMaximumMatching, or with HasMatchingOfAtLeast when the instance
// asks for a threshold, and records the operation counts of the run.
// Runs execute in parallel up to Config.Parallelism; each run is bounded by
// Config.Timeout and reported as timed out when it overruns.
package experiment
