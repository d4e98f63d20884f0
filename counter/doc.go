// SPDX-License-Identifier: MIT

// Package counter records how many elementary operations an algorithm
// performs. Sinks are passed explicitly to the algorithms that report to
// them; there is no package-level counter.
//
// Sinks:
//
//   - *Counter          in-memory totals per operation, safe for concurrent use.
//   - Discard           drops every report.
//   - *PrometheusSink   exports totals as a prometheus CounterVec labelled by op.
//   - Multi(sinks...)   fans one report out to several sinks.
package counter
