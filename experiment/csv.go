// SPDX-License-Identifier: MIT

package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/multicut/counter"
	"github.com/katalvlaran/multicut/matching"
)

// csvOps are the operation columns, in output order.
var csvOps = []counter.Op{
	matching.OpSearch,
	matching.OpArc,
	matching.OpContraction,
	matching.OpExpansion,
	matching.OpAugmentation,
	matching.OpBFSVisit,
}

// CSVHeader is the first row written by WriteCSV.
func CSVHeader() []string {
	h := []string{
		"run_id", "instance", "repetition", "seed", "nodes", "edges",
		"matching_size", "at_least", "satisfied", "status", "duration_ms",
	}
	for _, op := range csvOps {
		h = append(h, string(op))
	}

	return append(h, "error")
}

// WriteCSV writes a header and one row per result.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.RunID.String(),
			r.Instance,
			strconv.Itoa(r.Repetition),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.Edges),
			strconv.Itoa(r.MatchingSize),
			strconv.Itoa(r.AtLeast),
			strconv.FormatBool(r.Satisfied),
			string(r.Status),
			strconv.FormatFloat(float64(r.Duration.Microseconds())/1000, 'f', 3, 64),
		}
		for _, op := range csvOps {
			row = append(row, strconv.FormatInt(r.Ops[op], 10))
		}
		row = append(row, r.Err)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.RunID, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
