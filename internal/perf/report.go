package perf

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes one row per sample: op, length, slice_ns, list_ns.
func WriteCSV(w io.Writer, results ...Result) error {
	var cw = csv.NewWriter(w)
	if err := cw.Write([]string{"op", "length", "slice_ns", "list_ns"}); err != nil {
		return err
	}
	for _, res := range results {
		for _, s := range res.Samples {
			var row = []string{
				string(res.Op),
				strconv.Itoa(s.Length),
				strconv.FormatInt(s.Slice.Nanoseconds(), 10),
				strconv.FormatInt(s.List.Nanoseconds(), 10),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
