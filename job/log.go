// SPDX-License-Identifier: MIT
//
// File: log.go
// Role: Append-only text rendering of Reports.

package job

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Separator closes every report block.
var Separator = strings.Repeat("*", 64)

// WriteLog renders rep to w. Parameters are listed in name order as compact
// JSON, results in method order.
func WriteLog(w io.Writer, rep *Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Run: %s\n", rep.RunID)
	fmt.Fprintln(bw, "Parameters:")
	names := maps.Keys(rep.Parameters)
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(bw, "%s: %s\n", name, compact(rep.Parameters[name]))
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Results:")
	for _, res := range rep.Results {
		fmt.Fprintln(bw, res.Line())
	}
	fmt.Fprintln(bw, Separator)
	fmt.Fprintln(bw)

	return bw.Flush()
}

// AppendLog appends rep to the file at path, creating it when missing.
func AppendLog(path string, rep *Report) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("job: open log: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("job: close log: %w", cerr)
		}
	}()
	if err := WriteLog(f, rep); err != nil {
		return fmt.Errorf("job: write log: %w", err)
	}

	return nil
}

func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}

	return buf.String()
}
