// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/apsp/matrix"
)

const opWrite = "render: Write"

// Write prints m to w, one row per line.
//
// Output goes through a bufio.Writer; the first error of w is returned.
// Complexity: O(n²).
func Write(w io.Writer, m *matrix.Dense, opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("%s: %w", opWrite, err)
	}
	o := gatherOptions(opts...)
	n := m.Order()
	if n == 0 {
		return nil
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24) // fits any int64

	// 1) Optional header of column indices.
	if o.header {
		for j := 0; j < n; j++ {
			if j > 0 {
				bw.WriteString(o.delimiter)
			}
			bw.Write(strconv.AppendInt(buf[:0], int64(j), 10))
		}
		bw.WriteByte('\n')
	}

	// 2) Rows.
	var (
		i, j int
		d    matrix.Distance
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j > 0 {
				bw.WriteString(o.delimiter)
			}
			if d, err = m.At(i, j); err != nil {
				return fmt.Errorf("%s: %w", opWrite, err)
			}
			if d.IsInf() {
				bw.WriteString(o.infSymbol)
				continue
			}
			bw.Write(strconv.AppendInt(buf[:0], int64(d), 10))
		}
		bw.WriteByte('\n')
	}

	// bufio keeps the first write error; Flush reports it.
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", opWrite, err)
	}

	return nil
}

// String renders m into a string. See Write for the layout.
func String(m *matrix.Dense, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, m, opts...); err != nil {
		return "", err
	}

	return sb.String(), nil
}
