// SPDX-License-Identifier: MIT

// Package render prints distance matrices as plain text.
//
// Layout:
//
//   - One line per row, terminated by '\n'.
//   - Cells are separated by the delimiter (DefaultDelimiter, two tabs); there
//     is no delimiter before the first or after the last cell of a row.
//   - matrix.Inf cells are printed as the infinity symbol (DefaultInfSymbol, "INF").
//   - WithHeader() prepends one line holding the column indices.
//   - A 0×0 matrix renders as nothing (and no header line).
//
// Errors: matrix.ErrNilMatrix for a nil matrix; any error of the io.Writer is
// returned unchanged after the "render: " prefix.
package render
