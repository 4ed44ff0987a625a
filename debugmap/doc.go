// Package debugmap writes an optional, human-inspectable dump of a
// planner's cost grid and endpoints, the direct analogue of
// NavFn::savemap.
//
// What:
//
//   - WritePGM writes the cost grid as a raw 8-bit grayscale PGM (P5):
//     a minimal ASCII header followed by the raw cost bytes.
//   - WriteEndpoints writes the goal and start coordinates as plain text.
//
// Why:
//
//   - Both are pure functions of an immutable grid view (plus, for
//     WriteEndpoints, the two coordinate pairs) and an io.Writer supplied
//     by the caller: no file path, no global state, matching the "any
//     file-writing debug aid is a pure function of the engine's immutable
//     view" design note. Callers decide where the bytes land — a file, a
//     buffer, an HTTP response.
//
// Complexity:
//
//   - WritePGM: O(grid.Size).
//   - WriteEndpoints: O(1).
//
// This is deliberately standard-library-only (fmt.Fprintf onto an
// io.Writer): PGM's header is three lines of ASCII followed by a raw byte
// body, which needs nothing beyond what io and fmt already provide.
package debugmap
