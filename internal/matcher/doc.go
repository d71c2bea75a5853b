// Package matcher resolves playlist references against the local file index.
//
// Resolution is stem-gated: only local files whose filename stem exactly
// matches the reference's stem are considered. Among those, candidates are
// scored by how many trailing directory components they share with the
// reference (counted from the immediate parent outward until the first
// mismatch), with an equal-extension tie-break. When one path's directory
// chain is a pure suffix of the other's, no divergence is found inside the
// overlap and the score stays at its zero default; this mirrors the historical
// behavior of the tool and callers depend on the resulting tie-breaks.
//
// Resolution is greedy and per-reference: candidates are never reserved, so
// two references may resolve to the same local file.
package matcher
