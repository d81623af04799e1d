package compare

import (
	"github.com/r3labs/diff/v3"
)

// structuralDiff computes an order-sensitive deep diff between two parsed
// JSON documents. Equality is exact structural equality; there is no
// numeric epsilon and no partial-match tolerance. A field whose type
// changed between versions becomes an update record rather than an error.
func structuralDiff(lhs, rhs interface{}) (diff.Changelog, error) {
	return diff.Diff(lhs, rhs, diff.SliceOrdering(true), diff.AllowTypeMismatch(true))
}
