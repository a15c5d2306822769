// Package criterion implements boolean predicates over bridge hands and the
// algebra that combines them.
//
// # Core Types
//
// Criterion: the predicate interface, closed under Invert, Union and
// Intersect.
//
// Choice: the atomic criterion "the value read by an Extractor lies in a
// ValueSet". Extractors read a suit length, a named attribute such as
// balanced-ness, or a named query such as points, each over a bounded
// universe, so inverting a Choice is exact.
//
// HandRange: a conjunction over a fixed schema (points, four suit lengths,
// balanced) used to describe the hands behind a bid.
//
// And, Or, Negation, Func: compound and opaque nodes used when operands
// cannot be merged structurally.
//
// # Laws
//
// For every hand h and criteria a and b:
//
//	a.Invert().Match(h)       == !a.Match(h)
//	a.Union(b).Match(h)       == a.Match(h) || b.Match(h)
//	a.Intersect(b).Match(h)   == a.Match(h) && b.Match(h)
//	Always.Intersect(a)       matches like a
//	Always.Union(a)           matches every hand
//
// The generic operations never fail. The strict operations Choice.UnionWith,
// Choice.IntersectWith and HandRange.UnionWith return
// ErrIncompatibleCriteria instead of falling back to a compound node.
package criterion
