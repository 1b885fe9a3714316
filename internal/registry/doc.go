// Package registry implements the cast table: a mapping from
// (concrete type, target interface) pairs to type-erased caster descriptors.
//
// Entries are contributed as lazy providers, typically from init() functions
// scattered across independently compiled packages, with no central list to
// edit. The first lookup from any goroutine consumes every provider exactly
// once and materializes the table; from then on the table is immutable and
// reads take no locks. A missing pair is a normal outcome, not an error.
package registry
