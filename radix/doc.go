// Package radix implement an ordered key-value index as a
// path-compressed radix tree persisted through a pluggable key-value
// store. Tree nodes are opaque records inside any backend exposing
// get/set/delete by string key, only label fragments are stored so
// keys share prefixes on disk.
//
// Concurrency: every tree handle bound to the same store shares one
// read/write gate. Point reads and View scans hold it shared, Set and
// Delete hold it exclusive, so a mutation is never observed half
// applied. A stalled store call while holding the gate blocks every
// later operation on that store, there is no timeout.
//
// Persisted layout, reproduced bit-for-bit for interoperability:
//
//	"_"          root node record
//	"#"          next unallocated ordinal, an integer
//	<base-36 id> non-root node record
//
// A node record is a sequence of [label, target] pairs, target either
// a bare node-id string or a single-element sequence wrapping encoded
// leaf text.
package radix
