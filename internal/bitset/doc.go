// Package bitset provides a dense, fixed-universe membership set over small
// non-negative integers (node ids, variable ids).
//
// Node and variable ids here are dense integers assigned at construction
// time, so a []uint64 bit vector is both faster and more compact than a
// map-backed set for the hot TFO/TFI membership tests.
package bitset
