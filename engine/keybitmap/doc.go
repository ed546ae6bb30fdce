// Package keybitmap implements a bounded bit-vector allocator used by
// the attribute engine to hand out integer keyval keys from a single
// shared namespace.
//
// # Overview
//
// A Bitmap starts with a fixed maximum size (the platform's Fortran
// handle bound) and grows its backing storage lazily as bits below that
// bound are set. Allocate finds the lowest unset bit, sets it, and
// returns its index; Clear returns a bit to the free pool. Bits can also
// be pre-marked allocated directly (Set) to reserve a fixed range of
// predefined indices before any dynamic allocation happens.
//
// Unlike an allocator for variable-size byte cells, keys here are
// fixed-size integers, so there is no size-class table, no cell
// splitting, and no growth-by-pages logic — just a bound and a scan.
package keybitmap
