// Package zone wraps a dbm.DBM with its dimension into the symbolic clock
// component of a composed state (spec 3.3, 4.2). Zones are
// content-addressed: two zones with equal tight DBMs are considered the
// same value and hash to the same bucket.
//
// This package never exposes a non-tight non-empty DBM: every constructor
// and mutator here either starts from an already-tight dbm.DBM or closes it
// before returning.
package zone
