// Package covreach implements spec 4.6.2's covering reachability: a
// worklist search identical in shape to reach, except every freshly
// discovered successor is checked against the stored active nodes under
// a configurable subsumption policy (plain inclusion, aLU or aM, each
// global or local) before being admitted, and every admission in turn
// retires any previously-stored node it subsumes.
package covreach
