package pool

import "errors"

// ErrCellNotOwned names the illegal-usage class of handing a pool a cell
// that did not come from it (a double-free or a cross-pool release),
// mirroring the teacher's errors.go convention of one sentinel per
// illegal-usage class. Pool does not track cell ownership and never
// returns it.
var ErrCellNotOwned = errors.New("pool: cell not owned by this pool")

// ErrNegativeRelease is returned by Destruct when the cell's reference
// count is already zero or below.
var ErrNegativeRelease = errors.New("pool: release of cell with zero refcount")
