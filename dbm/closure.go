package dbm

// Close runs the full Floyd-Warshall closure over d in place, restoring
// tightness from an arbitrary consistent starting matrix. The loop order is
// fixed (k -> i -> j) and all temporaries are predeclared, mirroring the
// APSP discipline this kernel's ancestor used for dense adjacency matrices:
// deterministic accumulation, no per-iteration allocation.
//
// Returns NonEmpty if the result is tight and consistent, Empty if a
// negative cycle was found (some dbm[i,i] < (<=,0)); in that case d is left
// flagged empty (dbm[0,0] set to (<,0)) and must not otherwise be read.
func (d *DBM) Close() Outcome {
	n := d.dim
	var i, j, k int
	var ik, kj, viaK Bound

	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			ik = d.At(i, k)
			if ik.IsInfinity() {
				continue
			}
			for j = 0; j < n; j++ {
				kj = d.At(k, j)
				if kj.IsInfinity() {
					continue
				}
				viaK = Add(ik, kj)
				if Cmp(viaK, d.At(i, j)) < 0 {
					d.set(i, j, viaK)
				}
			}
		}
	}

	return d.finishClosure()
}

// CloseFrom restores tightness incrementally after only the edge (y,x) (i.e.
// dbm[x,y]) has changed, per spec 4.1: for all u,v, dbm[u,v] <- min(dbm[u,v],
// dbm[u,x]+dbm[x,v]), then, in a second pass over the updated matrix, the
// same through y. Runs in O(dim^2).
func (d *DBM) CloseFrom(x, y int) Outcome {
	n := d.dim
	var u, v int
	var ux, xv, uy, yv, cand Bound

	for u = 0; u < n; u++ {
		ux = d.At(u, x)
		for v = 0; v < n; v++ {
			if !ux.IsInfinity() {
				xv = d.At(x, v)
				if !xv.IsInfinity() {
					cand = Add(ux, xv)
					if Cmp(cand, d.At(u, v)) < 0 {
						d.set(u, v, cand)
					}
				}
			}
		}
	}
	for u = 0; u < n; u++ {
		uy = d.At(u, y)
		for v = 0; v < n; v++ {
			if !uy.IsInfinity() {
				yv = d.At(y, v)
				if !yv.IsInfinity() {
					cand = Add(uy, yv)
					if Cmp(cand, d.At(u, v)) < 0 {
						d.set(u, v, cand)
					}
				}
			}
		}
	}

	return d.finishClosure()
}

// finishClosure checks every diagonal for a negative cycle and, if found,
// collapses d to the canonical empty representation.
func (d *DBM) finishClosure() Outcome {
	for i := 0; i < d.dim; i++ {
		if Cmp(d.At(i, i), Zero) < 0 {
			d.collapseEmpty()
			return Empty
		}
	}
	return NonEmpty
}

// collapseEmpty flags d as empty. Other entries are left as-is; spec 3.2
// only requires dbm[0,0] < (<=,0) as the sentinel, so this is sufficient and
// avoids an unnecessary O(dim^2) write.
func (d *DBM) collapseEmpty() {
	d.set(0, 0, LT(0))
}
