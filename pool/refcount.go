package pool

// RefCounted is embedded by every type managed through a Pool or a
// HashCons. It replaces the intrusive atomic reference count of
// original_source's allocators.hh with a plain int32 field: spec 5 states
// the exploration model is single-threaded, so there is nothing to
// synchronise.
type RefCounted struct {
	refs int32
}

// RefCount returns the current reference count.
func (r *RefCounted) RefCount() int32 { return r.refs }

func (r *RefCounted) incRef() int32 {
	r.refs++
	return r.refs
}

func (r *RefCounted) decRef() int32 {
	r.refs--
	return r.refs
}

func (r *RefCounted) resetRef() { r.refs = 0 }

// Ref is satisfied by any pointer type embedding RefCounted; Pool and
// HashCons operate on T Ref so they can manage sharing without knowing
// the concrete payload type.
type Ref interface {
	comparable
	RefCount() int32
	incRef() int32
	decRef() int32
	resetRef()
}
