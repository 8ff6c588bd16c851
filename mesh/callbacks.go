package mesh

// The observer registry keeps dependent state valid across structural
// edits. Containers and dynamic handles subscribe to three event streams:
//
//   - expand: a buffer grew; the argument is the new capacity. Fired by
//     every mutator that allocates elements, before the mutator returns.
//   - permute: Compress (or Canonicalize) relocated slots; the argument
//     is a permutation p with new[i] = old[p[i]], sized to the new
//     capacity.
//   - mesh deleted: Close was called; subscribers must detach and must
//     not attempt to cancel their subscriptions afterwards.
//
// All callbacks run synchronously on the mutating goroutine.

// ElementKind tags the element families of the mesh. Corners share slots
// with interior halfedges but form their own subscription kind.
type ElementKind uint8

const (
	VertexKind ElementKind = iota
	HalfedgeKind
	CornerKind
	EdgeKind
	FaceKind
	BoundaryLoopKind

	nElementKinds
)

// String returns a short name for the kind.
func (k ElementKind) String() string {
	switch k {
	case VertexKind:
		return "vertex"
	case HalfedgeKind:
		return "halfedge"
	case CornerKind:
		return "corner"
	case EdgeKind:
		return "edge"
	case FaceKind:
		return "face"
	case BoundaryLoopKind:
		return "boundary loop"
	default:
		return "unknown"
	}
}

// Subscription identifies one registered callback. Cancel removes it;
// cancelling twice, or after the mesh-deleted notification, is a no-op.
type Subscription struct {
	cancel func()
	active bool
}

// Cancel unregisters the callback.
func (s *Subscription) Cancel() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	s.cancel()
}

type expandEntry struct {
	id uint64
	fn func(newCap int)
}

type permuteEntry struct {
	id uint64
	fn func(p []int)
}

type deletedEntry struct {
	id uint64
	fn func()
}

type callbackRegistry struct {
	nextID  uint64
	expand  [nElementKinds][]expandEntry
	permute [nElementKinds][]permuteEntry
	deleted []deletedEntry
}

// OnExpand subscribes fn to buffer-growth events for one element kind.
func (m *Mesh) OnExpand(kind ElementKind, fn func(newCap int)) *Subscription {
	r := &m.callbacks
	r.nextID++
	id := r.nextID
	r.expand[kind] = append(r.expand[kind], expandEntry{id, fn})

	return &Subscription{active: true, cancel: func() {
		for i, e := range r.expand[kind] {
			if e.id == id {
				r.expand[kind] = append(r.expand[kind][:i], r.expand[kind][i+1:]...)

				return
			}
		}
	}}
}

// OnPermute subscribes fn to compaction events for one element kind.
func (m *Mesh) OnPermute(kind ElementKind, fn func(p []int)) *Subscription {
	r := &m.callbacks
	r.nextID++
	id := r.nextID
	r.permute[kind] = append(r.permute[kind], permuteEntry{id, fn})

	return &Subscription{active: true, cancel: func() {
		for i, e := range r.permute[kind] {
			if e.id == id {
				r.permute[kind] = append(r.permute[kind][:i], r.permute[kind][i+1:]...)

				return
			}
		}
	}}
}

// OnMeshDeleted subscribes fn to the teardown notification fired by Close.
func (m *Mesh) OnMeshDeleted(fn func()) *Subscription {
	r := &m.callbacks
	r.nextID++
	id := r.nextID
	r.deleted = append(r.deleted, deletedEntry{id, fn})

	return &Subscription{active: true, cancel: func() {
		for i, e := range r.deleted {
			if e.id == id {
				r.deleted = append(r.deleted[:i], r.deleted[i+1:]...)

				return
			}
		}
	}}
}

func (r *callbackRegistry) fireExpand(kind ElementKind, newCap int) {
	// Snapshot: a callback may subscribe or cancel while we iterate.
	entries := append([]expandEntry(nil), r.expand[kind]...)
	for _, e := range entries {
		e.fn(newCap)
	}
}

func (r *callbackRegistry) firePermute(kind ElementKind, p []int) {
	entries := append([]permuteEntry(nil), r.permute[kind]...)
	for _, e := range entries {
		e.fn(p)
	}
}

func (r *callbackRegistry) fireMeshDeleted() {
	entries := append([]deletedEntry(nil), r.deleted...)
	r.deleted = nil
	for _, e := range entries {
		e.fn()
	}
}
