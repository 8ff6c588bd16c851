package mesh

// Containers associate one value of type T with every element of one
// kind. Storage is a flat buffer indexed by raw slot, sized to the
// element capacity, so lookups are a single bounds-checked load. Each
// container subscribes to its kind's expand and permute events and to
// the mesh-deleted notification, so it stays consistent through buffer
// growth and Compress without any action from the caller.

type meshData[T any] struct {
	mesh     *Mesh
	def      T
	buf      []T
	subs     []*Subscription
	detached bool
}

func newMeshData[T any](m *Mesh, kind ElementKind, capacity int, def T) *meshData[T] {
	d := &meshData[T]{mesh: m, def: def, buf: make([]T, capacity)}
	for i := range d.buf {
		d.buf[i] = def
	}
	d.subs = []*Subscription{
		m.OnExpand(kind, d.onExpand),
		m.OnPermute(kind, d.onPermute),
	}
	d.subs = append(d.subs, m.OnMeshDeleted(d.detach))

	return d
}

func (d *meshData[T]) onExpand(newCap int) {
	if newCap <= len(d.buf) {
		return
	}
	grown := make([]T, newCap)
	copy(grown, d.buf)
	for i := len(d.buf); i < newCap; i++ {
		grown[i] = d.def
	}
	d.buf = grown
}

func (d *meshData[T]) onPermute(p []int) {
	rebuilt := make([]T, len(p))
	for i, old := range p {
		rebuilt[i] = d.buf[old]
	}
	d.buf = rebuilt
}

// detach cancels the subscriptions; the buffer stays readable but no
// longer tracks the mesh.
func (d *meshData[T]) detach() {
	if d.detached {
		return
	}
	d.detached = true
	for _, s := range d.subs {
		s.Cancel()
	}
	d.subs = nil
}

func (d *meshData[T]) fill(v T) {
	d.def = v
	for i := range d.buf {
		d.buf[i] = v
	}
}

func (d *meshData[T]) checkOwner(owner *Mesh) {
	if owner != d.mesh {
		panic("mesh: container and handle belong to different meshes")
	}
}

// == VertexData

// VertexData maps every vertex to a value of type T.
type VertexData[T any] struct{ core *meshData[T] }

// NewVertexData returns a vertex container holding the zero value of T.
func NewVertexData[T any](m *Mesh) *VertexData[T] {
	var zero T

	return NewVertexDataWithDefault(m, zero)
}

// NewVertexDataWithDefault returns a vertex container; every current and
// future vertex starts at def.
func NewVertexDataWithDefault[T any](m *Mesh, def T) *VertexData[T] {
	return &VertexData[T]{newMeshData(m, VertexKind, m.NVerticesCapacity(), def)}
}

// NewVertexDataFromVector returns a vertex container loaded from a dense
// vector under the given index assignment.
func NewVertexDataFromVector[T any](m *Mesh, vec []T, idx *VertexData[int]) *VertexData[T] {
	d := NewVertexData[T](m)
	d.FromVector(vec, idx)

	return d
}

// Mesh returns the mesh the container is attached to.
func (d *VertexData[T]) Mesh() *Mesh { return d.core.mesh }

// GetSlot returns the value at a raw vertex slot.
func (d *VertexData[T]) GetSlot(i int) T { return d.core.buf[i] }

// SetSlot stores a value at a raw vertex slot.
func (d *VertexData[T]) SetSlot(i int, val T) { d.core.buf[i] = val }

// Get returns the value stored for v.
func (d *VertexData[T]) Get(v Vertex) T {
	d.core.checkOwner(v.mesh)

	return d.core.buf[v.ind]
}

// Set stores a value for v.
func (d *VertexData[T]) Set(v Vertex, val T) {
	d.core.checkOwner(v.mesh)
	d.core.buf[v.ind] = val
}

// Fill sets every slot (and the default for future vertices) to val.
func (d *VertexData[T]) Fill(val T) { d.core.fill(val) }

// Detach stops tracking the mesh; the stored values remain readable.
func (d *VertexData[T]) Detach() { d.core.detach() }

// ToVector flattens the container into a dense vector ordered by the
// given index assignment; elements indexed InvalidIndex are omitted.
func (d *VertexData[T]) ToVector(idx *VertexData[int]) []T {
	n := 0
	for v := range d.core.mesh.Vertices() {
		if i := idx.Get(v); i >= n {
			n = i + 1
		}
	}
	out := make([]T, n)
	for v := range d.core.mesh.Vertices() {
		if i := idx.Get(v); i != InvalidIndex {
			out[i] = d.Get(v)
		}
	}

	return out
}

// FromVector loads values from a dense vector under the given index
// assignment; elements indexed InvalidIndex are left untouched.
func (d *VertexData[T]) FromVector(vec []T, idx *VertexData[int]) {
	for v := range d.core.mesh.Vertices() {
		if i := idx.Get(v); i != InvalidIndex {
			d.Set(v, vec[i])
		}
	}
}

// == HalfedgeData

// HalfedgeData maps every halfedge (interior and exterior) to a value.
type HalfedgeData[T any] struct{ core *meshData[T] }

// NewHalfedgeData returns a halfedge container holding the zero value of T.
func NewHalfedgeData[T any](m *Mesh) *HalfedgeData[T] {
	var zero T

	return NewHalfedgeDataWithDefault(m, zero)
}

// NewHalfedgeDataWithDefault returns a halfedge container with a default.
func NewHalfedgeDataWithDefault[T any](m *Mesh, def T) *HalfedgeData[T] {
	return &HalfedgeData[T]{newMeshData(m, HalfedgeKind, m.NHalfedgesCapacity(), def)}
}

// NewHalfedgeDataFromVector returns a halfedge container loaded from a
// dense vector under the given index assignment.
func NewHalfedgeDataFromVector[T any](m *Mesh, vec []T, idx *HalfedgeData[int]) *HalfedgeData[T] {
	d := NewHalfedgeData[T](m)
	d.FromVector(vec, idx)

	return d
}

// Mesh returns the mesh the container is attached to.
func (d *HalfedgeData[T]) Mesh() *Mesh { return d.core.mesh }

// GetSlot returns the value at a raw halfedge slot.
func (d *HalfedgeData[T]) GetSlot(i int) T { return d.core.buf[i] }

// SetSlot stores a value at a raw halfedge slot.
func (d *HalfedgeData[T]) SetSlot(i int, val T) { d.core.buf[i] = val }

// Get returns the value stored for h.
func (d *HalfedgeData[T]) Get(h Halfedge) T {
	d.core.checkOwner(h.mesh)

	return d.core.buf[h.ind]
}

// Set stores a value for h.
func (d *HalfedgeData[T]) Set(h Halfedge, val T) {
	d.core.checkOwner(h.mesh)
	d.core.buf[h.ind] = val
}

// Fill sets every slot (and the default) to val.
func (d *HalfedgeData[T]) Fill(val T) { d.core.fill(val) }

// Detach stops tracking the mesh.
func (d *HalfedgeData[T]) Detach() { d.core.detach() }

// ToVector flattens under an index assignment; InvalidIndex omits.
func (d *HalfedgeData[T]) ToVector(idx *HalfedgeData[int]) []T {
	n := 0
	for h := range d.core.mesh.Halfedges() {
		if i := idx.Get(h); i >= n {
			n = i + 1
		}
	}
	out := make([]T, n)
	for h := range d.core.mesh.Halfedges() {
		if i := idx.Get(h); i != InvalidIndex {
			out[i] = d.Get(h)
		}
	}

	return out
}

// FromVector loads from a dense vector; InvalidIndex skips.
func (d *HalfedgeData[T]) FromVector(vec []T, idx *HalfedgeData[int]) {
	for h := range d.core.mesh.Halfedges() {
		if i := idx.Get(h); i != InvalidIndex {
			d.Set(h, vec[i])
		}
	}
}

// == CornerData

// CornerData maps every corner to a value. Corners share slots with
// interior halfedges, so the buffer is sized like a halfedge buffer;
// exterior slots are dead weight but keep indexing O(1).
type CornerData[T any] struct{ core *meshData[T] }

// NewCornerData returns a corner container holding the zero value of T.
func NewCornerData[T any](m *Mesh) *CornerData[T] {
	var zero T

	return NewCornerDataWithDefault(m, zero)
}

// NewCornerDataWithDefault returns a corner container with a default.
func NewCornerDataWithDefault[T any](m *Mesh, def T) *CornerData[T] {
	return &CornerData[T]{newMeshData(m, CornerKind, m.NHalfedgesCapacity(), def)}
}

// NewCornerDataFromVector returns a corner container loaded from a dense
// vector under the given index assignment.
func NewCornerDataFromVector[T any](m *Mesh, vec []T, idx *CornerData[int]) *CornerData[T] {
	d := NewCornerData[T](m)
	d.FromVector(vec, idx)

	return d
}

// Mesh returns the mesh the container is attached to.
func (d *CornerData[T]) Mesh() *Mesh { return d.core.mesh }

// GetSlot returns the value at a raw corner slot.
func (d *CornerData[T]) GetSlot(i int) T { return d.core.buf[i] }

// SetSlot stores a value at a raw corner slot.
func (d *CornerData[T]) SetSlot(i int, val T) { d.core.buf[i] = val }

// Get returns the value stored for c.
func (d *CornerData[T]) Get(c Corner) T {
	d.core.checkOwner(c.mesh)

	return d.core.buf[c.ind]
}

// Set stores a value for c.
func (d *CornerData[T]) Set(c Corner, val T) {
	d.core.checkOwner(c.mesh)
	d.core.buf[c.ind] = val
}

// Fill sets every slot (and the default) to val.
func (d *CornerData[T]) Fill(val T) { d.core.fill(val) }

// Detach stops tracking the mesh.
func (d *CornerData[T]) Detach() { d.core.detach() }

// ToVector flattens under an index assignment; InvalidIndex omits.
func (d *CornerData[T]) ToVector(idx *CornerData[int]) []T {
	n := 0
	for c := range d.core.mesh.Corners() {
		if i := idx.Get(c); i >= n {
			n = i + 1
		}
	}
	out := make([]T, n)
	for c := range d.core.mesh.Corners() {
		if i := idx.Get(c); i != InvalidIndex {
			out[i] = d.Get(c)
		}
	}

	return out
}

// FromVector loads from a dense vector; InvalidIndex skips.
func (d *CornerData[T]) FromVector(vec []T, idx *CornerData[int]) {
	for c := range d.core.mesh.Corners() {
		if i := idx.Get(c); i != InvalidIndex {
			d.Set(c, vec[i])
		}
	}
}

// == EdgeData

// EdgeData maps every edge to a value.
type EdgeData[T any] struct{ core *meshData[T] }

// NewEdgeData returns an edge container holding the zero value of T.
func NewEdgeData[T any](m *Mesh) *EdgeData[T] {
	var zero T

	return NewEdgeDataWithDefault(m, zero)
}

// NewEdgeDataWithDefault returns an edge container with a default.
func NewEdgeDataWithDefault[T any](m *Mesh, def T) *EdgeData[T] {
	return &EdgeData[T]{newMeshData(m, EdgeKind, m.NEdgesCapacity(), def)}
}

// NewEdgeDataFromVector returns an edge container loaded from a dense
// vector under the given index assignment.
func NewEdgeDataFromVector[T any](m *Mesh, vec []T, idx *EdgeData[int]) *EdgeData[T] {
	d := NewEdgeData[T](m)
	d.FromVector(vec, idx)

	return d
}

// Mesh returns the mesh the container is attached to.
func (d *EdgeData[T]) Mesh() *Mesh { return d.core.mesh }

// GetSlot returns the value at a raw edge slot.
func (d *EdgeData[T]) GetSlot(i int) T { return d.core.buf[i] }

// SetSlot stores a value at a raw edge slot.
func (d *EdgeData[T]) SetSlot(i int, val T) { d.core.buf[i] = val }

// Get returns the value stored for e.
func (d *EdgeData[T]) Get(e Edge) T {
	d.core.checkOwner(e.mesh)

	return d.core.buf[e.ind]
}

// Set stores a value for e.
func (d *EdgeData[T]) Set(e Edge, val T) {
	d.core.checkOwner(e.mesh)
	d.core.buf[e.ind] = val
}

// Fill sets every slot (and the default) to val.
func (d *EdgeData[T]) Fill(val T) { d.core.fill(val) }

// Detach stops tracking the mesh.
func (d *EdgeData[T]) Detach() { d.core.detach() }

// ToVector flattens under an index assignment; InvalidIndex omits.
func (d *EdgeData[T]) ToVector(idx *EdgeData[int]) []T {
	n := 0
	for e := range d.core.mesh.Edges() {
		if i := idx.Get(e); i >= n {
			n = i + 1
		}
	}
	out := make([]T, n)
	for e := range d.core.mesh.Edges() {
		if i := idx.Get(e); i != InvalidIndex {
			out[i] = d.Get(e)
		}
	}

	return out
}

// FromVector loads from a dense vector; InvalidIndex skips.
func (d *EdgeData[T]) FromVector(vec []T, idx *EdgeData[int]) {
	for e := range d.core.mesh.Edges() {
		if i := idx.Get(e); i != InvalidIndex {
			d.Set(e, vec[i])
		}
	}
}

// == FaceData

// FaceData maps every real face to a value.
type FaceData[T any] struct{ core *meshData[T] }

// NewFaceData returns a face container holding the zero value of T.
func NewFaceData[T any](m *Mesh) *FaceData[T] {
	var zero T

	return NewFaceDataWithDefault(m, zero)
}

// NewFaceDataWithDefault returns a face container with a default.
func NewFaceDataWithDefault[T any](m *Mesh, def T) *FaceData[T] {
	return &FaceData[T]{newMeshData(m, FaceKind, m.NFacesCapacity(), def)}
}

// NewFaceDataFromVector returns a face container loaded from a dense
// vector under the given index assignment.
func NewFaceDataFromVector[T any](m *Mesh, vec []T, idx *FaceData[int]) *FaceData[T] {
	d := NewFaceData[T](m)
	d.FromVector(vec, idx)

	return d
}

// Mesh returns the mesh the container is attached to.
func (d *FaceData[T]) Mesh() *Mesh { return d.core.mesh }

// GetSlot returns the value at a raw face slot.
func (d *FaceData[T]) GetSlot(i int) T { return d.core.buf[i] }

// SetSlot stores a value at a raw face slot.
func (d *FaceData[T]) SetSlot(i int, val T) { d.core.buf[i] = val }

// Get returns the value stored for f.
func (d *FaceData[T]) Get(f Face) T {
	d.core.checkOwner(f.mesh)

	return d.core.buf[f.ind]
}

// Set stores a value for f.
func (d *FaceData[T]) Set(f Face, val T) {
	d.core.checkOwner(f.mesh)
	d.core.buf[f.ind] = val
}

// Fill sets every slot (and the default) to val.
func (d *FaceData[T]) Fill(val T) { d.core.fill(val) }

// Detach stops tracking the mesh.
func (d *FaceData[T]) Detach() { d.core.detach() }

// ToVector flattens under an index assignment; InvalidIndex omits.
func (d *FaceData[T]) ToVector(idx *FaceData[int]) []T {
	n := 0
	for f := range d.core.mesh.Faces() {
		if i := idx.Get(f); i >= n {
			n = i + 1
		}
	}
	out := make([]T, n)
	for f := range d.core.mesh.Faces() {
		if i := idx.Get(f); i != InvalidIndex {
			out[i] = d.Get(f)
		}
	}

	return out
}

// FromVector loads from a dense vector; InvalidIndex skips.
func (d *FaceData[T]) FromVector(vec []T, idx *FaceData[int]) {
	for f := range d.core.mesh.Faces() {
		if i := idx.Get(f); i != InvalidIndex {
			d.Set(f, vec[i])
		}
	}
}

// == BoundaryLoopData

// BoundaryLoopData maps every boundary loop to a value, indexed by loop
// number. Loops are never allocated after construction, so the buffer
// never grows.
type BoundaryLoopData[T any] struct{ core *meshData[T] }

// NewBoundaryLoopData returns a loop container holding the zero value of T.
func NewBoundaryLoopData[T any](m *Mesh) *BoundaryLoopData[T] {
	var zero T

	return NewBoundaryLoopDataWithDefault(m, zero)
}

// NewBoundaryLoopDataWithDefault returns a loop container with a default.
func NewBoundaryLoopDataWithDefault[T any](m *Mesh, def T) *BoundaryLoopData[T] {
	return &BoundaryLoopData[T]{newMeshData(m, BoundaryLoopKind, m.NBoundaryLoopsCapacity(), def)}
}

// Mesh returns the mesh the container is attached to.
func (d *BoundaryLoopData[T]) Mesh() *Mesh { return d.core.mesh }

// Get returns the value stored for b.
func (d *BoundaryLoopData[T]) Get(b BoundaryLoop) T {
	d.core.checkOwner(b.mesh)

	return d.core.buf[b.ind]
}

// Set stores a value for b.
func (d *BoundaryLoopData[T]) Set(b BoundaryLoop, val T) {
	d.core.checkOwner(b.mesh)
	d.core.buf[b.ind] = val
}

// Fill sets every slot (and the default) to val.
func (d *BoundaryLoopData[T]) Fill(val T) { d.core.fill(val) }

// Detach stops tracking the mesh.
func (d *BoundaryLoopData[T]) Detach() { d.core.detach() }
