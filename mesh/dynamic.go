package mesh

// Dynamic handles track one element across compactions by subscribing to
// the permute events. They cost a registry entry apiece, so prefer plain
// handles in hot paths and wrap only the few elements that must survive
// a Compress. Release a dynamic handle when done with it; a leaked one
// keeps its callback registered until the mesh is closed.

type dynamicCore struct {
	mesh *Mesh
	ind  int
	subs []*Subscription
}

func newDynamicCore(m *Mesh, kind ElementKind, ind int) *dynamicCore {
	d := &dynamicCore{mesh: m, ind: ind}
	d.subs = []*Subscription{
		m.OnPermute(kind, d.onPermute),
		m.OnMeshDeleted(d.release),
	}

	return d
}

func (d *dynamicCore) onPermute(p []int) {
	for n, old := range p {
		if old == d.ind {
			d.ind = n

			return
		}
	}
	// The tracked element was deleted before the compaction.
	d.ind = invalidInd
}

func (d *dynamicCore) release() {
	if d.subs == nil {
		return
	}
	for _, s := range d.subs {
		s.Cancel()
	}
	d.subs = nil
	d.mesh = nil
}

// == DynamicVertex

// DynamicVertex tracks one vertex across compactions.
type DynamicVertex struct{ core *dynamicCore }

// NewDynamicVertex wraps v in a tracking handle.
func NewDynamicVertex(v Vertex) *DynamicVertex {
	return &DynamicVertex{newDynamicCore(v.mesh, VertexKind, v.ind)}
}

// Decay returns the current plain handle, or the null handle if the
// tracked vertex was deleted or the dynamic handle released.
func (d *DynamicVertex) Decay() Vertex {
	if d.core.mesh == nil || d.core.ind == invalidInd {
		return Vertex{}
	}

	return Vertex{d.core.mesh, d.core.ind}
}

// Release unsubscribes the handle; idempotent.
func (d *DynamicVertex) Release() { d.core.release() }

// == DynamicHalfedge

// DynamicHalfedge tracks one halfedge across compactions.
type DynamicHalfedge struct{ core *dynamicCore }

// NewDynamicHalfedge wraps h in a tracking handle.
func NewDynamicHalfedge(h Halfedge) *DynamicHalfedge {
	return &DynamicHalfedge{newDynamicCore(h.mesh, HalfedgeKind, h.ind)}
}

// Decay returns the current plain handle, or the null handle.
func (d *DynamicHalfedge) Decay() Halfedge {
	if d.core.mesh == nil || d.core.ind == invalidInd {
		return Halfedge{}
	}

	return Halfedge{d.core.mesh, d.core.ind}
}

// Release unsubscribes the handle; idempotent.
func (d *DynamicHalfedge) Release() { d.core.release() }

// == DynamicEdge

// DynamicEdge tracks one edge across compactions.
type DynamicEdge struct{ core *dynamicCore }

// NewDynamicEdge wraps e in a tracking handle.
func NewDynamicEdge(e Edge) *DynamicEdge {
	return &DynamicEdge{newDynamicCore(e.mesh, EdgeKind, e.ind)}
}

// Decay returns the current plain handle, or the null handle.
func (d *DynamicEdge) Decay() Edge {
	if d.core.mesh == nil || d.core.ind == invalidInd {
		return Edge{}
	}

	return Edge{d.core.mesh, d.core.ind}
}

// Release unsubscribes the handle; idempotent.
func (d *DynamicEdge) Release() { d.core.release() }

// == DynamicFace

// DynamicFace tracks one real face across compactions.
type DynamicFace struct{ core *dynamicCore }

// NewDynamicFace wraps f in a tracking handle.
func NewDynamicFace(f Face) *DynamicFace {
	return &DynamicFace{newDynamicCore(f.mesh, FaceKind, f.ind)}
}

// Decay returns the current plain handle, or the null handle.
func (d *DynamicFace) Decay() Face {
	if d.core.mesh == nil || d.core.ind == invalidInd {
		return Face{}
	}

	return Face{d.core.mesh, d.core.ind}
}

// Release unsubscribes the handle; idempotent.
func (d *DynamicFace) Release() { d.core.release() }
