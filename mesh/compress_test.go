package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmesh/mesh"
)

// collapseOneSpoke tombstones a few slots of the hexagon fan.
func collapseOneSpoke(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.NewMesh(soupHexFan)
	require.NoError(t, err)
	require.False(t, m.CollapseEdge(m.Edge(0)).IsNull())
	require.False(t, m.IsCompressed())

	return m
}

// TestCompress reclaims tombstones, preserves counts and topology, and
// leaves a dense slot space.
func TestCompress(t *testing.T) {
	m := collapseOneSpoke(t)
	nV, nE, nF := m.NVertices(), m.NEdges(), m.NFaces()

	m.Compress()

	require.True(t, m.IsCompressed())
	require.NoError(t, m.ValidateConnectivity())
	require.Equal(t, nV, m.NVertices())
	require.Equal(t, nE, m.NEdges())
	require.Equal(t, nF, m.NFaces())
	require.Equal(t, nV, m.NVerticesCapacity(), "buffers shrink to the live count")
	require.Equal(t, 2*nE, m.NHalfedgesCapacity())

	// Dense prefix: every slot up to the count resolves.
	for i := 0; i < nV; i++ {
		m.Vertex(i)
	}
	for i := 0; i < nF; i++ {
		m.Face(i)
	}
}

// TestCompress_ContainersFollow stores a per-vertex fingerprint before
// compacting and expects it to follow the relocation.
func TestCompress_ContainersFollow(t *testing.T) {
	m := collapseOneSpoke(t)

	deg := mesh.NewVertexData[int](m)
	for v := range m.Vertices() {
		deg.Set(v, v.Degree())
	}
	areaLike := mesh.NewFaceData[int](m)
	for f := range m.Faces() {
		areaLike.Set(f, f.Halfedge().Vertex().Degree())
	}

	m.Compress()

	for v := range m.Vertices() {
		require.Equal(t, v.Degree(), deg.Get(v), "vertex data moved with its vertex")
	}
	for f := range m.Faces() {
		require.Equal(t, f.Halfedge().Vertex().Degree(), areaLike.Get(f))
	}
}

// TestCompress_VectorRoundTrip: ToVector then FromVector across a
// Compress restores the same per-element values.
func TestCompress_VectorRoundTrip(t *testing.T) {
	m := collapseOneSpoke(t)

	d := mesh.NewVertexData[int](m)
	for v := range m.Vertices() {
		d.Set(v, 100+v.Degree())
	}
	flat := d.ToVector(m.VertexIndices())
	require.Len(t, flat, m.NVertices())

	m.Compress()

	restored := mesh.NewVertexDataFromVector(m, flat, m.VertexIndices())
	for v := range m.Vertices() {
		require.Equal(t, d.Get(v), restored.Get(v))
	}
}

// TestCanonicalize restores fresh-construction enumeration: rebuilding
// from the face-vertex list yields an index-identical mesh.
func TestCanonicalize(t *testing.T) {
	m, err := mesh.NewMesh(soupSquare)
	require.NoError(t, err)
	require.True(t, m.Flip(m.Edge(2)))
	require.False(t, m.IsCanonical())

	m.Canonicalize()
	require.True(t, m.IsCanonical())
	require.True(t, m.IsCompressed())
	require.NoError(t, m.ValidateConnectivity())

	rebuilt, err := mesh.NewMesh(m.FaceVertexList())
	require.NoError(t, err)
	for f := range m.Faces() {
		want := rebuilt.Face(f.Index()).Halfedge().Index()
		require.Equal(t, want, f.Halfedge().Index(), "face %d starts at the same halfedge", f.Index())
	}
	for he := range m.Halfedges() {
		require.Equal(t,
			rebuilt.Halfedge(he.Index()).Vertex().Index(), he.Vertex().Index(),
			"halfedge %d tail", he.Index())
		require.Equal(t,
			rebuilt.Halfedge(he.Index()).Next().Index(), he.Next().Index(),
			"halfedge %d next", he.Index())
	}
}

// TestDynamicHandles_TrackCompress: a dynamic vertex survives; one whose
// element died decays to null.
func TestDynamicHandles_TrackCompress(t *testing.T) {
	m, err := mesh.NewMesh(soupHexFan)
	require.NoError(t, err)

	// Track a rim vertex by its fingerprint, and the fan center's victim
	// neighbor that the collapse deletes.
	survivor := mesh.NewDynamicVertex(m.Vertex(4))
	wantDeg := m.Vertex(4).Degree()
	victim := mesh.NewDynamicVertex(m.Vertex(1)) // collapse of edge 0 removes vertex 1

	require.False(t, m.CollapseEdge(m.Edge(0)).IsNull())
	m.Compress()

	got := survivor.Decay()
	require.False(t, got.IsNull())
	require.Equal(t, wantDeg, got.Degree())
	require.True(t, victim.Decay().IsNull(), "deleted element decays to null")

	survivor.Release()
	victim.Release()
	require.True(t, survivor.Decay().IsNull(), "released handle decays to null")
}
