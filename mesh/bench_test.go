package mesh_test

import (
	"testing"

	"github.com/katalvlaran/lvlmesh/mesh"
)

// gridSoup builds an n×n quad grid split into triangles along one
// diagonal per cell, wound consistently CCW.
func gridSoup(n int) [][]int {
	idx := func(i, j int) int { return i*(n+1) + j }
	polys := make([][]int, 0, 2*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, b := idx(i, j), idx(i, j+1)
			c, d := idx(i+1, j+1), idx(i+1, j)
			polys = append(polys, []int{a, b, c}, []int{a, c, d})
		}
	}

	return polys
}

func BenchmarkNewMesh(b *testing.B) {
	soup := gridSoup(32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mesh.NewMesh(soup); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFlip(b *testing.B) {
	m, err := mesh.NewMesh(gridSoup(32))
	if err != nil {
		b.Fatal(err)
	}
	var interior []mesh.Edge
	for e := range m.Edges() {
		if !e.IsBoundary() {
			interior = append(interior, e)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Flip(interior[i%len(interior)])
	}
}

func BenchmarkVertexOrbits(b *testing.B) {
	m, err := mesh.NewMesh(gridSoup(32))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		total := 0
		for v := range m.Vertices() {
			total += v.Degree()
		}
		if total != 2*m.NEdges() {
			b.Fatal("degree sum mismatch")
		}
	}
}

func BenchmarkCompress(b *testing.B) {
	soup := gridSoup(16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m, err := mesh.NewMesh(soup)
		if err != nil {
			b.Fatal(err)
		}
		if m.CollapseEdge(m.Edge(0)).IsNull() {
			b.Fatal("collapse refused")
		}
		b.StartTimer()
		m.Compress()
	}
}
