package geom_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmesh/geom"
	"github.com/katalvlaran/lvlmesh/mesh"
	"github.com/katalvlaran/lvlmesh/vec"
)

// ExampleGeometry_RequireFaceAreas computes the areas of a unit square
// split into two triangles, releasing the quantity when done.
func ExampleGeometry_RequireFaceAreas() {
	m, _ := mesh.NewMesh([][]int{{0, 1, 2}, {0, 2, 3}})
	g := geom.NewGeometryFromPositions(m, []vec.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	})

	release := g.RequireFaceAreas()
	defer release()

	total := 0.0
	for f := range m.Faces() {
		total += g.FaceAreas.Get(f)
	}
	fmt.Printf("total area: %.1f\n", total)
	// Output:
	// total area: 1.0
}
