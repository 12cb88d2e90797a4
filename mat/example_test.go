package mat_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/vec"
)

////////////////////////////////////////////////////////////////////////////////
// Mat4 Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleMat4_Mul composes two translations; the product stays a translation
// and is computed by the translation kernel.
func ExampleMat4_Mul() {
	var a, b, c mat.Mat4
	a.SetTranslation(1, 2, 3)
	b.SetTranslation(4, 5, 6)
	c.Mul(&a, &b)

	col, _ := c.Col(3)
	fmt.Println(col)
	fmt.Println(c.State())
	// Output:
	// {5 7 9 1}
	// translation
}

// ExampleMat4_Scale shows a scale dropping orthonormality while a unit
// reflection keeps it.
func ExampleMat4_Scale() {
	var m mat.Mat4
	m.SetRotationX(math.Pi / 2)
	fmt.Println(m.Properties())

	m.Scale(1, 1, -1)
	fmt.Println(m.Properties())

	m.Scale(2, 2, 2)
	fmt.Println(m.Properties())
	// Output:
	// orthonormal|affine
	// orthonormal|affine
	// affine
}

// ExampleMat4_Perspective builds a view-projection chain.
func ExampleMat4_Perspective() {
	var vp mat.Mat4
	vp.SetPerspective(math.Pi/2, 1, 1, 100)
	fmt.Println(vp.State())

	vp.LookAt(vec.V3(0, 0, 5), vec.Vec3{}, vec.V3(0, 1, 0))
	fmt.Println(vp.State())

	p := vp.TransformProject(vec.Vec3{})
	fmt.Printf("%.2f %.2f\n", p.X, p.Y)
	// Output:
	// perspective
	// unknown
	// 0.00 0.00
}

// ExampleMat4_Row shows the error returned by an out-of-range accessor.
func ExampleMat4_Row() {
	m := mat.Ident4()
	_, err := m.Row(5)
	fmt.Println(err)
	// Output:
	// Mat4.Row(5): mat: index out of range
}
