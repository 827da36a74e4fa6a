package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestNewRotationMatrix(t *testing.T) {
	_, err := NewRotationMatrix([]float64{1, 2, 3})
	test.That(t, err, test.ShouldNotBeNil)

	rm, err := NewRotationMatrix([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rm.At(0, 0), test.ShouldEqual, 0)
	test.That(t, rm.At(1, 2), test.ShouldEqual, 5)
	test.That(t, rm.At(2, 1), test.ShouldEqual, 7)
	test.That(t, rm.Row(1), test.ShouldResemble, r3.Vector{X: 3, Y: 4, Z: 5})
	test.That(t, rm.Col(2), test.ShouldResemble, r3.Vector{X: 2, Y: 5, Z: 8})
}

func TestRotationMatrixMul(t *testing.T) {
	// 90 degrees about z moves the x axis onto the y axis
	halfAngle := math.Pi / 4
	rm := QuatToRotationMatrix(quat.Number{Real: math.Cos(halfAngle), Kmag: math.Sin(halfAngle)})
	rotated := rm.Mul(r3.Vector{X: 1})
	test.That(t, rotated.X, test.ShouldAlmostEqual, 0, 1e-12)
	test.That(t, rotated.Y, test.ShouldAlmostEqual, 1, 1e-12)
	test.That(t, rotated.Z, test.ShouldAlmostEqual, 0, 1e-12)
}

func TestOrthonormalRejectsScaled(t *testing.T) {
	rm := NewRotationMatrixFromArray([9]float64{2, 0, 0, 0, 2, 0, 0, 0, 2})
	test.That(t, rm.Orthonormal(1e-6), test.ShouldBeFalse)

	// det -1 is a reflection, not a rotation
	rm = NewRotationMatrixFromArray([9]float64{1, 0, 0, 0, 1, 0, 0, 0, -1})
	test.That(t, rm.Orthonormal(1e-6), test.ShouldBeFalse)
}
