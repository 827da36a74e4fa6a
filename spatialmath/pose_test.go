package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestNewZeroPose(t *testing.T) {
	p := NewZeroPose()
	test.That(t, p.Point, test.ShouldResemble, r3.Vector{})
	test.That(t, p.Orientation, test.ShouldResemble, quat.Number{Real: 1})
}

func TestNewPoseNormalizes(t *testing.T) {
	p := NewPose(r3.Vector{X: 1, Y: 2, Z: 3}, quat.Number{Real: 2})
	test.That(t, p.Orientation, test.ShouldResemble, quat.Number{Real: 1})
	test.That(t, p.Point, test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
}

func TestPoseRotationMatrixRoundTrip(t *testing.T) {
	halfAngle := math.Pi / 6
	q := quat.Number{Real: math.Cos(halfAngle), Imag: math.Sin(halfAngle)}
	p := NewPose(r3.Vector{X: -0.5, Z: 0.25}, q)
	back := NewPoseFromRotationMatrix(p.Point, p.RotationMatrix())
	test.That(t, PoseAlmostEqual(p, back, 1e-9), test.ShouldBeTrue)
}

func TestPoseAlmostEqual(t *testing.T) {
	a := NewPose(r3.Vector{X: 1}, quat.Number{Real: 1})
	b := NewPose(r3.Vector{X: 1 + 1e-8}, quat.Number{Real: 1})
	c := NewPose(r3.Vector{X: 2}, quat.Number{Real: 1})
	test.That(t, PoseAlmostEqual(a, b, 1e-6), test.ShouldBeTrue)
	test.That(t, PoseAlmostEqual(a, c, 1e-6), test.ShouldBeFalse)

	// negated quaternions represent the same orientation
	d := NewPose(r3.Vector{X: 1}, quat.Number{Real: -1})
	test.That(t, PoseAlmostEqual(a, d, 1e-6), test.ShouldBeTrue)
}
